package sam

import (
	"regexp"
	"sync"
)

// placeholderRe matches "{{ ... }}" template-variable placeholders with
// optional interior whitespace and an optional "ns::" prefix.
var placeholderRe = regexp.MustCompile(`\{\{\s*((?:[A-Za-z0-9_]+::)?[A-Za-z0-9_]+)\s*\}\}`)

// ExtractPlaceholders returns, in order of first appearance and without
// duplicates, the identifiers named by "{{ ... }}" placeholders in
// template. A placeholder that omits its namespace is resolved against
// defaultNamespace (used by the planner to compute a seed set).
func ExtractPlaceholders(template, defaultNamespace string) ([]Identifier, error) {
	matches := placeholderRe.FindAllStringSubmatchIndex(template, -1)
	var out []Identifier
	seen := make(map[Identifier]struct{})
	for _, m := range matches {
		id, err := ParseIdentifierWithDefaultNamespace(template[m[2]:m[3]], defaultNamespace)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}

// placeholderPatternCache caches compiled per-identifier placeholder
// patterns rather than constructing a regex on every substitution call.
type placeholderPatternCache struct {
	mu    sync.Mutex
	plain map[Identifier]*regexp.Regexp
	ns    map[Identifier]*regexp.Regexp
}

var placeholderCache = &placeholderPatternCache{
	plain: make(map[Identifier]*regexp.Regexp),
	ns:    make(map[Identifier]*regexp.Regexp),
}

func (c *placeholderPatternCache) plainPattern(id Identifier) *regexp.Regexp {
	c.mu.Lock()
	defer c.mu.Unlock()
	if re, ok := c.plain[id]; ok {
		return re
	}
	re := regexp.MustCompile(`\{\{\s*` + regexp.QuoteMeta(id.Name) + `\s*\}\}`)
	c.plain[id] = re
	return re
}

func (c *placeholderPatternCache) namespacedPattern(id Identifier) *regexp.Regexp {
	c.mu.Lock()
	defer c.mu.Unlock()
	if re, ok := c.ns[id]; ok {
		return re
	}
	re := regexp.MustCompile(`\{\{\s*` + regexp.QuoteMeta(id.Namespace) + `::` + regexp.QuoteMeta(id.Name) + `\s*\}\}`)
	c.ns[id] = re
	return re
}

// substituteOne replaces every occurrence of "{{ id.Name }}" and, when id
// is namespaced, "{{ id.Namespace::id.Name }}" with value, both patterns
// replaced with the same value. ReplaceAllLiteralString is used so a "$" in
// value is never mistaken for a submatch reference.
func substituteOne(template string, id Identifier, value string) string {
	result := placeholderCache.plainPattern(id).ReplaceAllLiteralString(template, value)
	if id.HasNamespace() {
		result = placeholderCache.namespacedPattern(id).ReplaceAllLiteralString(result, value)
	}
	return result
}

// SubstituteAll substitutes every (identifier, choice) pair into template,
// two passes per identifier as substituteOne describes, and fails on the
// first placeholder left unresolved afterward: that placeholder's explicit
// namespace (if any) did not match any substituted identifier's namespace,
// or no choice was supplied for it at all.
func SubstituteAll(template string, choices map[Identifier]Choice) (string, error) {
	result := template
	for id, choice := range choices {
		result = substituteOne(result, id, choice.Value)
	}
	if m := placeholderRe.FindStringSubmatchIndex(result); m != nil {
		id, err := ParseIdentifier(result[m[2]:m[3]])
		if err != nil {
			return "", err
		}
		return "", &MissingChoiceError{ID: id}
	}
	return result, nil
}

// SubstitutePartial substitutes every (identifier, choice) pair into
// template, leaving any placeholder with no matching choice intact. Used to
// render a DynamicShell command against the choices resolved so far, prior
// to resolver dispatch.
func SubstitutePartial(template string, choices map[Identifier]Choice) string {
	result := template
	for id, choice := range choices {
		result = substituteOne(result, id, choice.Value)
	}
	return result
}
