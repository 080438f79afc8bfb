package sam

import "regexp"

// aliasRefRe matches "[[ ident ]]" with optional interior whitespace and an
// optional "ns::" prefix on ident.
var aliasRefRe = regexp.MustCompile(`\[\[\s*((?:[A-Za-z0-9_]+::)?[A-Za-z0-9_]+)\s*\]\]`)

// Alias is an immutable named shell-command template. Composition expansion
// (AliasCollection construction) replaces Template with its fully expanded
// form exactly once; outside of that the value is frozen.
type Alias struct {
	id       Identifier
	desc     string
	template string
}

// NewAlias builds an Alias from its identifier, description, and raw
// template body.
func NewAlias(id Identifier, desc, template string) Alias {
	return Alias{id: id, desc: desc, template: template}
}

// ID returns the alias's identifier.
func (a Alias) ID() Identifier { return a.id }

// Desc returns the alias's description.
func (a Alias) Desc() string { return a.desc }

// Template returns the current template body (raw, or expanded once the
// alias has passed through an AliasCollection).
func (a Alias) Template() string { return a.template }

// withTemplate returns a copy of a with its template replaced. Alias values
// are never mutated in place; expansion always produces a new value.
func (a Alias) withTemplate(template string) Alias {
	a.template = template
	return a
}

// aliasRef is one "[[ ... ]]" occurrence found in a template: its byte
// range and the identifier it names, with the owning alias's namespace
// applied as a fallback when the reference omits one.
type aliasRef struct {
	start, end int
	id         Identifier
}

// parseAliasRefs scans template for alias references, applying
// defaultNamespace to any reference that omits an explicit namespace.
func parseAliasRefs(template, defaultNamespace string) ([]aliasRef, error) {
	matches := aliasRefRe.FindAllStringSubmatchIndex(template, -1)
	if matches == nil {
		return nil, nil
	}
	refs := make([]aliasRef, 0, len(matches))
	for _, m := range matches {
		start, end := m[0], m[1]
		identText := template[m[2]:m[3]]
		id, err := ParseIdentifierWithDefaultNamespace(identText, defaultNamespace)
		if err != nil {
			return nil, err
		}
		refs = append(refs, aliasRef{start: start, end: end, id: id})
	}
	return refs, nil
}

// containsAliasRef reports whether template still has an unresolved
// "[[ ... ]]" reference.
func containsAliasRef(template string) bool {
	return aliasRefRe.MatchString(template)
}
