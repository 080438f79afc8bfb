package sam

import "sort"

type dfsColor uint8

const (
	white dfsColor = iota
	gray
	black
)

// AliasCollection is a validated, construction-time-expanded registry of
// aliases. Composition is evaluated eagerly at construction; Get is O(1)
// thereafter.
type AliasCollection struct {
	byID map[Identifier]Alias
}

// NewAliasCollection validates that every alias reference resolves and that
// the reference graph is acyclic, then expands every template so that no
// alias's Template contains a "[[ ... ]]" reference afterward.
func NewAliasCollection(aliases []Alias) (*AliasCollection, error) {
	byID := make(map[Identifier]Alias, len(aliases))
	for _, a := range aliases {
		byID[a.ID()] = a
	}

	expander := &aliasExpander{
		byID:  byID,
		color: make(map[Identifier]dfsColor, len(byID)),
		done:  make(map[Identifier]string, len(byID)),
	}

	result := make(map[Identifier]Alias, len(byID))
	// Deterministic iteration order keeps error reporting stable across runs.
	ids := make([]Identifier, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return lessIdentifier(ids[i], ids[j]) })

	for _, id := range ids {
		expanded, err := expander.expand(id)
		if err != nil {
			return nil, err
		}
		result[id] = byID[id].withTemplate(expanded)
	}

	return &AliasCollection{byID: result}, nil
}

// Get returns the expanded alias for id, or an *AliasNotFoundError.
func (c *AliasCollection) Get(id Identifier) (Alias, error) {
	a, ok := c.byID[id]
	if !ok {
		return Alias{}, &AliasNotFoundError{ID: id}
	}
	return a, nil
}

// Identifiers lists every known alias identifier.
func (c *AliasCollection) Identifiers() []Identifier {
	ids := make([]Identifier, 0, len(c.byID))
	for id := range c.byID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return lessIdentifier(ids[i], ids[j]) })
	return ids
}

// Descriptions lists every known alias description, in the same order as
// Identifiers.
func (c *AliasCollection) Descriptions() []string {
	ids := c.Identifiers()
	descs := make([]string, len(ids))
	for i, id := range ids {
		descs[i] = c.byID[id].Desc()
	}
	return descs
}

// aliasExpander performs the reverse-topological, cycle-checked expansion
// as a single memoized depth-first walk: a reference is only substituted
// once its own target has been fully expanded, and a back-edge onto an
// in-progress node is a cycle.
type aliasExpander struct {
	byID  map[Identifier]Alias
	color map[Identifier]dfsColor
	done  map[Identifier]string
	stack []Identifier
}

func (e *aliasExpander) expand(id Identifier) (string, error) {
	switch e.color[id] {
	case black:
		return e.done[id], nil
	case gray:
		return "", &CycleDetectedError{Path: e.cyclePath(id)}
	}

	alias, ok := e.byID[id]
	if !ok {
		// The owner of whichever reference led here is reported by the
		// caller; a missing root id is a programming error in this
		// package, not a user-facing one, so we treat it the same way.
		return "", &AliasNotFoundError{ID: id}
	}

	e.color[id] = gray
	e.stack = append(e.stack, id)

	refs, err := parseAliasRefs(alias.Template(), id.Namespace)
	if err != nil {
		return "", err
	}

	template := alias.Template()
	if len(refs) > 0 {
		var out []byte
		cursor := 0
		for _, ref := range refs {
			if _, ok := e.byID[ref.id]; !ok {
				return "", &MissingDependencyError{Owner: id, Missing: ref.id}
			}
			expandedRef, err := e.expand(ref.id)
			if err != nil {
				return "", err
			}
			out = append(out, template[cursor:ref.start]...)
			out = append(out, expandedRef...)
			cursor = ref.end
		}
		out = append(out, template[cursor:]...)
		template = string(out)
	}

	e.color[id] = black
	e.stack = e.stack[:len(e.stack)-1]
	e.done[id] = template
	return template, nil
}

// cyclePath reconstructs the back-edge path ending at id, for diagnostics.
func (e *aliasExpander) cyclePath(id Identifier) []Identifier {
	for i, stacked := range e.stack {
		if stacked == id {
			path := append([]Identifier{}, e.stack[i:]...)
			return append(path, id)
		}
	}
	return append(append([]Identifier{}, e.stack...), id)
}
