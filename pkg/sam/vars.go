package sam

import "sort"

// ExecutionSequence is the topologically ordered list of variable
// identifiers produced by VarsRepository.ExecutionSequenceFor: every
// identifier in a prefix has no dependency on any identifier later in the
// sequence.
type ExecutionSequence struct {
	ids []Identifier
}

// Identifiers returns a copy of the ordered identifier list.
func (s ExecutionSequence) Identifiers() []Identifier {
	return append([]Identifier{}, s.ids...)
}

// Len returns the number of identifiers in the sequence.
func (s ExecutionSequence) Len() int { return len(s.ids) }

// VarsRepository is a validated registry of variables.
type VarsRepository struct {
	byID map[Identifier]Variable
}

// NewVarsRepository validates that every declared dependency resolves to a
// known variable and that the dependency graph is acyclic.
func NewVarsRepository(vars []Variable) (*VarsRepository, error) {
	byID := make(map[Identifier]Variable, len(vars))
	for _, v := range vars {
		byID[v.ID()] = v
	}

	ids := sortedIDs(byID)
	color := make(map[Identifier]dfsColor, len(byID))
	var stack []Identifier

	var visit func(id Identifier) error
	visit = func(id Identifier) error {
		switch color[id] {
		case black:
			return nil
		case gray:
			return &VariableCycleError{Path: cyclePathFrom(stack, id)}
		}
		v, ok := byID[id]
		if !ok {
			// Unreachable here: only dependency edges reach unknown ids,
			// and those are checked explicitly below before recursing.
			return &VariableNotFoundError{ID: id}
		}
		color[id] = gray
		stack = append(stack, id)
		for _, dep := range v.Deps() {
			if _, ok := byID[dep]; !ok {
				return &MissingVariableError{Owner: id, Missing: dep}
			}
			if err := visit(dep); err != nil {
				return err
			}
		}
		color[id] = black
		stack = stack[:len(stack)-1]
		return nil
	}

	for _, id := range ids {
		if err := visit(id); err != nil {
			return nil, err
		}
	}

	return &VarsRepository{byID: byID}, nil
}

// Get returns the variable for id, or a *VariableNotFoundError.
func (r *VarsRepository) Get(id Identifier) (Variable, error) {
	v, ok := r.byID[id]
	if !ok {
		return Variable{}, &VariableNotFoundError{ID: id}
	}
	return v, nil
}

// ExecutionSequenceFor returns the ordered union of seed and its transitive
// dependencies, topologically sorted: for every variable V at position i,
// every dependency of V appears at some position j < i. Ties are broken by
// the insertion order of seed, then lexicographically by namespace-then-name.
func (r *VarsRepository) ExecutionSequenceFor(seed []Identifier) (ExecutionSequence, error) {
	color := make(map[Identifier]dfsColor, len(r.byID))
	var stack []Identifier
	var order []Identifier

	var visit func(id Identifier) error
	visit = func(id Identifier) error {
		switch color[id] {
		case black:
			return nil
		case gray:
			return &VariableCycleError{Path: cyclePathFrom(stack, id)}
		}
		v, ok := r.byID[id]
		if !ok {
			return &MissingVariableError{Missing: id}
		}
		color[id] = gray
		stack = append(stack, id)
		for _, dep := range v.Deps() {
			if _, ok := r.byID[dep]; !ok {
				return &MissingVariableError{Owner: id, Missing: dep}
			}
			if err := visit(dep); err != nil {
				return err
			}
		}
		color[id] = black
		stack = stack[:len(stack)-1]
		order = append(order, id)
		return nil
	}

	for _, id := range seed {
		if err := visit(id); err != nil {
			return ExecutionSequence{}, err
		}
	}

	return ExecutionSequence{ids: order}, nil
}

func sortedIDs(byID map[Identifier]Variable) []Identifier {
	ids := make([]Identifier, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return lessIdentifier(ids[i], ids[j]) })
	return ids
}

func cyclePathFrom(stack []Identifier, id Identifier) []Identifier {
	for i, stacked := range stack {
		if stacked == id {
			path := append([]Identifier{}, stack[i:]...)
			return append(path, id)
		}
	}
	return append(append([]Identifier{}, stack...), id)
}
