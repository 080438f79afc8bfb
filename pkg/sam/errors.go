package sam

import "fmt"

// AliasNotFoundError is returned by AliasCollection.Get when id is unknown.
type AliasNotFoundError struct {
	ID Identifier
}

func (e *AliasNotFoundError) Error() string {
	return fmt.Sprintf("sam: alias not found: %s", e.ID)
}

// CycleDetectedError reports an alias-reference cycle.
type CycleDetectedError struct {
	Path []Identifier
}

func (e *CycleDetectedError) Error() string {
	return fmt.Sprintf("sam: alias reference cycle detected: %s", formatPath(e.Path))
}

// MissingDependencyError reports an alias reference to an identifier absent
// from the collection.
type MissingDependencyError struct {
	Owner   Identifier
	Missing Identifier
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("sam: alias %s references missing alias %s", e.Owner, e.Missing)
}

// VariableNotFoundError is returned by VarsRepository.Get when id is unknown.
type VariableNotFoundError struct {
	ID Identifier
}

func (e *VariableNotFoundError) Error() string {
	return fmt.Sprintf("sam: variable not found: %s", e.ID)
}

// MissingVariableError reports a variable dependency absent from the
// repository.
type MissingVariableError struct {
	Owner   Identifier
	Missing Identifier
}

func (e *MissingVariableError) Error() string {
	if e.Owner == (Identifier{}) {
		return fmt.Sprintf("sam: unknown variable: %s", e.Missing)
	}
	return fmt.Sprintf("sam: variable %s depends on missing variable %s", e.Owner, e.Missing)
}

// VariableCycleError reports a variable-dependency cycle.
type VariableCycleError struct {
	Path []Identifier
}

func (e *VariableCycleError) Error() string {
	return fmt.Sprintf("sam: variable dependency cycle detected: %s", formatPath(e.Path))
}

// MissingChoiceError is returned by SubstituteAll when a placeholder's
// identifier has no entry in the supplied choice map; reached from the
// planner this indicates a bug in execution-sequence construction.
type MissingChoiceError struct {
	ID Identifier
}

func (e *MissingChoiceError) Error() string {
	return fmt.Sprintf("sam: no choice available for %s", e.ID)
}

func formatPath(path []Identifier) string {
	s := ""
	for i, id := range path {
		if i > 0 {
			s += " -> "
		}
		s += id.String()
	}
	return s
}
