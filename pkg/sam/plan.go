package sam

// ExecutionResult is what the planner hands back once every variable a
// chosen alias needs has been resolved and substituted: the final command
// string, plus the resolved choices keyed by identifier and the sequence in
// which they were resolved, for logging or history.
type ExecutionResult struct {
	Command  string
	Choices  map[Identifier]Choice
	Sequence ExecutionSequence
}

// Planner orchestrates the resolution sequence for a chosen alias: it
// resolves the alias's expanded template, computes the variables it needs
// and their dependency order, dispatches each to the Resolver in turn, and
// performs the final substitution.
type Planner struct {
	Aliases  *AliasCollection
	Vars     *VarsRepository
	Resolver Resolver
}

// NewPlanner builds a Planner over the given registries and resolver.
func NewPlanner(aliases *AliasCollection, vars *VarsRepository, resolver Resolver) *Planner {
	return &Planner{Aliases: aliases, Vars: vars, Resolver: resolver}
}

// Execute runs the full resolution sequence for the alias named by id. A
// resolver error aborts immediately: no partial substitution is ever
// returned.
func (p *Planner) Execute(id Identifier) (*ExecutionResult, error) {
	alias, err := p.Aliases.Get(id)
	if err != nil {
		return nil, err
	}

	seed, err := ExtractPlaceholders(alias.Template(), alias.ID().Namespace)
	if err != nil {
		return nil, err
	}

	seq, err := p.Vars.ExecutionSequenceFor(seed)
	if err != nil {
		return nil, err
	}

	choices := make(map[Identifier]Choice, seq.Len())
	for _, vid := range seq.Identifiers() {
		variable, err := p.Vars.Get(vid)
		if err != nil {
			return nil, err
		}

		choice, err := p.resolveOne(variable, choices)
		if err != nil {
			return nil, err
		}
		choices[vid] = choice
	}

	final, err := SubstituteAll(alias.Template(), choices)
	if err != nil {
		// Unreachable by construction: seq covers exactly the
		// placeholders in alias.Template().
		return nil, err
	}

	return &ExecutionResult{Command: final, Choices: choices, Sequence: seq}, nil
}

func (p *Planner) resolveOne(v Variable, resolvedSoFar map[Identifier]Choice) (Choice, error) {
	switch v.Policy().Kind {
	case StaticChoices:
		return p.Resolver.ResolveStatic(v.ID(), v.Policy().Choices)
	case DynamicShell:
		rendered := SubstitutePartial(v.Policy().Command.Value(), resolvedSoFar)
		return p.Resolver.ResolveDynamic(v.ID(), NewShellCommand(rendered))
	case PromptInput:
		rendered := SubstitutePartial(v.Policy().Prompt, resolvedSoFar)
		return p.Resolver.ResolveInput(v.ID(), rendered)
	default:
		return Choice{}, &NoChoiceAvailableError{ID: v.ID()}
	}
}
