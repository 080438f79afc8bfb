// Package mocks provides a scripted Resolver for exercising pkg/sam without
// a terminal.
package mocks

import (
	"fmt"

	"github.com/mattsolo1/sam/pkg/sam"
)

// ScriptedResolver answers every Resolver call from canned data instead of a
// terminal, so tests can drive the planner deterministically.
type ScriptedResolver struct {
	// Static maps a StaticChoices variable's identifier to the choice it
	// should resolve to.
	Static map[sam.Identifier]sam.Choice
	// Dynamic maps a DynamicShell variable's identifier to the choice it
	// should resolve to, regardless of the rendered command.
	Dynamic map[sam.Identifier]sam.Choice
	// Input maps a PromptInput variable's identifier to the choice it
	// should resolve to.
	Input map[sam.Identifier]sam.Choice
	// Selected names which identifier SelectIdentifier should return when
	// present among the candidates.
	Selected sam.Identifier

	// Commands records every rendered DynamicShell command seen by
	// ResolveDynamic, in call order, for assertions.
	Commands []string
}

// NewScriptedResolver builds an empty ScriptedResolver ready to be populated.
func NewScriptedResolver() *ScriptedResolver {
	return &ScriptedResolver{
		Static:  make(map[sam.Identifier]sam.Choice),
		Dynamic: make(map[sam.Identifier]sam.Choice),
		Input:   make(map[sam.Identifier]sam.Choice),
	}
}

// ResolveInput returns the scripted Input choice for id, or a NoInputError
// if none was scripted.
func (r *ScriptedResolver) ResolveInput(id sam.Identifier, prompt string) (sam.Choice, error) {
	if c, ok := r.Input[id]; ok {
		return c, nil
	}
	return sam.Choice{}, &sam.NoInputError{ID: id, Reason: "no scripted input"}
}

// ResolveDynamic records the rendered command and returns the scripted
// Dynamic choice for id, or a DynamicEmptyError if none was scripted.
func (r *ScriptedResolver) ResolveDynamic(id sam.Identifier, cmd sam.ShellCommand) (sam.Choice, error) {
	r.Commands = append(r.Commands, cmd.Value())
	if c, ok := r.Dynamic[id]; ok {
		return c, nil
	}
	return sam.Choice{}, &sam.DynamicEmptyError{ID: id}
}

// ResolveStatic returns the scripted Static choice for id if it appears
// among choices, a NoChoiceSelectedError if none was scripted, or a plain
// error if the scripted choice is not among choices.
func (r *ScriptedResolver) ResolveStatic(id sam.Identifier, choices []sam.Choice) (sam.Choice, error) {
	c, ok := r.Static[id]
	if !ok {
		return sam.Choice{}, &sam.NoChoiceSelectedError{ID: id}
	}
	for _, candidate := range choices {
		if candidate.Equal(c) {
			return c, nil
		}
	}
	return sam.Choice{}, fmt.Errorf("sam/mocks: scripted choice %q for %s is not among the offered choices", c.Value, id)
}

// SelectIdentifier returns Selected if it appears among identifiers, or a
// SelectionEmptyError if identifiers is empty, or a SelectionInvalidError
// otherwise.
func (r *ScriptedResolver) SelectIdentifier(identifiers []sam.Identifier, descriptions []string, prompt string) (sam.Identifier, error) {
	if len(identifiers) == 0 {
		return sam.Identifier{}, &sam.SelectionEmptyError{}
	}
	for _, id := range identifiers {
		if id == r.Selected {
			return id, nil
		}
	}
	return sam.Identifier{}, &sam.SelectionInvalidError{Cause: fmt.Errorf("sam/mocks: %s was not among the candidates", r.Selected)}
}
