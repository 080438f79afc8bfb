package sam_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattsolo1/sam/pkg/sam"
	"github.com/mattsolo1/sam/pkg/sam/mocks"
)

func id(t *testing.T, s string) sam.Identifier {
	t.Helper()
	parsed, err := sam.ParseIdentifier(s)
	require.NoError(t, err)
	return parsed
}

func TestPlannerExecuteStaticChoice(t *testing.T) {
	// An alias with one StaticChoices variable resolves end to end.
	branch := sam.NewVariable(id(t, "branch"), "branch to push", sam.NewStaticChoicesPolicy([]sam.Choice{
		sam.NewChoice("main"), sam.NewChoice("dev"),
	}), nil)
	vars, err := sam.NewVarsRepository([]sam.Variable{branch})
	require.NoError(t, err)

	push := sam.NewAlias(id(t, "push"), "push a branch", "git push origin {{ branch }}")
	aliases, err := sam.NewAliasCollection([]sam.Alias{push})
	require.NoError(t, err)

	resolver := mocks.NewScriptedResolver()
	resolver.Static[id(t, "branch")] = sam.NewChoice("main")

	planner := sam.NewPlanner(aliases, vars, resolver)
	result, err := planner.Execute(id(t, "push"))
	require.NoError(t, err)
	assert.Equal(t, "git push origin main", result.Command)
}

func TestPlannerExecuteChainedDependencies(t *testing.T) {
	// A DynamicShell variable depends on a prior PromptInput variable,
	// whose resolved value is substituted into the command before it
	// is run.
	repoName := sam.NewVariable(id(t, "repo"), "repo name", sam.NewPromptInputPolicy("repo name?"), nil)
	branch := sam.NewVariable(
		id(t, "branch"),
		"branch to deploy",
		sam.NewDynamicShellPolicy(sam.NewShellCommand("git -C {{ repo }} branch --format='%(refname:short)'")),
		[]sam.Identifier{id(t, "repo")},
	)
	vars, err := sam.NewVarsRepository([]sam.Variable{repoName, branch})
	require.NoError(t, err)

	deploy := sam.NewAlias(id(t, "deploy"), "deploy a branch", "deploy.sh {{ repo }} {{ branch }}")
	aliases, err := sam.NewAliasCollection([]sam.Alias{deploy})
	require.NoError(t, err)

	resolver := mocks.NewScriptedResolver()
	resolver.Input[id(t, "repo")] = sam.NewChoice("infra")
	resolver.Dynamic[id(t, "branch")] = sam.NewChoice("release/1.0")

	planner := sam.NewPlanner(aliases, vars, resolver)
	result, err := planner.Execute(id(t, "deploy"))
	require.NoError(t, err)

	assert.Equal(t, "deploy.sh infra release/1.0", result.Command)
	require.Len(t, resolver.Commands, 1)
	assert.True(t, strings.Contains(resolver.Commands[0], "git -C infra branch"),
		"expected repo to be substituted before the dynamic command ran, got %q", resolver.Commands[0])
}

func TestPlannerExecuteAbortsOnResolverFailure(t *testing.T) {
	branch := sam.NewVariable(id(t, "branch"), "", sam.NewPromptInputPolicy("branch?"), nil)
	vars, err := sam.NewVarsRepository([]sam.Variable{branch})
	require.NoError(t, err)
	push := sam.NewAlias(id(t, "push"), "", "git push origin {{ branch }}")
	aliases, err := sam.NewAliasCollection([]sam.Alias{push})
	require.NoError(t, err)

	resolver := mocks.NewScriptedResolver()
	planner := sam.NewPlanner(aliases, vars, resolver)

	_, err = planner.Execute(id(t, "push"))
	require.Error(t, err)
	_, ok := err.(*sam.NoInputError)
	assert.True(t, ok, "got %T", err)
}

func TestPlannerExecuteAliasNotFound(t *testing.T) {
	aliases, err := sam.NewAliasCollection(nil)
	require.NoError(t, err)
	vars, err := sam.NewVarsRepository(nil)
	require.NoError(t, err)
	planner := sam.NewPlanner(aliases, vars, mocks.NewScriptedResolver())

	_, err = planner.Execute(id(t, "missing"))
	_, ok := err.(*sam.AliasNotFoundError)
	assert.True(t, ok, "got %T", err)
}
