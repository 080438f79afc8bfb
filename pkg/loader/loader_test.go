package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestReadAliasesStampsNamespaceFromFileStem(t *testing.T) {
	path := writeTemp(t, "git.yml", `
- name: co
  desc: checkout a branch
  alias: "git checkout {{ branch }}"
- name: push
  desc: push a branch
  alias: "git push origin {{ branch }}"
`)
	aliases, err := ReadAliases(path)
	require.NoError(t, err)
	require.Len(t, aliases, 2)
	assert.Equal(t, "git", aliases[0].ID().Namespace)
	assert.Equal(t, "git checkout {{ branch }}", aliases[0].Template())
}

func TestReadAliasesRejectsMissingName(t *testing.T) {
	path := writeTemp(t, "git.yml", `
- desc: missing a name
  alias: "echo hi"
`)
	_, err := ReadAliases(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "git.yml")
}

func TestReadVarsEachPolicyKind(t *testing.T) {
	path := writeTemp(t, "git.yml", `
- name: branch
  desc: branch to use
  choices:
  - value: main
    desc: default branch
  - value: dev
- name: remote_branch
  desc: remote branches
  from_command: "git -C {{ repo }} branch -r"
  deps: [repo]
- name: repo
  desc: repo path
  from_input: "repo path?"
`)
	vars, err := ReadVars(path)
	require.NoError(t, err)
	require.Len(t, vars, 3)

	branch := vars[0]
	assert.Equal(t, 0, int(branch.Policy().Kind), "expected StaticChoices policy kind")
	assert.Len(t, branch.Policy().Choices, 2)

	remoteBranch := vars[1]
	assert.Equal(t, "git -C {{ repo }} branch -r", remoteBranch.Policy().Command.Value())
	require.Len(t, remoteBranch.Deps(), 1)
	assert.Equal(t, "repo", remoteBranch.Deps()[0].Name)

	repoVar := vars[2]
	assert.Equal(t, "repo path?", repoVar.Policy().Prompt)
}

func TestReadVarsRejectsAmbiguousPolicy(t *testing.T) {
	path := writeTemp(t, "git.yml", `
- name: branch
  desc: both set
  choices:
  - value: main
  from_input: "branch?"
`)
	_, err := ReadVars(path)
	assert.Error(t, err)
}

func TestDirLoadsAliasesAndVarsTogether(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "git.yml"), []byte(`
- name: co
  desc: checkout a branch
  alias: "git checkout {{ git::branch }}"
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vars.yml"), []byte(`
- name: branch
  desc: branch name
  choices:
  - value: main
`), 0o644))

	aliases, vars, err := Dir(dir)
	require.NoError(t, err)
	require.Len(t, aliases.Identifiers(), 1)
	_, err = vars.Get(aliases.Identifiers()[0])
	assert.Error(t, err, "alias identifier should not collide with variable namespace lookup")
}
