package sam

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShellCommandExpandEnvUsesSuppliedVarsAndEnvironment(t *testing.T) {
	os.Setenv("SAM_TEST_SHELLCMD_VAR", "from-environment")
	defer os.Unsetenv("SAM_TEST_SHELLCMD_VAR")

	cmd := NewShellCommand("echo $SAM_TEST_SHELLCMD_VAR ${OTHER}")
	expanded, err := cmd.ExpandEnv(map[string]string{"OTHER": "from-vars"})
	require.NoError(t, err)
	assert.Equal(t, "echo from-environment from-vars", expanded.Value())
}

func TestShellCommandTokenize(t *testing.T) {
	cmd := NewShellCommand(`git commit -m "initial commit"`)
	tokens, err := cmd.Tokenize()
	require.NoError(t, err)
	assert.Equal(t, []string{"git", "commit", "-m", "initial commit"}, tokens)
}

func TestShellCommandCmd(t *testing.T) {
	cmd := NewShellCommand("true")
	c := cmd.Cmd(context.Background())
	require.Len(t, c.Args, 3)
	assert.Equal(t, "-c", c.Args[1])
	assert.Equal(t, "true", c.Args[2])
	assert.NotEmpty(t, c.Env, "expected inherited environment")
}
