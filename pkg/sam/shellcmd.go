package sam

import (
	"context"
	"os"
	"os/exec"

	"github.com/a8m/envsubst"
	"github.com/mattn/go-shellwords"
)

// ShellCommand is a typed carrier over a raw shell command string.
type ShellCommand struct {
	value string
}

// NewShellCommand wraps a raw command string.
func NewShellCommand(command string) ShellCommand {
	return ShellCommand{value: command}
}

// Value returns the raw command string.
func (c ShellCommand) Value() string {
	return c.value
}

// ExpandEnv returns a new ShellCommand with $VAR/${VAR} references expanded
// against vars, falling back to the inherited process environment. This is
// computed in-process via github.com/a8m/envsubst rather than shelling out
// to envsubst(1).
func (c ShellCommand) ExpandEnv(vars map[string]string) (ShellCommand, error) {
	lookup := func(name string) string {
		if v, ok := vars[name]; ok {
			return v
		}
		return os.Getenv(name)
	}
	expanded, err := envsubst.Eval(c.value, lookup)
	if err != nil {
		return ShellCommand{}, err
	}
	return NewShellCommand(expanded), nil
}

// Tokenize splits the command into argv the way a shell would, without
// invoking one. Used by pkg/launch's --no-shell mode.
func (c ShellCommand) Tokenize() ([]string, error) {
	return shellwords.Parse(c.value)
}

// currentShellOrSh returns $SHELL, falling back to /bin/sh.
func currentShellOrSh() string {
	if shell := os.Getenv("SHELL"); shell != "" {
		return shell
	}
	return "/bin/sh"
}

// Cmd builds an *exec.Cmd that runs the command through the current shell,
// inheriting the process environment and working directory.
func (c ShellCommand) Cmd(ctx context.Context) *exec.Cmd {
	cmd := exec.CommandContext(ctx, currentShellOrSh(), "-c", c.value)
	cmd.Env = os.Environ()
	if wd, err := os.Getwd(); err == nil {
		cmd.Dir = wd
	}
	return cmd
}
