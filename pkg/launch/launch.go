// Package launch runs a resolved sam command, using an exec.Command +
// bufio.Scanner idiom to stream or capture its output.
package launch

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/mattsolo1/sam/pkg/sam"
)

// Options configures how a resolved command is launched.
type Options struct {
	// NoShell tokenizes the command with ShellCommand.Tokenize and execs
	// argv[0] directly instead of running it through the current shell.
	NoShell bool
	// Stdout and Stderr receive the child's output; Stdin supplies input.
	// Any left nil default to os.Stdout/os.Stderr/os.Stdin.
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
}

// Run launches the command described by result's final Command string and
// waits for it to exit, returning the child's exit error unwrapped (so
// callers can inspect *exec.ExitError for the exit code).
func Run(ctx context.Context, result *sam.ExecutionResult, opts Options) error {
	cmd, err := build(ctx, result.Command, opts)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Capture launches the command and returns its stdout (stderr is captured
// separately and only reported inside the error on failure); used by
// callers that want the output rather than an interactive terminal session
// (mirrors command_source.go's capture-then-parse idiom).
func Capture(ctx context.Context, command string, opts Options) (string, error) {
	opts.Stdout = nil
	cmd, err := build(ctx, command, opts)
	if err != nil {
		return "", err
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("sam/launch: command failed: %w\nstderr: %s", err, stderr.String())
	}
	return stdout.String(), nil
}

// Lines runs command and returns its stdout split into lines, dropping
// empty lines; the remaining lines are returned as-is, without trimming
// whitespace.
func Lines(ctx context.Context, command string, opts Options) ([]string, error) {
	out, err := Capture(ctx, command, opts)
	if err != nil {
		return nil, err
	}
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader([]byte(out)))
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

func build(ctx context.Context, command string, opts Options) (*exec.Cmd, error) {
	var cmd *exec.Cmd
	if opts.NoShell {
		argv, err := sam.NewShellCommand(command).Tokenize()
		if err != nil {
			return nil, fmt.Errorf("sam/launch: tokenizing %q: %w", command, err)
		}
		if len(argv) == 0 {
			return nil, fmt.Errorf("sam/launch: %q tokenized to an empty argument list", command)
		}
		cmd = exec.CommandContext(ctx, argv[0], argv[1:]...)
		cmd.Env = os.Environ()
		if wd, err := os.Getwd(); err == nil {
			cmd.Dir = wd
		}
	} else {
		cmd = sam.NewShellCommand(command).Cmd(ctx)
	}

	cmd.Stdout = opts.Stdout
	cmd.Stderr = opts.Stderr
	cmd.Stdin = opts.Stdin
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	return cmd, nil
}
