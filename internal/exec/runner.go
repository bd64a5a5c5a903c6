// Package exec provides a stub-friendly interface for running external commands.
//
// Every external collaborator (node, the package manager, git, docker) is
// invoked through CommandRunner so that tests can substitute a fake.
package exec

import (
	"bytes"
	"context"
	"io"
	"os/exec"
)

// CmdResult holds the result of a command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunOpts holds optional parameters for command execution.
type RunOpts struct {
	// Dir is the working directory (optional).
	Dir string

	// Env is an overlay of extra environment variables.
	Env map[string]string

	// Stream, if non-nil, receives the command's stdout and stderr as they
	// are produced, in addition to the captured CmdResult copies. Used for
	// long-running package manager invocations so the operator sees progress.
	Stream io.Writer
}

// CommandRunner is the interface for running and locating external commands.
// Implementations must be safe for stubbing in tests.
type CommandRunner interface {
	// Run executes a command and returns the result.
	// Returns CmdResult with ExitCode set if the process exits (even non-zero).
	// Returns error only for execution failures (binary not found, ctx canceled, io failure).
	Run(ctx context.Context, name string, args []string, opts RunOpts) (CmdResult, error)

	// LookPath reports the absolute path of an executable on PATH,
	// or an error if it is not present.
	LookPath(name string) (string, error)
}

// RealRunner is the production implementation of CommandRunner using os/exec.
type RealRunner struct{}

// NewRealRunner creates a new RealRunner.
func NewRealRunner() *RealRunner {
	return &RealRunner{}
}

// Run executes the command, capturing stdout/stderr and mirroring them to
// opts.Stream when set.
func (r *RealRunner) Run(ctx context.Context, name string, args []string, opts RunOpts) (CmdResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	if opts.Stream != nil {
		cmd.Stdout = io.MultiWriter(&stdout, opts.Stream)
		cmd.Stderr = io.MultiWriter(&stderr, opts.Stream)
	} else {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	}

	if opts.Dir != "" {
		cmd.Dir = opts.Dir
	}

	if len(opts.Env) > 0 {
		cmd.Env = cmd.Environ()
		for k, v := range opts.Env {
			cmd.Env = append(cmd.Env, k+"="+v)
		}
	}

	err := cmd.Run()

	result := CmdResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		// Process ran but exited non-zero: report via ExitCode, not error.
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		// Binary not found, ctx canceled, io failure.
		return result, err
	}

	return result, nil
}

// LookPath delegates to exec.LookPath.
func (r *RealRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
