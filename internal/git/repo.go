// Package git provides version-control operations via CommandRunner.
package git

import (
	"context"
	"strings"

	"github.com/webforge-cli/webforge/internal/errors"
	"github.com/webforge-cli/webforge/internal/exec"
)

// IsRepo reports whether dir is inside a git work tree.
// Uses `git rev-parse --is-inside-work-tree`. Execution failures and
// non-zero exits both mean "not a repo"; this probe never errors.
func IsRepo(ctx context.Context, cr exec.CommandRunner, dir string) bool {
	result, err := cr.Run(ctx, "git", []string{"rev-parse", "--is-inside-work-tree"}, exec.RunOpts{Dir: dir})
	if err != nil || result.ExitCode != 0 {
		return false
	}
	return strings.TrimSpace(result.Stdout) == "true"
}

// Init runs `git init` in dir.
func Init(ctx context.Context, cr exec.CommandRunner, dir string) error {
	result, err := cr.Run(ctx, "git", []string{"init"}, exec.RunOpts{Dir: dir})
	if err != nil {
		return errors.Wrap(errors.EGitInitFailed, "failed to run git init", err)
	}
	if result.ExitCode != 0 {
		return errors.NewWithDetails(errors.EGitInitFailed, "git init failed",
			map[string]string{"stderr": strings.TrimSpace(result.Stderr)})
	}
	return nil
}

// EnsureRepo initializes a git repository in dir unless one already exists.
// Returns created=false when dir is already inside a work tree, making
// repeated bootstrap runs safe.
func EnsureRepo(ctx context.Context, cr exec.CommandRunner, dir string) (created bool, err error) {
	if IsRepo(ctx, cr, dir) {
		return false, nil
	}
	if err := Init(ctx, cr, dir); err != nil {
		return false, err
	}
	return true, nil
}

// Describe returns `git describe --tags --always` output for dir, or ""
// when it cannot be determined. Best effort; never errors.
func Describe(ctx context.Context, cr exec.CommandRunner, dir string) string {
	result, err := cr.Run(ctx, "git", []string{"describe", "--tags", "--always"}, exec.RunOpts{Dir: dir})
	if err != nil || result.ExitCode != 0 {
		return ""
	}
	return strings.TrimSpace(result.Stdout)
}
