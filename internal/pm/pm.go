// Package pm abstracts the JavaScript package manager behind a single type.
//
// npm, yarn, pnpm, and bun are supported. The manager is picked from an
// explicit manifest override, then by lockfile, then by probing PATH.
// All invocations go through the CommandRunner; the package manager itself
// is a black box.
package pm

import (
	"context"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/webforge-cli/webforge/internal/errors"
	"github.com/webforge-cli/webforge/internal/exec"
	"github.com/webforge-cli/webforge/internal/fs"
)

// Kind identifies a supported package manager.
type Kind string

const (
	Npm  Kind = "npm"
	Yarn Kind = "yarn"
	Pnpm Kind = "pnpm"
	Bun  Kind = "bun"
)

// probeOrder is the PATH probe order when no lockfile decides.
var probeOrder = []Kind{Npm, Yarn, Pnpm, Bun}

// lockfiles maps lockfile names to the manager that owns them.
// Checked in a fixed order so a directory with several lockfiles is stable.
var lockfiles = []struct {
	file string
	kind Kind
}{
	{"package-lock.json", Npm},
	{"yarn.lock", Yarn},
	{"pnpm-lock.yaml", Pnpm},
	{"bun.lockb", Bun},
	{"bun.lock", Bun},
}

// PackageManager runs install/audit/script operations for one manager kind.
type PackageManager struct {
	kind Kind
	cr   exec.CommandRunner
}

// New creates a PackageManager of the given kind.
func New(kind Kind, cr exec.CommandRunner) *PackageManager {
	return &PackageManager{kind: kind, cr: cr}
}

// Detect picks the package manager for dir. Resolution order:
//  1. override (from the manifest), which must name a supported manager
//     present on PATH
//  2. lockfile in dir
//  3. first of npm, yarn, pnpm, bun found on PATH
func Detect(fsys fs.FS, cr exec.CommandRunner, dir, override string) (*PackageManager, error) {
	if override != "" {
		kind := Kind(override)
		if !supported(kind) {
			return nil, errors.New(errors.EPMNotFound, "unsupported package_manager in manifest: "+override)
		}
		if _, err := cr.LookPath(string(kind)); err != nil {
			return nil, errors.New(errors.EPMNotFound, override+" is not installed or not on PATH")
		}
		return New(kind, cr), nil
	}

	for _, lf := range lockfiles {
		ok, err := fs.Exists(fsys, filepath.Join(dir, lf.file))
		if err != nil {
			return nil, errors.Wrap(errors.EPMNotFound, "failed to check for "+lf.file, err)
		}
		if ok {
			if _, err := cr.LookPath(string(lf.kind)); err != nil {
				return nil, errors.New(errors.EPMNotFound,
					lf.file+" found but "+string(lf.kind)+" is not installed or not on PATH")
			}
			return New(lf.kind, cr), nil
		}
	}

	for _, kind := range probeOrder {
		if _, err := cr.LookPath(string(kind)); err == nil {
			return New(kind, cr), nil
		}
	}

	return nil, errors.New(errors.EPMNotFound,
		"package manager not installed: none of npm, yarn, pnpm, bun found on PATH")
}

func supported(kind Kind) bool {
	for _, k := range probeOrder {
		if k == kind {
			return true
		}
	}
	return false
}

// Name returns the manager binary name.
func (m *PackageManager) Name() string {
	return string(m.kind)
}

// Version returns the manager's version string.
func (m *PackageManager) Version(ctx context.Context) (string, error) {
	result, err := m.cr.Run(ctx, string(m.kind), []string{"--version"}, exec.RunOpts{})
	if err != nil {
		return "", errors.New(errors.EPMNotFound, string(m.kind)+" is not installed or not on PATH")
	}
	if result.ExitCode != 0 {
		return "", errors.New(errors.EPMNotFound, string(m.kind)+" --version failed")
	}
	return strings.TrimSpace(result.Stdout), nil
}

// Install installs dependencies in dir, streaming output to stream.
func (m *PackageManager) Install(ctx context.Context, dir string, stream io.Writer) error {
	result, err := m.cr.Run(ctx, string(m.kind), []string{"install"}, exec.RunOpts{Dir: dir, Stream: stream})
	if err != nil {
		return errors.Wrap(errors.EInstallFailed, "failed to run "+string(m.kind)+" install", err)
	}
	if result.ExitCode != 0 {
		return errors.NewWithDetails(errors.EInstallFailed,
			string(m.kind)+" install failed",
			map[string]string{"exit_code": strconv.Itoa(result.ExitCode), "stderr": tail(result.Stderr)})
	}
	return nil
}

// Audit runs the manager's security audit in dir.
func (m *PackageManager) Audit(ctx context.Context, dir string) error {
	args := []string{"audit"}
	if m.kind == Npm {
		args = []string{"audit", "--audit-level=high"}
	}
	result, err := m.cr.Run(ctx, string(m.kind), args, exec.RunOpts{Dir: dir})
	if err != nil {
		// Failing to run the audit is not a findings report.
		return errors.Wrap(errors.EInternal, "failed to run "+string(m.kind)+" audit", err)
	}
	if result.ExitCode != 0 {
		return errors.NewWithDetails(errors.EAuditFindings,
			string(m.kind)+" audit reported findings",
			map[string]string{"exit_code": strconv.Itoa(result.ExitCode)})
	}
	return nil
}

// RunScript runs a package.json script in dir, streaming output to stream.
// The returned error carries no webforge code; callers attach the severity
// and code for the step they are executing.
func (m *PackageManager) RunScript(ctx context.Context, dir, script string, stream io.Writer) error {
	result, err := m.cr.Run(ctx, string(m.kind), []string{"run", script}, exec.RunOpts{Dir: dir, Stream: stream})
	if err != nil {
		return err
	}
	if result.ExitCode != 0 {
		return &ScriptError{Script: script, ExitCode: result.ExitCode, Stderr: tail(result.Stderr)}
	}
	return nil
}

// CommandLine returns the operator-facing invocation for a script,
// e.g. "npm run dev". Used by the generated README.
func (m *PackageManager) CommandLine(script string) string {
	return string(m.kind) + " run " + script
}

// ScriptError reports a package.json script that exited non-zero.
type ScriptError struct {
	Script   string
	ExitCode int
	Stderr   string
}

func (e *ScriptError) Error() string {
	return "script " + e.Script + " exited with code " + strconv.Itoa(e.ExitCode)
}

// tail returns the last few lines of s for error details.
func tail(s string) string {
	s = strings.TrimSpace(s)
	lines := strings.Split(s, "\n")
	if len(lines) > 5 {
		lines = lines[len(lines)-5:]
	}
	return strings.Join(lines, "\n")
}
