// Package commands implements the webforge CLI commands.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/webforge-cli/webforge/internal/config"
	"github.com/webforge-cli/webforge/internal/console"
	"github.com/webforge-cli/webforge/internal/errors"
	"github.com/webforge-cli/webforge/internal/exec"
	"github.com/webforge-cli/webforge/internal/fs"
	"github.com/webforge-cli/webforge/internal/git"
	"github.com/webforge-cli/webforge/internal/logbook"
	"github.com/webforge-cli/webforge/internal/pm"
	"github.com/webforge-cli/webforge/internal/prompt"
	"github.com/webforge-cli/webforge/internal/scaffold"
	"github.com/webforge-cli/webforge/internal/sequence"
	"github.com/webforge-cli/webforge/internal/toolchain"
)

// Deps carries the injected collaborators for a command. Real
// implementations in production, stubs in tests.
type Deps struct {
	CR      exec.CommandRunner
	FS      fs.FS
	Console *console.Console
	Log     *logbook.Logbook
	Prompt  *prompt.Prompter
	Stream  io.Writer // package manager output; nil discards
}

// UpOpts holds options for the up command.
type UpOpts struct {
	SkipInstall bool
}

// State accumulates results across bootstrap steps.
// Fields are populated by steps as they execute, in order.
type State struct {
	Dir      string
	Manifest config.Manifest

	// Populated by the prerequisite steps
	Node      toolchain.Tool
	PM        *pm.PackageManager
	PMVersion string
	Git       toolchain.Tool
	Docker    toolchain.Tool // zero when the advisory check failed

	// Populated by the configuration step
	AppName string
	APIURL  string

	// Populated by the write steps
	Artifacts  scaffold.WriteResult
	GitCreated bool
}

// Up implements `webforge up`: the full bootstrap sequence.
//
// The prerequisite checks (node, package manager, git) run before any file
// is written; a missing fatal tool halts the run with the project directory
// untouched except for the logbook.
func Up(ctx context.Context, deps Deps, dir string, manifest config.Manifest, opts UpOpts) error {
	st := &State{Dir: dir, Manifest: manifest}

	seq := sequence.New(deps.Log, deps.Console)
	steps := upSteps(deps, st, opts)

	sum, err := seq.Execute(ctx, steps)
	if err != nil {
		return err
	}

	writeUpOutput(deps.Console, st, sum)
	return nil
}

// upSteps assembles the ordered step list for a bootstrap run.
func upSteps(deps Deps, st *State, opts UpOpts) []sequence.Step {
	steps := []sequence.Step{
		{Name: "check node", Severity: sequence.Fatal, Run: func(ctx context.Context) (string, error) {
			tool, err := toolchain.CheckNode(ctx, deps.CR, st.Manifest.MinNodeMajor)
			if err != nil {
				return "", err
			}
			st.Node = tool
			return tool.Version, nil
		}},
		{Name: "detect package manager", Severity: sequence.Fatal, Run: func(ctx context.Context) (string, error) {
			mgr, err := pm.Detect(deps.FS, deps.CR, st.Dir, st.Manifest.PackageManager)
			if err != nil {
				return "", err
			}
			version, err := mgr.Version(ctx)
			if err != nil {
				return "", err
			}
			st.PM = mgr
			st.PMVersion = version
			return mgr.Name() + " " + version, nil
		}},
		{Name: "check git", Severity: sequence.Fatal, Run: func(ctx context.Context) (string, error) {
			tool, err := toolchain.CheckGit(ctx, deps.CR)
			if err != nil {
				return "", err
			}
			st.Git = tool
			return tool.Version, nil
		}},
		{Name: "check docker", Severity: sequence.Advisory, Run: func(ctx context.Context) (string, error) {
			tool, err := toolchain.CheckDocker(ctx, deps.CR)
			if err != nil {
				return "", err
			}
			st.Docker = tool
			return tool.Version, nil
		}},
		{Name: "collect configuration", Severity: sequence.Fatal, Run: func(ctx context.Context) (string, error) {
			return "", collectConfiguration(deps, st)
		}},
		{Name: "write " + scaffold.EnvLocalName, Severity: sequence.Fatal, Run: func(ctx context.Context) (string, error) {
			return "", scaffold.WriteEnvLocal(deps.FS, st.Dir, st.scaffoldData())
		}},
		{Name: "scaffold project files", Severity: sequence.Fatal, Run: func(ctx context.Context) (string, error) {
			result, err := scaffold.WriteArtifacts(deps.FS, st.Dir, st.scaffoldData())
			if err != nil {
				return "", err
			}
			st.Artifacts = result
			return fmt.Sprintf("%d created, %d skipped", len(result.Created), len(result.Skipped)), nil
		}},
		{Name: "initialize git repository", Severity: sequence.Fatal, Run: func(ctx context.Context) (string, error) {
			created, err := git.EnsureRepo(ctx, deps.CR, st.Dir)
			if err != nil {
				return "", err
			}
			st.GitCreated = created
			if !created {
				return "already initialized", nil
			}
			return "", nil
		}},
	}

	if opts.SkipInstall {
		return steps
	}

	steps = append(steps,
		sequence.Step{Name: "install dependencies", Severity: sequence.Fatal, Run: func(ctx context.Context) (string, error) {
			return "", st.PM.Install(ctx, st.Dir, deps.Stream)
		}},
		sequence.Step{Name: "security audit", Severity: policySeverity(st.Manifest.Policy.Audit), Run: func(ctx context.Context) (string, error) {
			return "", st.PM.Audit(ctx, st.Dir)
		}},
		sequence.Step{Name: "run tests", Severity: policySeverity(st.Manifest.Policy.Tests), Run: func(ctx context.Context) (string, error) {
			if err := st.PM.RunScript(ctx, st.Dir, st.Manifest.Scripts.Test, deps.Stream); err != nil {
				return "", errors.Wrap(errors.ETestsFailed, "test run failed", err)
			}
			return "", nil
		}},
		sequence.Step{Name: "production build", Severity: sequence.Fatal, Run: func(ctx context.Context) (string, error) {
			if err := st.PM.RunScript(ctx, st.Dir, st.Manifest.Scripts.Build, deps.Stream); err != nil {
				return "", errors.Wrap(errors.EBuildFailed, "production build failed", err)
			}
			return "", nil
		}},
	)
	return steps
}

// collectConfiguration prompts for the two .env.local values, seeding
// defaults from an existing file so repeated runs are low-friction.
func collectConfiguration(deps Deps, st *State) error {
	defaults := map[string]string{
		"VITE_APP_NAME": st.Manifest.Project,
		"VITE_API_URL":  "http://localhost:3000",
	}

	existing, err := deps.FS.ReadFile(filepath.Join(st.Dir, scaffold.EnvLocalName))
	if err == nil {
		for k, v := range scaffold.ParseEnvLocal(existing) {
			defaults[k] = v
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	appName, err := deps.Prompt.Ask("Application name", defaults["VITE_APP_NAME"])
	if err != nil {
		return err
	}
	apiURL, err := deps.Prompt.Ask("API base URL", defaults["VITE_API_URL"])
	if err != nil {
		return err
	}

	st.AppName = appName
	st.APIURL = apiURL
	return nil
}

// scaffoldData builds the template context from the accumulated state.
func (st *State) scaffoldData() scaffold.Data {
	data := scaffold.Data{
		Project: scaffold.SlugifyName(st.AppName, 40),
		AppName: st.AppName,
		APIURL:  st.APIURL,
	}
	if st.PM != nil {
		data.PM = st.PM.Name()
		data.InstallCmd = st.PM.Name() + " install"
		data.DevCmd = st.PM.CommandLine(st.Manifest.Scripts.Dev)
		data.BuildCmd = st.PM.CommandLine(st.Manifest.Scripts.Build)
		data.TestCmd = st.PM.CommandLine(st.Manifest.Scripts.Test)
	}
	return data
}

func policySeverity(policy string) sequence.Severity {
	if policy == config.PolicyFatal {
		return sequence.Fatal
	}
	return sequence.Advisory
}

// writeUpOutput prints the stable key: value summary for up.
func writeUpOutput(con *console.Console, st *State, sum sequence.Summary) {
	con.Info("")
	con.Infof("project_dir: %s", st.Dir)
	con.Infof("package_manager: %s %s", st.PM.Name(), st.PMVersion)
	con.Infof("files_created: %s", joinList(st.Artifacts.Created))
	con.Infof("files_skipped: %s", joinList(st.Artifacts.Skipped))
	con.Infof("steps_run: %s", strconv.Itoa(sum.Executed))
	con.Infof("warnings: %s", strconv.Itoa(len(sum.Warnings)))
	for _, w := range sum.Warnings {
		con.Warn(w.Step + ": " + w.Message)
	}
}
