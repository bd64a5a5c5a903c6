package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/webforge-cli/webforge/internal/config"
	"github.com/webforge-cli/webforge/internal/console"
	"github.com/webforge-cli/webforge/internal/git"
	"github.com/webforge-cli/webforge/internal/pm"
	"github.com/webforge-cli/webforge/internal/toolchain"
)

// DoctorReport holds all the data for doctor output.
type DoctorReport struct {
	ProjectDir string

	// Tooling
	NodeVersion   string
	PMName        string
	PMVersion     string
	GitVersion    string
	DockerVersion string

	// Project state
	RepoInitialized bool
	RepoDescribe    string
	ManifestFound   bool
	LogFile         string
}

// Doctor implements `webforge doctor`: check prerequisites and report.
// The full report is always printed; the first fatal-tool failure is
// returned afterwards so the exit code reflects a broken environment.
// Doctor never writes project files.
func Doctor(ctx context.Context, deps Deps, dir string, manifest config.Manifest, manifestFound bool, logFile string) error {
	report := DoctorReport{
		ProjectDir:    dir,
		ManifestFound: manifestFound,
		LogFile:       filepath.Join(dir, logFile),
	}
	var firstErr error
	keep := func(err error) {
		if firstErr == nil && err != nil {
			firstErr = err
		}
	}

	node, err := toolchain.CheckNode(ctx, deps.CR, manifest.MinNodeMajor)
	keep(err)
	report.NodeVersion = versionOrMissing(node.Version, err)

	mgr, err := pm.Detect(deps.FS, deps.CR, dir, manifest.PackageManager)
	keep(err)
	if err == nil {
		report.PMName = mgr.Name()
		version, verr := mgr.Version(ctx)
		keep(verr)
		report.PMVersion = versionOrMissing(version, verr)
	} else {
		report.PMName = "missing"
		report.PMVersion = "missing"
	}

	gitTool, err := toolchain.CheckGit(ctx, deps.CR)
	keep(err)
	report.GitVersion = versionOrMissing(gitTool.Version, err)

	// Advisory: absence is reported, never returned.
	docker, err := toolchain.CheckDocker(ctx, deps.CR)
	report.DockerVersion = versionOrMissing(docker.Version, err)

	report.RepoInitialized = git.IsRepo(ctx, deps.CR, dir)
	if report.RepoInitialized {
		report.RepoDescribe = git.Describe(ctx, deps.CR, dir)
	}

	writeDoctorOutput(deps.Console, report)
	return firstErr
}

func versionOrMissing(version string, err error) string {
	if err != nil {
		return "missing"
	}
	return version
}

// writeDoctorOutput writes the stable key: value report.
func writeDoctorOutput(con *console.Console, r DoctorReport) {
	con.Infof("project_dir: %s", r.ProjectDir)
	con.Infof("node: %s", r.NodeVersion)
	con.Infof("package_manager: %s", pmLine(r))
	con.Infof("git: %s", r.GitVersion)
	con.Infof("docker: %s", r.DockerVersion)
	con.Infof("repo_initialized: %t", r.RepoInitialized)
	if r.RepoDescribe != "" {
		con.Infof("repo_describe: %s", r.RepoDescribe)
	}
	con.Infof("manifest: %s", foundOrDefaults(r.ManifestFound))
	con.Infof("log_file: %s", r.LogFile)
}

func pmLine(r DoctorReport) string {
	if r.PMName == "missing" {
		return "missing"
	}
	return fmt.Sprintf("%s %s", r.PMName, r.PMVersion)
}

func foundOrDefaults(found bool) string {
	if found {
		return config.ManifestName
	}
	return "defaults (no " + config.ManifestName + ")"
}
