package commands

import (
	"context"
	"strings"

	"github.com/webforge-cli/webforge/internal/config"
	"github.com/webforge-cli/webforge/internal/console"
	"github.com/webforge-cli/webforge/internal/pm"
	"github.com/webforge-cli/webforge/internal/scaffold"
)

// InitOpts holds options for the init command.
type InitOpts struct {
	Force bool
}

// InitResult holds the result of the init command for output formatting.
type InitResult struct {
	Dir           string
	ManifestState string // "created" or "overwritten"
	Created       []string
	Skipped       []string
}

// Init implements `webforge init`: write the manifest and scaffold the
// boilerplate artifacts without touching external tools. The package
// manager is detected on a best-effort basis only to render the README
// commands; npm is assumed when none is found.
func Init(ctx context.Context, deps Deps, dir string, opts InitOpts) error {
	manifest := config.DefaultManifest()

	appName, err := deps.Prompt.Ask("Application name", manifest.Project)
	if err != nil {
		return err
	}
	apiURL, err := deps.Prompt.Ask("API base URL", "http://localhost:3000")
	if err != nil {
		return err
	}

	st := &State{Dir: dir, Manifest: manifest, AppName: appName, APIURL: apiURL}
	if mgr, derr := pm.Detect(deps.FS, deps.CR, dir, ""); derr == nil {
		st.PM = mgr
	} else {
		st.PM = pm.New(pm.Npm, deps.CR)
	}

	data := st.scaffoldData()

	created, err := scaffold.WriteManifest(deps.FS, dir, data, opts.Force)
	if err != nil {
		return err
	}
	manifestState := "created"
	if !created {
		manifestState = "overwritten"
	}
	deps.Log.Appendf("manifest %s (%s)", manifestState, config.ManifestName)

	artifacts, err := scaffold.WriteArtifacts(deps.FS, dir, data)
	if err != nil {
		return err
	}
	deps.Log.Appendf("scaffold: %d created, %d skipped", len(artifacts.Created), len(artifacts.Skipped))

	if err := scaffold.WriteEnvLocal(deps.FS, dir, data); err != nil {
		return err
	}
	deps.Log.Append("wrote " + scaffold.EnvLocalName)

	writeInitOutput(deps.Console, InitResult{
		Dir:           dir,
		ManifestState: manifestState,
		Created:       append(artifacts.Created, scaffold.EnvLocalName),
		Skipped:       artifacts.Skipped,
	})
	return nil
}

// writeInitOutput writes the stable key: value output for init.
func writeInitOutput(con *console.Console, r InitResult) {
	con.Infof("project_dir: %s", r.Dir)
	con.Infof("manifest: %s", r.ManifestState)
	con.Infof("files_created: %s", joinList(r.Created))
	con.Infof("files_skipped: %s", joinList(r.Skipped))
}

func joinList(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
