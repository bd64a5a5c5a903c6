// Package cli wires the cobra command tree to the command implementations.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/webforge-cli/webforge/internal/buildinfo"
	"github.com/webforge-cli/webforge/internal/commands"
	"github.com/webforge-cli/webforge/internal/config"
	"github.com/webforge-cli/webforge/internal/console"
	"github.com/webforge-cli/webforge/internal/errors"
	"github.com/webforge-cli/webforge/internal/exec"
	"github.com/webforge-cli/webforge/internal/fs"
	"github.com/webforge-cli/webforge/internal/logbook"
	"github.com/webforge-cli/webforge/internal/prompt"
)

// rootFlags are the global knobs shared by all commands.
type rootFlags struct {
	yes     bool
	noColor bool
}

// Execute parses args and runs the selected command. The returned error
// carries a stable code; main maps it to an exit status.
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "webforge",
		Short: "Bootstrap a web front-end project in the current directory",
		Long: "webforge checks prerequisites, scaffolds boilerplate, initializes git,\n" +
			"installs dependencies, and verifies the project builds. Running it with\n" +
			"no subcommand is the same as `webforge up`.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().BoolVarP(&flags.yes, "yes", "y", false, "accept all prompt defaults without asking")
	root.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "disable colored output")

	upCmd := newUpCmd(flags, stdin, stdout)
	root.RunE = upCmd.RunE
	root.Flags().AddFlagSet(upCmd.Flags())

	root.AddCommand(upCmd)
	root.AddCommand(newInitCmd(flags, stdin, stdout))
	root.AddCommand(newDoctorCmd(flags, stdin, stdout))
	root.AddCommand(newVersionCmd())

	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		if _, ok := errors.AsForgeError(err); ok {
			return err
		}
		// cobra's own failures are bad invocations: unknown flags,
		// unexpected arguments, unknown subcommands.
		return errors.Wrap(errors.EUsage, "invalid invocation", err)
	}
	return nil
}

func newUpCmd(flags *rootFlags, stdin io.Reader, stdout io.Writer) *cobra.Command {
	var skipInstall bool

	cmd := &cobra.Command{
		Use:   "up",
		Short: "Run the full bootstrap sequence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := newEnv(flags, stdin, stdout)
			if err != nil {
				return err
			}

			log, err := openLogbook(env)
			if err != nil {
				return err
			}
			defer log.Close()
			env.deps.Log = log

			return commands.Up(cmd.Context(), env.deps, env.dir, env.manifest, commands.UpOpts{SkipInstall: skipInstall})
		},
	}
	cmd.Flags().BoolVar(&skipInstall, "skip-install", false, "stop after git init; skip install, audit, tests, and build")
	return cmd
}

func newInitCmd(flags *rootFlags, stdin io.Reader, stdout io.Writer) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write webforge.yaml and the boilerplate files without running tools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := newEnv(flags, stdin, stdout)
			if err != nil {
				return err
			}

			log, err := openLogbook(env)
			if err != nil {
				return err
			}
			defer log.Close()
			env.deps.Log = log

			return commands.Init(cmd.Context(), env.deps, env.dir, commands.InitOpts{Force: force})
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing webforge.yaml")
	return cmd
}

func newDoctorCmd(flags *rootFlags, stdin io.Reader, stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check prerequisites and report; never writes project files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := newEnv(flags, stdin, stdout)
			if err != nil {
				return err
			}
			env.deps.Log = logbook.NewNop()
			return commands.Doctor(cmd.Context(), env.deps, env.dir, env.manifest, env.manifestFound, env.settings.LogFile)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the webforge version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.Println(buildinfo.String())
			return nil
		},
	}
}

// cmdEnv is the resolved per-invocation environment: settings, manifest,
// and the real collaborators (minus the logbook, opened per command).
type cmdEnv struct {
	dir           string
	settings      config.Settings
	manifest      config.Manifest
	manifestFound bool
	deps          commands.Deps
}

func newEnv(flags *rootFlags, stdin io.Reader, stdout io.Writer) (*cmdEnv, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, err
	}

	dir, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(errors.EInternal, "could not determine working directory", err)
	}

	fsys := fs.NewRealFS()
	manifest, found, err := config.LoadManifest(fsys, dir)
	if err != nil {
		return nil, err
	}

	// Prompts always read stdin, piped or interactive; only --yes (or
	// WEBFORGE_ASSUME_YES) answers with defaults.
	assumeYes := flags.yes || settings.AssumeYes

	con := console.New(stdout)
	if flags.noColor || settings.NoColor || !console.IsTerminal(stdout) {
		con = console.NewPlain(stdout)
	}

	return &cmdEnv{
		dir:           dir,
		settings:      settings,
		manifest:      manifest,
		manifestFound: found,
		deps: commands.Deps{
			CR:      exec.NewRealRunner(),
			FS:      fsys,
			Console: con,
			Prompt:  prompt.New(stdin, stdout, assumeYes),
			Stream:  stdout,
		},
	}, nil
}

func openLogbook(env *cmdEnv) (*logbook.Logbook, error) {
	log, err := logbook.Open(filepath.Join(env.dir, env.settings.LogFile))
	if err != nil {
		return nil, errors.Wrap(errors.ELogFailed, "could not open bootstrap log", err)
	}
	return log, nil
}
