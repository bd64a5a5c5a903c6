// Package toolchain verifies the external tools webforge depends on.
//
// Each check runs "<tool> --version" through the CommandRunner and returns
// the trimmed version string. Missing or failing tools map to stable error
// codes; severity (fatal vs advisory) is the caller's decision.
package toolchain

import (
	"context"
	"strconv"
	"strings"

	"github.com/webforge-cli/webforge/internal/errors"
	"github.com/webforge-cli/webforge/internal/exec"
)

// Tool describes a verified external tool.
type Tool struct {
	Name    string
	Version string // trimmed version line, e.g. "v22.4.1" or "git version 2.43.0"
}

// CheckNode verifies node is installed and its major version is >= minMajor.
func CheckNode(ctx context.Context, cr exec.CommandRunner, minMajor int) (Tool, error) {
	result, err := cr.Run(ctx, "node", []string{"--version"}, exec.RunOpts{})
	if err != nil {
		return Tool{}, errors.New(errors.ENodeNotInstalled, "node is not installed or not on PATH; install from https://nodejs.org/")
	}
	if result.ExitCode != 0 {
		return Tool{}, errors.New(errors.ENodeNotInstalled, "node --version failed")
	}

	version := strings.TrimSpace(result.Stdout)
	major, err := nodeMajor(version)
	if err != nil {
		return Tool{}, errors.Wrap(errors.ENodeVersion, "could not parse node version "+version, err)
	}
	if major < minMajor {
		return Tool{}, errors.NewWithDetails(errors.ENodeVersion,
			"node "+version+" is below the required major version "+strconv.Itoa(minMajor),
			map[string]string{"found": version, "min_major": strconv.Itoa(minMajor)})
	}

	return Tool{Name: "node", Version: version}, nil
}

// nodeMajor extracts the major version from node's "vMAJOR.MINOR.PATCH" output.
func nodeMajor(version string) (int, error) {
	v := strings.TrimPrefix(version, "v")
	majorStr, _, _ := strings.Cut(v, ".")
	return strconv.Atoi(majorStr)
}

// CheckGit verifies git is installed and returns its version.
func CheckGit(ctx context.Context, cr exec.CommandRunner) (Tool, error) {
	result, err := cr.Run(ctx, "git", []string{"--version"}, exec.RunOpts{})
	if err != nil {
		return Tool{}, errors.New(errors.EGitNotInstalled, "git is not installed or not on PATH")
	}
	if result.ExitCode != 0 {
		return Tool{}, errors.New(errors.EGitNotInstalled, "git --version failed")
	}
	return Tool{Name: "git", Version: strings.TrimSpace(result.Stdout)}, nil
}

// CheckDocker verifies the container engine is present. Presence check only;
// webforge never builds images itself.
func CheckDocker(ctx context.Context, cr exec.CommandRunner) (Tool, error) {
	result, err := cr.Run(ctx, "docker", []string{"--version"}, exec.RunOpts{})
	if err != nil {
		return Tool{}, errors.New(errors.EDockerNotInstalled, "docker is not installed or not on PATH; Dockerfile will be unused")
	}
	if result.ExitCode != 0 {
		return Tool{}, errors.New(errors.EDockerNotInstalled, "docker --version failed")
	}
	return Tool{Name: "docker", Version: strings.TrimSpace(result.Stdout)}, nil
}
