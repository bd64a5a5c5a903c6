package toolchain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webforge-cli/webforge/internal/errors"
	"github.com/webforge-cli/webforge/internal/exec"
	"github.com/webforge-cli/webforge/internal/exec/exectest"
)

func TestCheckNode_OK(t *testing.T) {
	cr := exectest.New()
	cr.Stub("node", []string{"--version"}, exec.CmdResult{Stdout: "v22.4.1\n"}, nil)

	tool, err := CheckNode(context.Background(), cr, 18)
	require.NoError(t, err)
	assert.Equal(t, "node", tool.Name)
	assert.Equal(t, "v22.4.1", tool.Version)
}

func TestCheckNode_NotInstalled(t *testing.T) {
	cr := exectest.New()

	_, err := CheckNode(context.Background(), cr, 18)
	require.Error(t, err)
	assert.Equal(t, errors.ENodeNotInstalled, errors.GetCode(err))
}

func TestCheckNode_BelowMinimum(t *testing.T) {
	cr := exectest.New()
	cr.Stub("node", []string{"--version"}, exec.CmdResult{Stdout: "v16.20.0\n"}, nil)

	_, err := CheckNode(context.Background(), cr, 18)
	require.Error(t, err)
	assert.Equal(t, errors.ENodeVersion, errors.GetCode(err))

	fe, ok := errors.AsForgeError(err)
	require.True(t, ok)
	assert.Equal(t, "v16.20.0", fe.Details["found"])
	assert.Equal(t, "18", fe.Details["min_major"])
}

func TestCheckNode_ExactMinimumPasses(t *testing.T) {
	cr := exectest.New()
	cr.Stub("node", []string{"--version"}, exec.CmdResult{Stdout: "v18.0.0\n"}, nil)

	_, err := CheckNode(context.Background(), cr, 18)
	assert.NoError(t, err)
}

func TestCheckNode_UnparseableVersion(t *testing.T) {
	cr := exectest.New()
	cr.Stub("node", []string{"--version"}, exec.CmdResult{Stdout: "garbage\n"}, nil)

	_, err := CheckNode(context.Background(), cr, 18)
	require.Error(t, err)
	assert.Equal(t, errors.ENodeVersion, errors.GetCode(err))
}

func TestNodeMajor(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"v22.4.1", 22},
		{"v18.0.0", 18},
		{"20.11.1", 20},
	}
	for _, tt := range tests {
		got, err := nodeMajor(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestCheckGit(t *testing.T) {
	cr := exectest.New()
	cr.Stub("git", []string{"--version"}, exec.CmdResult{Stdout: "git version 2.43.0\n"}, nil)

	tool, err := CheckGit(context.Background(), cr)
	require.NoError(t, err)
	assert.Equal(t, "git version 2.43.0", tool.Version)
}

func TestCheckGit_Missing(t *testing.T) {
	cr := exectest.New()

	_, err := CheckGit(context.Background(), cr)
	require.Error(t, err)
	assert.Equal(t, errors.EGitNotInstalled, errors.GetCode(err))
}

func TestCheckDocker_Missing(t *testing.T) {
	cr := exectest.New()

	_, err := CheckDocker(context.Background(), cr)
	require.Error(t, err)
	assert.Equal(t, errors.EDockerNotInstalled, errors.GetCode(err))
}

func TestCheckDocker_NonZeroExit(t *testing.T) {
	cr := exectest.New()
	cr.Stub("docker", []string{"--version"}, exec.CmdResult{ExitCode: 1}, nil)

	_, err := CheckDocker(context.Background(), cr)
	require.Error(t, err)
	assert.Equal(t, errors.EDockerNotInstalled, errors.GetCode(err))
}
