package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webforge-cli/webforge/internal/errors"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestExecute_UnknownFlagIsUsageError(t *testing.T) {
	var out, errBuf bytes.Buffer

	err := Execute([]string{"--definitely-not-a-flag"}, strings.NewReader(""), &out, &errBuf)
	require.Error(t, err)
	assert.Equal(t, errors.EUsage, errors.GetCode(err))
	assert.Equal(t, 2, errors.ExitCode(err))
}

func TestExecute_UnknownSubcommandIsUsageError(t *testing.T) {
	var out, errBuf bytes.Buffer

	err := Execute([]string{"conjure"}, strings.NewReader(""), &out, &errBuf)
	require.Error(t, err)
	assert.Equal(t, errors.EUsage, errors.GetCode(err))
}

func TestExecute_Version(t *testing.T) {
	var out, errBuf bytes.Buffer

	err := Execute([]string{"version"}, strings.NewReader(""), &out, &errBuf)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "webforge")
	assert.Contains(t, out.String(), "commit")
}

func TestExecute_Help(t *testing.T) {
	var out, errBuf bytes.Buffer

	err := Execute([]string{"--help"}, strings.NewReader(""), &out, &errBuf)
	require.NoError(t, err)

	help := out.String()
	assert.Contains(t, help, "up")
	assert.Contains(t, help, "init")
	assert.Contains(t, help, "doctor")
	assert.Contains(t, help, "--skip-install")
}

func TestExecute_InitReadsPipedAnswers(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("WEBFORGE_ASSUME_YES", "")

	var out, errBuf bytes.Buffer
	stdin := strings.NewReader("Piped App\nhttp://piped:8080\n")

	err := Execute([]string{"init"}, stdin, &out, &errBuf)
	require.NoError(t, err)

	env, rerr := os.ReadFile(filepath.Join(dir, ".env.local"))
	require.NoError(t, rerr)
	assert.Contains(t, string(env), "VITE_APP_NAME=Piped App")
	assert.Contains(t, string(env), "VITE_API_URL=http://piped:8080")

	// The questions were actually asked on stdout.
	assert.Contains(t, out.String(), "Application name")
}

func TestExecute_InitYesFlagAcceptsDefaults(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("WEBFORGE_ASSUME_YES", "")

	var out, errBuf bytes.Buffer

	err := Execute([]string{"init", "--yes"}, strings.NewReader(""), &out, &errBuf)
	require.NoError(t, err)

	env, rerr := os.ReadFile(filepath.Join(dir, ".env.local"))
	require.NoError(t, rerr)
	assert.Contains(t, string(env), "VITE_APP_NAME=web-app")
	assert.NotContains(t, out.String(), "Application name [", "--yes must not print questions")
}
