package logbook

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
}

func TestAppend_LineFormat(t *testing.T) {
	var buf bytes.Buffer
	lb := New(&buf)
	lb.SetNowFunc(fixedNow)

	require.NoError(t, lb.Append("node check: ok"))

	assert.Equal(t, "2026-03-14 09:26:53 - node check: ok\n", buf.String())
}

func TestAppendf(t *testing.T) {
	var buf bytes.Buffer
	lb := New(&buf)
	lb.SetNowFunc(fixedNow)

	require.NoError(t, lb.Appendf("step %q: %s", "install dependencies", "ok"))

	assert.Contains(t, buf.String(), `step "install dependencies": ok`)
}

func TestAppend_OrderPreserved(t *testing.T) {
	var buf bytes.Buffer
	lb := New(&buf)
	lb.SetNowFunc(fixedNow)

	msgs := []string{"first", "second", "third"}
	for _, m := range msgs {
		require.NoError(t, lb.Append(m))
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	for i, m := range msgs {
		assert.True(t, strings.HasSuffix(lines[i], " - "+m))
	}
}

func TestOpen_AppendsAcrossHandles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "bootstrap.log")

	lb, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, lb.Append("first run"))
	require.NoError(t, lb.Close())

	lb, err = Open(path)
	require.NoError(t, err)
	require.NoError(t, lb.Append("second run"))
	require.NoError(t, lb.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "first run")
	assert.Contains(t, lines[1], "second run")

	// Well-formed timestamp prefix on every line.
	for _, line := range lines {
		prefix, _, found := strings.Cut(line, " - ")
		require.True(t, found, "line %q missing ' - ' separator", line)
		_, err := time.Parse(TimeLayout, prefix)
		assert.NoError(t, err, "bad timestamp prefix in %q", line)
	}
}
