package console

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusLines(t *testing.T) {
	var buf bytes.Buffer
	c := NewPlain(&buf)

	c.Step(2, 12, "detect package manager")
	c.OK("npm 10.9.0")
	c.Warn("docker not found; container build disabled")
	c.Fail("node is not installed")
	c.Info("done")

	out := buf.String()
	assert.Contains(t, out, "[2/12] detect package manager")
	assert.Contains(t, out, "ok npm 10.9.0")
	assert.Contains(t, out, "warn docker not found")
	assert.Contains(t, out, "fail node is not installed")
	assert.Contains(t, out, "done\n")
}

func TestOneLinePerCall(t *testing.T) {
	var buf bytes.Buffer
	c := NewPlain(&buf)

	c.OK("a")
	c.Warn("b")

	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("\n")))
}
