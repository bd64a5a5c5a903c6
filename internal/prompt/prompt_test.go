package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webforge-cli/webforge/internal/errors"
)

func TestAsk_ReadsValue(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("my-app\n"), &out, false)

	got, err := p.Ask("Application name", "web-app")
	require.NoError(t, err)
	assert.Equal(t, "my-app", got)
	assert.Equal(t, "Application name [web-app]: ", out.String())
}

func TestAsk_EmptyUsesDefault(t *testing.T) {
	p := New(strings.NewReader("\n"), &bytes.Buffer{}, false)

	got, err := p.Ask("API URL", "http://localhost:3000")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000", got)
}

func TestAsk_TrimsWhitespace(t *testing.T) {
	p := New(strings.NewReader("  spaced  \n"), &bytes.Buffer{}, false)

	got, err := p.Ask("Application name", "")
	require.NoError(t, err)
	assert.Equal(t, "spaced", got)
}

func TestAsk_AssumeYesSkipsInput(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader(""), &out, true)

	got, err := p.Ask("Application name", "web-app")
	require.NoError(t, err)
	assert.Equal(t, "web-app", got)
	assert.Empty(t, out.String(), "assumeYes must not print a question")
}

func TestAsk_EOFWithoutDefaultFails(t *testing.T) {
	p := New(strings.NewReader(""), &bytes.Buffer{}, false)

	_, err := p.Ask("Application name", "")
	require.Error(t, err)
	assert.Equal(t, errors.EPromptFailed, errors.GetCode(err))
}

func TestAsk_SequentialQuestions(t *testing.T) {
	p := New(strings.NewReader("first\nsecond\n"), &bytes.Buffer{}, false)

	a, err := p.Ask("one", "")
	require.NoError(t, err)
	b, err := p.Ask("two", "")
	require.NoError(t, err)

	assert.Equal(t, "first", a)
	assert.Equal(t, "second", b)
}
