// Package prompt collects configuration values from the operator.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/webforge-cli/webforge/internal/errors"
)

// Prompter asks blocking line questions with defaults. With assumeYes set
// it answers every question with its default without touching the input.
type Prompter struct {
	in        *bufio.Reader
	out       io.Writer
	assumeYes bool
}

// New creates a Prompter reading from in and writing questions to out.
func New(in io.Reader, out io.Writer, assumeYes bool) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out, assumeYes: assumeYes}
}

// Ask prints "label [def]: " and returns the entered line, or def when the
// line is empty or assumeYes is set. Blocks until input is supplied.
func (p *Prompter) Ask(label, def string) (string, error) {
	if p.assumeYes {
		return def, nil
	}

	if def != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(p.out, "%s: ", label)
	}

	line, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.Wrap(errors.EPromptFailed, "failed to read input for "+label, err)
	}

	line = strings.TrimSpace(line)
	if line == "" {
		if def == "" && err == io.EOF {
			return "", errors.New(errors.EPromptFailed, "no input for "+label+" and no default available")
		}
		return def, nil
	}
	return line, nil
}
