// Package sequence provides the bootstrap sequencer.
//
// A sequence is an ordered list of named steps, each fatal or advisory,
// executed strictly one after another. A fatal failure stops the run; an
// advisory failure is surfaced as a warning and the run continues. Every
// executed step produces exactly one logbook entry, in execution order.
// There is no rollback, no retry, and no parallelism: each step's cost is
// dominated by the external tool it invokes, and later steps depend on
// earlier ones.
package sequence

import (
	"context"

	"github.com/webforge-cli/webforge/internal/console"
	"github.com/webforge-cli/webforge/internal/errors"
	"github.com/webforge-cli/webforge/internal/logbook"
)

// Severity classifies how a step failure affects the sequence.
type Severity int

const (
	// Fatal aborts the sequence on failure.
	Fatal Severity = iota
	// Advisory logs a warning on failure and continues.
	Advisory
)

// String returns the severity name.
func (s Severity) String() string {
	if s == Advisory {
		return "advisory"
	}
	return "fatal"
}

// Step is one discrete unit of setup work.
type Step struct {
	// Name is the operator-facing label, e.g. "install dependencies".
	Name string

	// Severity decides whether a failure aborts the sequence.
	Severity Severity

	// Run performs the step's side effect. A nil error is success. The
	// returned detail, when non-empty, is appended to the step's log entry
	// and status line (e.g. a tool version, or "already initialized").
	Run func(ctx context.Context) (detail string, err error)
}

// Warning records an advisory step that failed.
type Warning struct {
	Step    string
	Message string
}

// Summary reports the outcome of an executed sequence.
type Summary struct {
	// Executed is the number of steps that ran (including a failed fatal step).
	Executed int
	// Warnings lists advisory failures in execution order.
	Warnings []Warning
}

// Sequencer executes steps against a logbook and console.
type Sequencer struct {
	log *logbook.Logbook
	con *console.Console
}

// New creates a Sequencer.
func New(log *logbook.Logbook, con *console.Console) *Sequencer {
	return &Sequencer{log: log, con: con}
}

// Execute runs steps in order.
//
// Behavior:
//   - Checks ctx before each step; an interrupt aborts with E_INTERRUPTED.
//   - On success: one "<name>: ok" log entry, one ok status line.
//   - On advisory failure: one "<name>: warning: <err>" log entry, one warn
//     status line, sequence continues.
//   - On fatal failure: one "<name>: failed: <err>" log entry, one fail
//     status line, sequence stops. ForgeError codes are preserved; other
//     errors are wrapped as E_INTERNAL with the step name in details.
func (s *Sequencer) Execute(ctx context.Context, steps []Step) (Summary, error) {
	var sum Summary
	total := len(steps)

	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return sum, errors.Wrap(errors.EInterrupted, "bootstrap interrupted before step "+step.Name, err)
		}

		s.con.Step(i+1, total, step.Name)

		detail, err := step.Run(ctx)
		sum.Executed++

		if err == nil {
			if detail != "" {
				s.log.Appendf("%s: ok (%s)", step.Name, detail)
				s.con.OK(step.Name + " (" + detail + ")")
			} else {
				s.log.Appendf("%s: ok", step.Name)
				s.con.OK(step.Name)
			}
			continue
		}

		if step.Severity == Advisory {
			s.log.Appendf("%s: warning: %s", step.Name, err.Error())
			s.con.Warn(step.Name + ": " + err.Error())
			sum.Warnings = append(sum.Warnings, Warning{Step: step.Name, Message: err.Error()})
			continue
		}

		s.log.Appendf("%s: failed: %s", step.Name, err.Error())
		s.con.Fail(step.Name + ": " + err.Error())
		return sum, wrapStepError(err, step.Name)
	}

	return sum, nil
}

// wrapStepError ensures the error carries a stable code.
func wrapStepError(err error, stepName string) error {
	if _, ok := errors.AsForgeError(err); ok {
		return err
	}
	return errors.WrapWithDetails(errors.EInternal, "internal error", err,
		map[string]string{"step": stepName})
}
