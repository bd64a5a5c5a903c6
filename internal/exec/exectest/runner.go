// Package exectest provides a scriptable CommandRunner for tests.
package exectest

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/webforge-cli/webforge/internal/exec"
)

// Call records one Run invocation.
type Call struct {
	Name string
	Args []string
	Dir  string
}

// StubRunner implements exec.CommandRunner with canned responses.
// Unstubbed commands fail, matching a binary missing from PATH.
type StubRunner struct {
	mu      sync.Mutex
	results map[string]exec.CmdResult
	errs    map[string]error
	paths   map[string]string
	calls   []Call
}

// New creates an empty StubRunner.
func New() *StubRunner {
	return &StubRunner{
		results: make(map[string]exec.CmdResult),
		errs:    make(map[string]error),
		paths:   make(map[string]string),
	}
}

func key(name string, args []string) string {
	return name + " " + strings.Join(args, " ")
}

// Stub registers a response for the exact name+args invocation.
func (s *StubRunner) Stub(name string, args []string, result exec.CmdResult, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := key(name, args)
	s.results[k] = result
	if err != nil {
		s.errs[k] = err
	}
}

// StubPath registers a LookPath hit for name.
func (s *StubRunner) StubPath(name, path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paths[name] = path
}

// Calls returns the recorded Run invocations in order.
func (s *StubRunner) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// CalledWith reports whether any recorded call matches name+args.
func (s *StubRunner) CalledWith(name string, args ...string) bool {
	for _, c := range s.Calls() {
		if c.Name == name && strings.Join(c.Args, " ") == strings.Join(args, " ") {
			return true
		}
	}
	return false
}

func (s *StubRunner) Run(_ context.Context, name string, args []string, opts exec.RunOpts) (exec.CmdResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, Call{Name: name, Args: append([]string(nil), args...), Dir: opts.Dir})

	k := key(name, args)
	if err, ok := s.errs[k]; ok {
		return exec.CmdResult{}, err
	}
	if result, ok := s.results[k]; ok {
		return result, nil
	}
	return exec.CmdResult{}, fmt.Errorf("exectest: command not stubbed: %s", k)
}

func (s *StubRunner) LookPath(name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if path, ok := s.paths[name]; ok {
		return path, nil
	}
	return "", fmt.Errorf("exectest: %s not on stubbed PATH", name)
}
