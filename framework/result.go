package framework

import (
	"fmt"
	"strings"
	"time"
)

// Results is the ordered record of every check the harness was asked to run.
type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

// TestResult is the outcome of one check. Passed is what the harness counted, so it stays
// accurate when two checks in a battery share a display name.
type TestResult struct {
	TestID   TestID
	Passed   bool
	Skipped  bool
	Errors   []error
	Duration time.Duration
}

// Failure returns the check's first error labelled with the check's name, or a bare
// TestFailure if the check failed without recording one.
func (t TestResult) Failure() TestFailure {
	f := TestFailure{ID: t.TestID}
	if len(t.Errors) > 0 {
		f.Err = t.Errors[0]
	}
	return f
}

// OK is true if no executed check failed.
func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// TestsRun is the number of checks that were executed, not counting skipped ones.
func (r Results) TestsRun() int {
	n := 0
	for _, t := range r.Tests {
		if !t.Skipped {
			n++
		}
	}
	return n
}

func (r Results) TestsPassed() int {
	n := 0
	for _, t := range r.Tests {
		if t.Passed {
			n++
		}
	}
	return n
}

func (r Results) Skipped() []TestResult {
	var ret []TestResult
	for _, t := range r.Tests {
		if t.Skipped {
			ret = append(ret, t)
		}
	}
	return ret
}

type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// TestFailure is a one-line description of why a check failed, for summaries.
type TestFailure struct {
	ID  TestID
	Err error
}

func (f TestFailure) Error() string {
	if f.Err == nil {
		return fmt.Sprintf("[%s]", f.ID)
	}
	msg := f.Err.Error()
	if i := strings.IndexByte(msg, '\n'); i >= 0 {
		msg = msg[:i]
	}
	return fmt.Sprintf("[%s]: %s", f.ID, msg)
}

func (f TestFailure) Unwrap() error {
	return f.Err
}
