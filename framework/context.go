package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"time"
)

// CheckFunc is the procedure of a single check. It reports whether the check passed.
//
// A check also fails if it calls Errorf, calls FailNow (which is what the require package
// does), or panics; in all of those cases the harness records the failure and moves on to
// the next check.
type CheckFunc func(*Context) bool

// Context is the per-check state passed to a CheckFunc. It implements the TestingT interface
// of the testify assert and require packages.
type Context struct {
	id          TestID
	testLogger  TestLogger
	debugLogger CapturingLogger
	failed      bool
	errors      []error
}

func newContext(id TestID, testLogger TestLogger, started time.Time) *Context {
	c := &Context{id: id, testLogger: testLogger}
	c.debugLogger.startAt(started)
	return c
}

func (c *Context) run(check CheckFunc) (passed bool) {
	defer func() {
		if r := recover(); r != nil {
			c.failed = true
			passed = false
			var addError error
			if _, ok := r.(*Context); ok {
				if len(c.errors) == 0 {
					addError = errors.New("check failed with no failure message")
				}
			} else {
				addError = fmt.Errorf("unexpected panic in check: %+v\n%s", r, string(debug.Stack()))
			}
			if addError != nil {
				c.errors = append(c.errors, addError)
				c.testLogger.TestError(c.id, addError)
			}
		}
	}()

	ok := check(c)
	return ok && !c.failed
}

func (c *Context) ID() TestID {
	return c.id
}

func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := reformatError(fmt.Errorf(format, args...))
	c.errors = append(c.errors, err)
	c.testLogger.TestError(c.id, err)
}

func (c *Context) FailNow() {
	panic(c)
}

// Logf writes a diagnostic line that is always shown, regardless of debug settings.
func (c *Context) Logf(format string, args ...interface{}) {
	c.testLogger.TestMessage(c.id, fmt.Sprintf(format, args...))
}

// Debug adds a line to the check's captured debug output.
func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}

// reformatError strips the "Error Trace" and "Test" sections from a testify failure message,
// since stack locations inside the harness mean nothing to someone reading a smoke-test report.
func reformatError(err error) error {
	lines := strings.Split(err.Error(), "\n")
	if len(lines) < 2 {
		return err
	}
	var kept []string
	skipping := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		label, rest, hasLabel := splitLabel(trimmed)
		if hasLabel {
			skipping = label == "Error Trace" || label == "Test"
			if skipping {
				continue
			}
			if rest == "" {
				continue
			}
			kept = append(kept, rest)
			continue
		}
		if !skipping {
			kept = append(kept, trimmed)
		}
	}
	if len(kept) == 0 {
		return err
	}
	return errors.New(strings.Join(kept, "\n"))
}

func splitLabel(line string) (label, rest string, ok bool) {
	for _, l := range []string{"Error Trace", "Error", "Test", "Messages"} {
		if strings.HasPrefix(line, l+":") {
			return l, strings.TrimSpace(strings.TrimPrefix(line, l+":")), true
		}
	}
	return "", "", false
}
