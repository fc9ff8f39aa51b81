package smoketests

import (
	"time"

	"github.com/phanikiran-1619/codelancer-fe/framework"

	"github.com/stretchr/testify/require"
)

// T represents one running check in the smoke-test battery.
//
// It implements the TestingT interface of the testify assert and require packages, so checks
// can use those packages with the *T as if it were a *testing.T. A failed require assertion
// stops the check immediately and marks it failed; it never stops the battery.
type T struct {
	context *framework.Context
	harness *framework.TestHarness
}

func newT(context *framework.Context, harness *framework.TestHarness) *T {
	return &T{context: context, harness: harness}
}

// Errorf is called by assertions to log a check failure. It does not cause an immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a check should fail and immediately exit. The methods in
// the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Logf writes a diagnostic line for the check that is always shown.
func (t *T) Logf(format string, args ...interface{}) {
	t.context.Logf(format, args...)
}

// Debug adds to the check's debug output, which is only shown if debugging was requested.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// RequireGet sends a GET request for path, relative to the base URL, and returns the response
// whatever its status. If the request cannot be completed within the timeout (connection
// refused, DNS failure, time-out and so on), the check fails and exits immediately.
func (t *T) RequireGet(path string, timeout time.Duration) *framework.Response {
	resp, err := t.harness.Get(path, timeout, t.context.DebugLogger())
	require.NoError(t, err, "request for %q failed", displayPath(path))
	return resp
}

func displayPath(path string) string {
	if path == "" {
		return "/"
	}
	return path
}
