package framework

import (
	"net/http"
	"time"
)

const defaultRequestTimeout = time.Second * 5

// HarnessOptions configures a TestHarness. All fields are optional.
type HarnessOptions struct {
	// TestLogger receives progress notifications; if nil, they are discarded.
	TestLogger TestLogger

	// DebugLogger receives harness-level debug output that is not tied to any one check.
	DebugLogger Logger

	// Filter selects which checks are run; checks it rejects are reported as skipped.
	Filter Filter

	// Delay is inserted between consecutive checks, purely to make console output easier
	// to follow.
	Delay time.Duration

	// HTTPClient is used for all requests. Per-request timeouts are applied by the harness,
	// so the client does not need one of its own.
	HTTPClient *http.Client
}

// TestHarness runs checks one at a time against a server under test and keeps count of
// how many ran and how many passed.
//
// It is not safe for concurrent use: checks are run strictly in sequence.
type TestHarness struct {
	baseURL     string
	client      *http.Client
	testLogger  TestLogger
	logger      Logger
	filter      Filter
	delay       time.Duration
	testsRun    int
	testsPassed int
	results     Results
}

// NewTestHarness creates a TestHarness for the given base URL. The URL is not validated
// here; if it is malformed, every check that uses it will fail with a transport error.
func NewTestHarness(baseURL string, opts HarnessOptions) *TestHarness {
	h := &TestHarness{
		baseURL:    baseURL,
		client:     opts.HTTPClient,
		testLogger: opts.TestLogger,
		logger:     opts.DebugLogger,
		filter:     opts.Filter,
		delay:      opts.Delay,
	}
	if h.client == nil {
		h.client = &http.Client{}
	}
	if h.testLogger == nil {
		h.testLogger = nullTestLogger{}
	}
	if h.logger == nil {
		h.logger = NullLogger()
	}
	return h
}

func (h *TestHarness) BaseURL() string {
	return h.baseURL
}

func (h *TestHarness) TestsRun() int {
	return h.testsRun
}

func (h *TestHarness) TestsPassed() int {
	return h.testsPassed
}

// Results returns a snapshot of everything recorded so far.
func (h *TestHarness) Results() Results {
	return Results{
		Tests:    append([]TestResult(nil), h.results.Tests...),
		Failures: append([]TestResult(nil), h.results.Failures...),
	}
}

// RunCheck runs one check and returns whether it passed.
//
// Nothing that happens inside the check escapes from RunCheck: transport errors, failed
// assertions and panics all just produce a failed result, which is logged and counted.
func (h *TestHarness) RunCheck(name string, check CheckFunc) bool {
	id := TestID{Path: []string{name}}

	if h.filter != nil && !h.filter(id) {
		h.logger.Printf("Skipping %s", id)
		h.results.Tests = append(h.results.Tests, TestResult{TestID: id, Skipped: true})
		h.testLogger.TestSkipped(id, "excluded by filter parameters")
		return false
	}

	if h.delay > 0 && h.testsRun > 0 {
		time.Sleep(h.delay)
	}

	h.testsRun++
	h.testLogger.TestStarted(id)

	started := time.Now()
	c := newContext(id, h.testLogger, started)
	passed := c.run(check)

	result := TestResult{TestID: id, Passed: passed, Errors: c.errors, Duration: time.Since(started)}
	h.results.Tests = append(h.results.Tests, result)
	if passed {
		h.testsPassed++
	} else {
		h.results.Failures = append(h.results.Failures, result)
	}
	h.logger.Printf("Finished %s in %s (passed: %t)", id, result.Duration, passed)

	h.testLogger.TestFinished(id, !passed, c.debugLogger.Output())
	return passed
}
