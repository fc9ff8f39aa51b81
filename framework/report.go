package framework

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const (
	checkStatusPassed  = "passed"
	checkStatusFailed  = "failed"
	checkStatusSkipped = "skipped"
)

// Report is the machine-readable summary of one run.
type Report struct {
	RunID       string        `json:"runId"`
	Profile     string        `json:"profile,omitempty"`
	BaseURL     string        `json:"baseUrl"`
	StartedAt   time.Time     `json:"startedAt"`
	TestsRun    int           `json:"testsRun"`
	TestsPassed int           `json:"testsPassed"`
	SuccessRate float64       `json:"successRate"`
	Tier        Tier          `json:"tier"`
	ExitCode    int           `json:"exitCode"`
	Checks      []ReportCheck `json:"checks"`
}

type ReportCheck struct {
	Name   string   `json:"name"`
	Status string   `json:"status"`
	Errors []string `json:"errors,omitempty"`
	// DurationMS is null for checks that were skipped.
	DurationMS ldvalue.OptionalInt `json:"durationMs"`
}

func NewReport(profile, baseURL string, startedAt time.Time, results Results, verdict Verdict) Report {
	r := Report{
		RunID:       uuid.NewString(),
		Profile:     profile,
		BaseURL:     baseURL,
		StartedAt:   startedAt.UTC(),
		TestsRun:    verdict.TestsRun,
		TestsPassed: verdict.TestsPassed,
		SuccessRate: verdict.SuccessRate(),
		Tier:        verdict.Tier,
		ExitCode:    verdict.ExitCode,
		Checks:      make([]ReportCheck, 0, len(results.Tests)),
	}

	for _, t := range results.Tests {
		c := ReportCheck{Name: t.TestID.String()}
		switch {
		case t.Skipped:
			c.Status = checkStatusSkipped
		case t.Passed:
			c.Status = checkStatusPassed
		default:
			c.Status = checkStatusFailed
		}
		if !t.Skipped {
			c.DurationMS = ldvalue.NewOptionalInt(int(t.Duration / time.Millisecond))
		}
		for _, err := range t.Errors {
			c.Errors = append(c.Errors, err.Error())
		}
		r.Checks = append(r.Checks, c)
	}
	return r
}

// WriteFile writes the report as indented JSON and returns the number of bytes written.
func (r Report) WriteFile(path string) (int, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return 0, err
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return 0, fmt.Errorf("failed to write report to %s: %w", path, err)
	}
	return len(data), nil
}
