package framework

// Tier classifies the outcome of a whole run.
type Tier string

const (
	TierAllPassed  Tier = "all-passed"
	TierMostPassed Tier = "most-passed"
	TierFailed     Tier = "failed"
	TierNoChecks   Tier = "no-checks"
)

// Policy decides the exit code of a run from its pass/fail counts.
type Policy struct {
	// MinPassPercent is the success percentage at or above which a run that did not fully
	// pass still succeeds. Zero disables that partial-credit tier.
	MinPassPercent int
}

// Verdict is the result of applying a Policy to a run.
type Verdict struct {
	Tier        Tier
	TestsRun    int
	TestsPassed int
	ExitCode    int
}

// SuccessRate returns testsPassed/testsRun, or 0 if nothing ran.
func (v Verdict) SuccessRate() float64 {
	if v.TestsRun == 0 {
		return 0
	}
	return float64(v.TestsPassed) / float64(v.TestsRun)
}

func (v Verdict) OK() bool {
	return v.ExitCode == 0
}

// Evaluate applies the policy. A run in which no checks executed is a failure: there is
// nothing to compute a ratio from, and a smoke test that tested nothing should not go green.
func (p Policy) Evaluate(testsRun, testsPassed int) Verdict {
	v := Verdict{TestsRun: testsRun, TestsPassed: testsPassed}
	switch {
	case testsRun <= 0:
		v.Tier, v.ExitCode = TierNoChecks, 1
	case testsPassed >= testsRun:
		v.Tier, v.ExitCode = TierAllPassed, 0
	case p.MinPassPercent > 0 && testsPassed*100 >= testsRun*p.MinPassPercent:
		v.Tier, v.ExitCode = TierMostPassed, 0
	default:
		v.Tier, v.ExitCode = TierFailed, 1
	}
	return v
}
