package framework

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicyEvaluate(t *testing.T) {
	for _, tc := range []struct {
		minPercent     int
		run, passed    int
		expectedTier   Tier
		expectedStatus int
	}{
		{80, 5, 5, TierAllPassed, 0},
		{80, 5, 4, TierMostPassed, 0},
		{80, 5, 3, TierFailed, 1},
		{80, 10, 8, TierMostPassed, 0},
		{80, 10, 7, TierFailed, 1},
		{0, 4, 4, TierAllPassed, 0},
		{0, 4, 3, TierFailed, 1},
		{0, 1, 0, TierFailed, 1},
		{80, 0, 0, TierNoChecks, 1},
		{0, 0, 0, TierNoChecks, 1},
	} {
		t.Run(fmt.Sprintf("%d of %d with minimum %d%%", tc.passed, tc.run, tc.minPercent), func(t *testing.T) {
			v := Policy{MinPassPercent: tc.minPercent}.Evaluate(tc.run, tc.passed)
			assert.Equal(t, tc.expectedTier, v.Tier)
			assert.Equal(t, tc.expectedStatus, v.ExitCode)
			assert.Equal(t, tc.expectedStatus == 0, v.OK())
		})
	}
}

func TestVerdictSuccessRate(t *testing.T) {
	assert.Equal(t, 0.8, Verdict{TestsRun: 5, TestsPassed: 4}.SuccessRate())
	assert.Equal(t, 0.75, Verdict{TestsRun: 4, TestsPassed: 3}.SuccessRate())
	assert.Equal(t, 0.0, Verdict{}.SuccessRate())
}
