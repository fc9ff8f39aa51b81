package smoketests

import (
	"github.com/phanikiran-1619/codelancer-fe/framework"
)

// RunBattery runs every check in the battery, in order, on the given harness and returns
// the harness's results. The harness counters are not reset first.
func RunBattery(harness *framework.TestHarness, battery Battery) framework.Results {
	for _, key := range battery.Checks {
		def, ok := checkDefinitions[key]
		if !ok {
			unknown := key
			harness.RunCheck(key, func(c *framework.Context) bool {
				c.Errorf("unknown check %q", unknown)
				return false
			})
			continue
		}
		check := def.build(&battery)
		harness.RunCheck(def.name, func(c *framework.Context) bool {
			return check(newT(c, harness))
		})
	}
	return harness.Results()
}
