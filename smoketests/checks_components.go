package smoketests

import (
	"net/http"
	"strings"
)

// checkComponents requests component sources and counts those that look like source code
// rather than an error page. At least half of them must.
func checkComponents(b *Battery) func(*T) bool {
	return func(t *T) bool {
		passed := 0
		for _, path := range b.ComponentPaths {
			resp := t.RequireGet(path, b.RequestTimeout)
			switch {
			case resp.StatusCode != http.StatusOK:
				t.Logf("Component %s not accessible (status: %d)", path, resp.StatusCode)
			case !containsAny(resp.Body, b.SourceMarkers):
				t.Logf("Component %s accessible but invalid content", path)
			default:
				passed++
				t.Logf("Component %s accessible and valid", path)
			}
		}
		t.Logf("Components accessible: %d/%d", passed, len(b.ComponentPaths))
		return 2*passed >= len(b.ComponentPaths)
	}
}

// checkComponentMarkers requests a single component and requires every one of the battery's
// component markers in its source.
func checkComponentMarkers(b *Battery) func(*T) bool {
	return func(t *T) bool {
		resp := t.RequireGet(b.MarkedComponent, b.RequestTimeout)
		if resp.StatusCode != http.StatusOK {
			t.Logf("Component %s not accessible (status: %d)", b.MarkedComponent, resp.StatusCode)
			return false
		}
		for _, marker := range b.ComponentMarkers {
			if !strings.Contains(resp.Body, marker) {
				t.Logf("Component %s does not contain %q", b.MarkedComponent, marker)
				return false
			}
		}
		return true
	}
}
