package smoketests

import (
	"net/http"
	"strings"

	"github.com/dustin/go-humanize"
)

// checkAppLoads fetches the application page and looks for the markers that show the dev
// server is serving this app's index.html: the mount point, the branding, the entry module
// and a doctype.
func checkAppLoads(b *Battery) func(*T) bool {
	return func(t *T) bool {
		resp := t.RequireGet("", b.PageTimeout)
		if resp.StatusCode != http.StatusOK {
			t.Logf("Application page returned status %d", resp.StatusCode)
			return false
		}

		markers := []bool{
			strings.Contains(resp.Body, b.RootMarker),
			containsAny(resp.Body, b.BrandMarkers),
			strings.Contains(resp.Body, b.EntryMarker),
			containsFold(resp.Body, b.DoctypeMarker),
		}
		passed := countTrue(markers...)
		t.Logf("HTML checks: %d/%d passed", passed, len(markers))
		return passed == len(markers)
	}
}

// checkServerHealth is a looser look at the same page: it only cares that an HTML page
// mentioning the framework comes back. Response time and size are reported but not judged.
func checkServerHealth(b *Battery) func(*T) bool {
	return func(t *T) bool {
		resp := t.RequireGet("", b.RequestTimeout)

		conditions := []bool{
			resp.StatusCode == http.StatusOK,
			strings.Contains(resp.Header.Get("Content-Type"), b.HTMLContentType),
			containsAnyFold(resp.Body, b.FrameworkMarkers),
		}
		passed := countTrue(conditions...)
		t.Logf("Server health checks: %d/%d passed", passed, len(conditions))
		t.Logf("Response time: %.2fs", resp.Elapsed.Seconds())
		t.Logf("Response size: %s", humanize.Bytes(uint64(len(resp.Body))))
		return passed == len(conditions)
	}
}
