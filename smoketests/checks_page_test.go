package smoketests

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppLoadsWithAllMarkers(t *testing.T) {
	withDevServer(nil, func(baseURL string) {
		passed, logger := runSingleCheck(baseURL, testBattery(), CheckAppLoads)
		assert.True(t, passed)
		assert.Contains(t, logger.allMessages(), "HTML checks: 4/4 passed")
	})
}

func TestAppLoadsFailsWhenAnyMarkerIsMissing(t *testing.T) {
	for _, tc := range []struct {
		name   string
		remove []string
	}{
		{"root mount point", []string{`id="root"`}},
		{"branding", []string{"thecodelancer", "CS Student Program"}},
		{"entry module", []string{"main.tsx"}},
		{"doctype", []string{"<!DOCTYPE html>"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			page := indexHTML
			for _, r := range tc.remove {
				page = strings.ReplaceAll(page, r, "")
			}
			withDevServer(map[string]http.Handler{"/": htmlHandler(page)}, func(baseURL string) {
				passed, logger := runSingleCheck(baseURL, testBattery(), CheckAppLoads)
				assert.False(t, passed)
				assert.Contains(t, logger.allMessages(), "HTML checks: 3/4 passed")
			})
		})
	}
}

func TestAppLoadsAcceptsEitherBrandMarker(t *testing.T) {
	page := strings.ReplaceAll(indexHTML, "thecodelancer - ", "")
	withDevServer(map[string]http.Handler{"/": htmlHandler(page)}, func(baseURL string) {
		passed, _ := runSingleCheck(baseURL, testBattery(), CheckAppLoads)
		assert.True(t, passed)
	})
}

func TestAppLoadsDoctypeIsCaseInsensitive(t *testing.T) {
	page := strings.Replace(indexHTML, "<!DOCTYPE html>", "<!doctype html>", 1)
	withDevServer(map[string]http.Handler{"/": htmlHandler(page)}, func(baseURL string) {
		passed, _ := runSingleCheck(baseURL, testBattery(), CheckAppLoads)
		assert.True(t, passed)
	})
}

func TestAppLoadsFailsOnErrorStatus(t *testing.T) {
	withDevServer(map[string]http.Handler{"/": notFound()}, func(baseURL string) {
		passed, logger := runSingleCheck(baseURL, testBattery(), CheckAppLoads)
		assert.False(t, passed)
		assert.Contains(t, logger.allMessages(), "Application page returned status 404")
	})
}

func TestServerHealth(t *testing.T) {
	withDevServer(nil, func(baseURL string) {
		passed, logger := runSingleCheck(baseURL, testBattery(), CheckServerHealth)
		assert.True(t, passed)
		assert.Contains(t, logger.allMessages(), "Server health checks: 3/3 passed")
		assert.Contains(t, logger.allMessages(), "Response time: ")
		assert.Contains(t, logger.allMessages(), "Response size: ")
	})
}

func TestServerHealthFrameworkMarkerIsCaseInsensitive(t *testing.T) {
	page := "<!DOCTYPE html><title>Built with VITE</title>"
	withDevServer(map[string]http.Handler{"/": htmlHandler(page)}, func(baseURL string) {
		passed, _ := runSingleCheck(baseURL, testBattery(), CheckServerHealth)
		assert.True(t, passed)
	})
}

func TestServerHealthFailsWithoutHTMLContentType(t *testing.T) {
	withDevServer(map[string]http.Handler{"/": sourceHandler(indexHTML)}, func(baseURL string) {
		passed, logger := runSingleCheck(baseURL, testBattery(), CheckServerHealth)
		assert.False(t, passed)
		assert.Contains(t, logger.allMessages(), "Server health checks: 2/3 passed")
	})
}

func TestServerHealthFailsWithoutFrameworkMarker(t *testing.T) {
	withDevServer(map[string]http.Handler{"/": htmlHandler("<html><body>Welcome to nginx!</body></html>")}, func(baseURL string) {
		passed, _ := runSingleCheck(baseURL, testBattery(), CheckServerHealth)
		assert.False(t, passed)
	})
}
