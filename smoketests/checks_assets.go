package smoketests

import (
	"net/http"
	"time"
)

func checkStaticAssets(b *Battery) func(*T) bool {
	return func(t *T) bool {
		passed := probeAssets(t, b.AssetPaths, b.RequestTimeout, false)
		t.Logf("Assets accessible: %d/%d", passed, len(b.AssetPaths))
		return passed == len(b.AssetPaths)
	}
}

func checkStaticAssetsFailFast(b *Battery) func(*T) bool {
	return func(t *T) bool {
		return probeAssets(t, b.AssetPaths, b.RequestTimeout, true) == len(b.AssetPaths)
	}
}

// probeAssets requests each path and returns how many answered 200. If stopAtFailure is
// set it gives up at the first path that did not.
func probeAssets(t *T, paths []string, timeout time.Duration, stopAtFailure bool) int {
	passed := 0
	for _, path := range paths {
		resp := t.RequireGet(path, timeout)
		if resp.StatusCode == http.StatusOK {
			passed++
			t.Logf("Asset %s accessible", path)
			continue
		}
		t.Logf("Asset %s not accessible (status: %d)", path, resp.StatusCode)
		if stopAtFailure {
			break
		}
	}
	return passed
}

// checkLiveReloadClient requests the script that the dev server injects for hot reloading;
// a production or static server will not have it.
func checkLiveReloadClient(b *Battery) func(*T) bool {
	return func(t *T) bool {
		resp := t.RequireGet(b.LiveReloadPath, b.RequestTimeout)
		if resp.StatusCode != http.StatusOK {
			t.Logf("Dev server client %s not accessible (status: %d)", b.LiveReloadPath, resp.StatusCode)
			return false
		}
		t.Logf("Dev server client %s accessible", b.LiveReloadPath)
		return true
	}
}
