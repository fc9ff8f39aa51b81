package smoketests

import (
	"sort"
	"strings"
)

// Check keys, as used in Battery.Checks.
const (
	CheckServerHealth         = "server-health"
	CheckAppLoads             = "app-loads"
	CheckLiveReloadClient     = "live-reload-client"
	CheckStaticAssets         = "static-assets"
	CheckStaticAssetsFailFast = "static-assets-fail-fast"
	CheckComponents           = "components"
	CheckComponentMarkers     = "component-markers"
)

type checkDefinition struct {
	name  string
	build func(b *Battery) func(*T) bool
	// needs lists the battery fields the check cannot do without.
	needs func(b *Battery) []batteryField
}

type batteryField struct {
	name string
	set  bool
}

var checkDefinitions = map[string]checkDefinition{
	CheckServerHealth:         {"Server Health Check", checkServerHealth, serverHealthNeeds},
	CheckAppLoads:             {"Application Loads", checkAppLoads, appLoadsNeeds},
	CheckLiveReloadClient:     {"Vite Dev Server Running", checkLiveReloadClient, liveReloadNeeds},
	CheckStaticAssets:         {"Static Assets Accessible", checkStaticAssets, assetNeeds},
	CheckStaticAssetsFailFast: {"Static Assets Accessible", checkStaticAssetsFailFast, assetNeeds},
	CheckComponents:           {"React Components Served", checkComponents, componentNeeds},
	CheckComponentMarkers:     {"React Components Served", checkComponentMarkers, componentMarkerNeeds},
}

func serverHealthNeeds(b *Battery) []batteryField {
	return []batteryField{
		{"htmlContentType", b.HTMLContentType != ""},
		{"frameworkMarkers", len(b.FrameworkMarkers) > 0},
	}
}

func appLoadsNeeds(b *Battery) []batteryField {
	return []batteryField{
		{"rootMarker", b.RootMarker != ""},
		{"brandMarkers", len(b.BrandMarkers) > 0},
		{"entryMarker", b.EntryMarker != ""},
		{"doctypeMarker", b.DoctypeMarker != ""},
	}
}

func liveReloadNeeds(b *Battery) []batteryField {
	return []batteryField{{"liveReloadPath", b.LiveReloadPath != ""}}
}

func assetNeeds(b *Battery) []batteryField {
	return []batteryField{{"assetPaths", len(b.AssetPaths) > 0}}
}

func componentNeeds(b *Battery) []batteryField {
	return []batteryField{
		{"componentPaths", len(b.ComponentPaths) > 0},
		{"sourceMarkers", len(b.SourceMarkers) > 0},
	}
}

func componentMarkerNeeds(b *Battery) []batteryField {
	return []batteryField{
		{"markedComponent", b.MarkedComponent != ""},
		{"componentMarkers", len(b.ComponentMarkers) > 0},
	}
}

// CheckName returns the display name for a check key, or the key itself if it is unknown.
func CheckName(key string) string {
	if def, ok := checkDefinitions[key]; ok {
		return def.name
	}
	return key
}

func knownCheckKeys() string {
	keys := make([]string, 0, len(checkDefinitions))
	for k := range checkDefinitions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func containsFold(s, substring string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substring))
}

func containsAnyFold(s string, substrings []string) bool {
	lower := strings.ToLower(s)
	for _, sub := range substrings {
		if strings.Contains(lower, strings.ToLower(sub)) {
			return true
		}
	}
	return false
}

func countTrue(conditions ...bool) int {
	n := 0
	for _, c := range conditions {
		if c {
			n++
		}
	}
	return n
}
