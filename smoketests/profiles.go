package smoketests

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

const (
	ProfileBackend = "backend"
	ProfileManual  = "manual"

	DefaultProfile = ProfileBackend
)

var profiles = map[string]func() Battery{
	ProfileBackend: backendBattery,
	ProfileManual:  manualBattery,
}

// Profile returns a copy of the named built-in battery.
func Profile(name string) (Battery, error) {
	build, ok := profiles[name]
	if !ok {
		return Battery{}, fmt.Errorf("unknown profile %q (available: %s)", name, strings.Join(ProfileNames(), ", "))
	}
	return build(), nil
}

func ProfileNames() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func baseBattery() Battery {
	return Battery{
		PageTimeout:      time.Second * 10,
		RequestTimeout:   time.Second * 5,
		RootMarker:       `id="root"`,
		BrandMarkers:     []string{"thecodelancer", "CS Student Program"},
		EntryMarker:      "main.tsx",
		DoctypeMarker:    "DOCTYPE html",
		HTMLContentType:  "text/html",
		FrameworkMarkers: []string{"vite", "react"},
		AssetPaths:       []string{"/src/main.tsx", "/src/App.tsx", "/src/index.css"},
		LiveReloadPath:   "/@vite/client",
		ComponentPaths: []string{
			"/src/components/Header.tsx",
			"/src/components/DotsPattern.tsx",
			"/src/pages/Home.tsx",
		},
		SourceMarkers:    []string{"React", "export", "import"},
		MarkedComponent:  "/src/components/Header.tsx",
		ComponentMarkers: []string{"Header", "React"},
	}
}

// The backend profile runs the full battery, in order of importance, and accepts a run in
// which most checks passed.
func backendBattery() Battery {
	b := baseBattery()
	b.Name = ProfileBackend
	b.Title = "Starting React TypeScript Application Backend Tests"
	b.Application = "React + TypeScript + Vite + Framer Motion"
	b.BaseURL = "http://localhost:5174"
	b.Checks = []string{
		CheckServerHealth,
		CheckAppLoads,
		CheckLiveReloadClient,
		CheckStaticAssets,
		CheckComponents,
	}
	b.Delay = time.Millisecond * 500
	b.MinPassPercent = 80
	b.Messages = Messages{
		AllPassed: []string{
			"All tests passed! The application backend is running correctly.",
			"Ready for frontend UI testing with Playwright.",
		},
		MostPassed: []string{
			"Most tests passed. Application should work but may have minor issues.",
			"Proceeding with frontend UI testing.",
		},
		Failed: []string{
			"Multiple tests failed. Check the application setup before UI testing.",
		},
	}
	return b
}

// The manual profile is the quick check run by hand: every check must pass.
func manualBattery() Battery {
	b := baseBattery()
	b.Name = ProfileManual
	b.Title = "Starting React TypeScript Application Tests"
	b.BaseURL = "http://localhost:5176"
	b.Checks = []string{
		CheckAppLoads,
		CheckStaticAssetsFailFast,
		CheckLiveReloadClient,
		CheckComponentMarkers,
	}
	b.Messages = Messages{
		AllPassed: []string{"All tests passed! The application is running correctly."},
		Failed:    []string{"Some tests failed. Check the application setup."},
	}
	return b
}
