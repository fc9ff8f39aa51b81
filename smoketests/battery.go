package smoketests

import (
	"fmt"
	"time"

	"github.com/phanikiran-1619/codelancer-fe/framework"
)

// Battery is a complete description of one smoke-test run: where the server is, which checks
// to run in which order, what each check looks for, and how the results are judged.
//
// The built-in profiles are Batteries; a YAML battery file can override any of the fields.
type Battery struct {
	Name        string `yaml:"name"`
	Title       string `yaml:"title"`
	Application string `yaml:"application"`
	BaseURL     string `yaml:"baseUrl"`

	// Checks is the ordered list of check keys, such as "app-loads".
	Checks []string `yaml:"checks"`

	// Delay is inserted between checks.
	Delay time.Duration `yaml:"delay"`

	// MinPassPercent enables a partial-credit tier: a run in which at least this percentage
	// of checks passed still exits 0, with a warning. Zero means every check must pass.
	MinPassPercent int `yaml:"minPassPercent"`

	// PageTimeout bounds the request for the application page in the app-loads check;
	// RequestTimeout bounds every other request.
	PageTimeout    time.Duration `yaml:"pageTimeout"`
	RequestTimeout time.Duration `yaml:"requestTimeout"`

	RootMarker    string   `yaml:"rootMarker"`
	BrandMarkers  []string `yaml:"brandMarkers"`
	EntryMarker   string   `yaml:"entryMarker"`
	DoctypeMarker string   `yaml:"doctypeMarker"`

	HTMLContentType  string   `yaml:"htmlContentType"`
	FrameworkMarkers []string `yaml:"frameworkMarkers"`

	AssetPaths     []string `yaml:"assetPaths"`
	LiveReloadPath string   `yaml:"liveReloadPath"`

	ComponentPaths []string `yaml:"componentPaths"`
	SourceMarkers  []string `yaml:"sourceMarkers"`

	MarkedComponent  string   `yaml:"markedComponent"`
	ComponentMarkers []string `yaml:"componentMarkers"`

	Messages Messages `yaml:"messages"`
}

// Messages are the closing lines printed for each outcome tier.
type Messages struct {
	AllPassed  []string `yaml:"allPassed"`
	MostPassed []string `yaml:"mostPassed"`
	Failed     []string `yaml:"failed"`
	NoChecks   []string `yaml:"noChecks"`
}

// Policy returns the exit-code policy for this battery.
func (b Battery) Policy() framework.Policy {
	return framework.Policy{MinPassPercent: b.MinPassPercent}
}

// MessagesFor returns the closing lines for a verdict tier.
func (b Battery) MessagesFor(tier framework.Tier) []string {
	switch tier {
	case framework.TierAllPassed:
		return b.Messages.AllPassed
	case framework.TierMostPassed:
		return b.Messages.MostPassed
	case framework.TierNoChecks:
		if len(b.Messages.NoChecks) == 0 {
			return []string{"No checks were run. Check the filter parameters."}
		}
		return b.Messages.NoChecks
	default:
		return b.Messages.Failed
	}
}

// Validate returns an error if the battery cannot be run.
func (b Battery) Validate() error {
	if len(b.Checks) == 0 {
		return fmt.Errorf("battery %q has no checks", b.Name)
	}
	keysByName := make(map[string]string)
	for _, key := range b.Checks {
		def, ok := checkDefinitions[key]
		if !ok {
			return fmt.Errorf("battery %q: unknown check %q (known checks: %s)", b.Name, key, knownCheckKeys())
		}
		if other, dup := keysByName[def.name]; dup {
			return fmt.Errorf("battery %q: checks %q and %q are both named %q; use only one of them",
				b.Name, other, key, def.name)
		}
		keysByName[def.name] = key
		for _, f := range def.needs(&b) {
			if !f.set {
				return fmt.Errorf("battery %q: check %q needs a non-empty %s", b.Name, key, f.name)
			}
		}
	}
	if b.MinPassPercent < 0 || b.MinPassPercent > 100 {
		return fmt.Errorf("battery %q: minPassPercent must be between 0 and 100, got %d", b.Name, b.MinPassPercent)
	}
	if b.Delay < 0 {
		return fmt.Errorf("battery %q: delay cannot be negative", b.Name)
	}
	return nil
}

func (b Battery) clone() Battery {
	c := b
	c.Checks = append([]string(nil), b.Checks...)
	c.BrandMarkers = append([]string(nil), b.BrandMarkers...)
	c.FrameworkMarkers = append([]string(nil), b.FrameworkMarkers...)
	c.AssetPaths = append([]string(nil), b.AssetPaths...)
	c.ComponentPaths = append([]string(nil), b.ComponentPaths...)
	c.SourceMarkers = append([]string(nil), b.SourceMarkers...)
	c.ComponentMarkers = append([]string(nil), b.ComponentMarkers...)
	c.Messages.AllPassed = append([]string(nil), b.Messages.AllPassed...)
	c.Messages.MostPassed = append([]string(nil), b.Messages.MostPassed...)
	c.Messages.Failed = append([]string(nil), b.Messages.Failed...)
	c.Messages.NoChecks = append([]string(nil), b.Messages.NoChecks...)
	return c
}
