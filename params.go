package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/phanikiran-1619/codelancer-fe/framework"
	"github.com/phanikiran-1619/codelancer-fe/smoketests"

	"github.com/alessio/shellescape"
)

const (
	baseURLEnvVar     = "SMOKE_BASE_URL"
	batteryFileEnvVar = "SMOKE_BATTERY_FILE"
)

type commandParams struct {
	profile    string
	baseURL    string
	configPath string
	filters    framework.RegexFilters
	delay      time.Duration
	reportPath string
	debug      bool
	debugAll   bool
	noColor    bool
}

func (c *commandParams) Read(args []string, errOut io.Writer) bool {
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&c.profile, "profile", smoketests.DefaultProfile,
		"built-in battery to run ("+strings.Join(smoketests.ProfileNames(), ", ")+")")
	fs.StringVar(&c.baseURL, "url", getenv(baseURLEnvVar, ""), "base URL of the dev server (default: the profile's URL)")
	fs.StringVar(&c.configPath, "config", getenv(batteryFileEnvVar, ""), "YAML battery file overriding the profile")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select checks to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select checks not to run")
	fs.DurationVar(&c.delay, "delay", -1, "delay between checks (default: the profile's delay)")
	fs.StringVar(&c.reportPath, "report", "", "write a JSON report to this file")
	fs.BoolVar(&c.debug, "debug", false, "show request logs for failed checks")
	fs.BoolVar(&c.debugAll, "debug-all", false, "show request logs for all checks")
	fs.BoolVar(&c.noColor, "no-color", false, "disable coloured output")

	if err := fs.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			return false
		}
		fmt.Fprintln(errOut, err)
		fs.Usage()
		return false
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(errOut, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		fs.Usage()
		return false
	}
	return true
}

// battery resolves the battery to run: the built-in profile, then the battery file, then
// the URL and delay given on the command line.
func (c *commandParams) battery() (smoketests.Battery, error) {
	b, err := smoketests.Profile(c.profile)
	if err != nil {
		return smoketests.Battery{}, err
	}
	if c.configPath != "" {
		if b, err = smoketests.LoadBattery(c.configPath, b); err != nil {
			return smoketests.Battery{}, err
		}
	}
	if c.baseURL != "" {
		b.BaseURL = c.baseURL
	}
	if c.delay >= 0 {
		b.Delay = c.delay
	}
	return b, nil
}

// rerunCommand builds a command line that runs only the given checks again with the same
// battery.
func (c *commandParams) rerunCommand(program string, battery smoketests.Battery, failures []framework.TestResult) string {
	var b commandBuilder
	b.add(program, "-profile", c.profile)
	if c.configPath != "" {
		b.add("-config", c.configPath)
	}
	b.add("-url", battery.BaseURL)
	seen := make(map[string]bool)
	for _, f := range failures {
		name := f.TestID.String()
		if seen[name] {
			continue
		}
		seen[name] = true
		b.add("-run", "^"+regexp.QuoteMeta(name)+"$")
	}
	return b.String()
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
