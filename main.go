package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/phanikiran-1619/codelancer-fe/framework"
	"github.com/phanikiran-1619/codelancer-fe/smoketests"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

const ruleWidth = 60

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, out, errOut io.Writer) int {
	var params commandParams
	if !params.Read(args, errOut) {
		return 1
	}
	if params.noColor {
		color.NoColor = true
	}

	battery, err := params.battery()
	if err != nil {
		fmt.Fprintf(errOut, "Invalid battery: %s\n", err)
		return 1
	}

	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		mainDebugLogger = log.New(out, "", log.LstdFlags)
	}

	printBanner(out, battery)
	framework.PrintFilterDescription(out, params.filters)

	harness := framework.NewTestHarness(battery.BaseURL, framework.HarnessOptions{
		TestLogger: &ConsoleTestLogger{
			Out:                  out,
			DebugOutputOnFailure: params.debug || params.debugAll,
			DebugOutputOnSuccess: params.debugAll,
		},
		DebugLogger: mainDebugLogger,
		Filter:      params.filters.AsFilter,
		Delay:       battery.Delay,
	})

	started := time.Now()
	results := smoketests.RunBattery(harness, battery)
	verdict := battery.Policy().Evaluate(harness.TestsRun(), harness.TestsPassed())

	printResults(out, battery, results, verdict)
	if len(results.Failures) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "To re-run the failed checks:")
		fmt.Fprintf(out, "  %s\n", params.rerunCommand(args[0], battery, results.Failures))
	}

	if params.reportPath != "" {
		report := framework.NewReport(battery.Name, battery.BaseURL, started, results, verdict)
		n, err := report.WriteFile(params.reportPath)
		if err != nil {
			fmt.Fprintf(errOut, "Report error: %s\n", err)
			return 1
		}
		fmt.Fprintf(out, "Wrote report to %s (%s)\n", params.reportPath, humanize.Bytes(uint64(n)))
	}

	return verdict.ExitCode
}

func printBanner(out io.Writer, battery smoketests.Battery) {
	rule := strings.Repeat("=", ruleWidth)
	if battery.Title != "" {
		fmt.Fprintln(out, battery.Title)
	}
	fmt.Fprintln(out, rule)
	fmt.Fprintf(out, "Testing URL: %s\n", battery.BaseURL)
	if battery.Application != "" {
		fmt.Fprintf(out, "Application: %s\n", battery.Application)
	}
	fmt.Fprintln(out, rule)
}

func printResults(out io.Writer, battery smoketests.Battery, results framework.Results, verdict framework.Verdict) {
	success := color.New(color.FgGreen).SprintFunc()
	failure := color.New(color.FgRed).SprintFunc()
	warning := color.New(color.FgYellow).SprintFunc()

	fmt.Fprintf(out, "\n%s\n", strings.Repeat("=", ruleWidth))
	fmt.Fprintf(out, "FINAL RESULTS: %d/%d tests passed\n", verdict.TestsPassed, verdict.TestsRun)
	if verdict.TestsRun > 0 {
		fmt.Fprintf(out, "Success Rate: %.1f%%\n", verdict.SuccessRate()*100)
	}
	if skipped := results.Skipped(); len(skipped) > 0 {
		fmt.Fprintf(out, "Skipped: %d\n", len(skipped))
	}
	for _, f := range results.Failures {
		fmt.Fprintf(out, "  %s %s\n", failure("FAILED:"), f.Failure())
	}

	style := failure
	switch verdict.Tier {
	case framework.TierAllPassed:
		style = success
	case framework.TierMostPassed:
		style = warning
	}
	for _, line := range battery.MessagesFor(verdict.Tier) {
		fmt.Fprintln(out, style(line))
	}
}
