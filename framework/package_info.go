// Package framework contains the low-level implementation of smoke-test harness infrastructure
// that does not depend on what kind of application is being checked.
//
// The general model is:
//
// 1. The harness is pointed at one base URL of a running server. It sends plain GET
// requests for paths relative to that URL, each bounded by its own timeout.
//
// 2. A check is a named function that is given a Context, similar to Go's *testing.T, and
// reports pass or fail. Errors inside a check, including failed assertions from testify's
// require package and outright panics, are contained by the harness and turned into a
// failed result.
//
// 3. The harness counts how many checks ran and how many passed, and a Policy turns those
// counts into an exit code.
//
// The domain-specific code that knows what is being checked is responsible for the list of
// checks, their parameters, and the messages shown to the user.
package framework
