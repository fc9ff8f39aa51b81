// Package smoketests contains the dev-server smoke checks themselves and their supporting API.
//
// Harness infrastructure that is not specific to this kind of application, such as counting
// results, containing failures and sending requests with timeouts, is in the lower-level
// framework package.
package smoketests
