// Package constants centralizes defaults shared across the CLI and the API server.
//
// Fetch timeouts, the outbound User-Agent and server limits live here so cmd/
// and internal/ reference the same values without introducing import cycles.
// Scoring weights and phishing thresholds are not defaults: they are fixed
// rule values and live next to the rules in internal/checker.
package constants
