// Package checker implements the three secgap analyzers.
//
// Architecture overview:
//
//   - EvaluateHeaders scores a response against the four required security
//     headers and the status code. Analyzer.ScoreHeaders fetches the target
//     and feeds the response into it.
//   - ExtractCookies splits the first Set-Cookie header of a response into
//     its ';'-separated pieces. Analyzer.ScanCookies fetches and extracts.
//   - CheckPhishing inspects the URL text only and never touches the network.
//
// Fetching goes through the Fetcher interface. HTTPFetcher performs exactly one
// GET per call with a bounded timeout and wraps every transport failure in
// errors.ErrUnreachable, so the analyzers fold all failure causes into a single
// sentinel result instead of returning an error.
//
// Every exported operation returns a well-formed result value. Results are
// never empty: a sentinel entry stands in for "nothing found" or "failed".
package checker
