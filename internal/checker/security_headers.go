package checker

import (
	"fmt"
	"net/http"
	"strings"
)

// SecurityHeaderSpec is a required response header and the score it costs when absent.
type SecurityHeaderSpec struct {
	Name    string
	Penalty int
}

// requiredHeaders is evaluated in order; issue messages keep this order.
var requiredHeaders = []SecurityHeaderSpec{
	{Name: "Content-Security-Policy", Penalty: 25},
	{Name: "Strict-Transport-Security", Penalty: 25},
	{Name: "X-Frame-Options", Penalty: 25},
	{Name: "X-Content-Type-Options", Penalty: 25},
}

const (
	maxHeaderScore     = 100
	nonOKStatusPenalty = 10
)

// RequiredHeaders returns a copy of the required security header table.
func RequiredHeaders() []SecurityHeaderSpec {
	return append([]SecurityHeaderSpec(nil), requiredHeaders...)
}

// EvaluateHeaders scores a fetched response. The score starts at 100, loses
// each missing header's penalty and 10 more for any status other than 200,
// and never drops below 0.
func EvaluateHeaders(rawURL string, statusCode int, headers http.Header) HeaderScanResult {
	issues := []string{}
	score := maxHeaderScore

	for _, spec := range requiredHeaders {
		if !hasHeader(headers, spec.Name) {
			issues = append(issues, "Missing: "+spec.Name)
			score -= spec.Penalty
		}
	}

	if statusCode != http.StatusOK {
		issues = append(issues, fmt.Sprintf("Non-200 Status Code: %d", statusCode))
		score -= nonOKStatusPenalty
	}

	if score < 0 {
		score = 0
	}

	if len(issues) == 0 {
		issues = append(issues, NoIssuesIssue)
	}

	return HeaderScanResult{
		URL:         rawURL,
		IssuesFound: issues,
		Score:       score,
	}
}

// hasHeader reports whether name is present, comparing names case-insensitively
// so hand-built headers with non-canonical keys match too. Presence of the key
// is enough; an empty value still counts.
func hasHeader(headers http.Header, name string) bool {
	if _, ok := headers[http.CanonicalHeaderKey(name)]; ok {
		return true
	}
	for key := range headers {
		if strings.EqualFold(key, name) {
			return true
		}
	}
	return false
}

// UnreachableHeaderResult is returned when the target could not be fetched.
func UnreachableHeaderResult(rawURL string) HeaderScanResult {
	return HeaderScanResult{
		URL:         rawURL,
		IssuesFound: []string{UnreachableIssue},
		Score:       0,
	}
}
