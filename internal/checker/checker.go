package checker

import (
	"context"
	"io"
	"net/http"
)

// Sentinel entries used in place of empty result lists.
const (
	UnreachableIssue   = "Website could not be scanned — unreachable."
	NoIssuesIssue      = "No major vulnerabilities detected ✔"
	CookieScanFailed   = "Cookie scan failed"
	NoCookiesFound     = "No cookies found"
	PhishingSafeReason = "This URL does not show common signs of phishing. It appears safe ✓"
	phishingFailedFmt  = "Phishing check failed: %s"
)

// HeaderScanResult is the outcome of a security header scan.
type HeaderScanResult struct {
	URL         string   `json:"url" yaml:"url"`
	IssuesFound []string `json:"issues_found" yaml:"issues_found"`
	Score       int      `json:"score" yaml:"score"`
}

// CookieEntry is one ';'-separated piece of a Set-Cookie header.
type CookieEntry struct {
	Cookie string `json:"cookie" yaml:"cookie"`
}

// CookieScanResult is the outcome of a cookie scan.
type CookieScanResult struct {
	URL     string        `json:"url" yaml:"url"`
	Cookies []CookieEntry `json:"cookies" yaml:"cookies"`
}

// PhishingResult is the outcome of the phishing heuristic.
type PhishingResult struct {
	URL        string   `json:"url" yaml:"url"`
	Suspicious bool     `json:"suspicious" yaml:"suspicious"`
	Reasons    []string `json:"reasons" yaml:"reasons"`
}

// Analyzer runs the checks that need a fetched response. It holds no mutable
// state and is safe for concurrent use.
type Analyzer struct {
	fetcher Fetcher
}

// NewAnalyzer returns an Analyzer that fetches targets with f.
func NewAnalyzer(f Fetcher) *Analyzer {
	return &Analyzer{fetcher: f}
}

// ScoreHeaders fetches rawURL once and scores its security headers.
func (a *Analyzer) ScoreHeaders(ctx context.Context, rawURL string) HeaderScanResult {
	resp, err := a.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return UnreachableHeaderResult(rawURL)
	}
	defer closeBody(resp)

	return EvaluateHeaders(rawURL, resp.StatusCode, resp.Header)
}

// ScanCookies fetches rawURL once and lists the pieces of its Set-Cookie header.
func (a *Analyzer) ScanCookies(ctx context.Context, rawURL string) CookieScanResult {
	resp, err := a.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return FailedCookieResult(rawURL)
	}
	defer closeBody(resp)

	return ExtractCookies(rawURL, resp.Header)
}

// CheckPhishing runs the URL heuristic. It is a method for symmetry with the
// other checks; it never uses the fetcher.
func (a *Analyzer) CheckPhishing(rawURL string) PhishingResult {
	return CheckPhishing(rawURL)
}

func closeBody(resp *http.Response) {
	if resp == nil || resp.Body == nil {
		return
	}
	// Discard response body - ignore errors as this is just cleanup
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, drainLimitBytes))
	_ = resp.Body.Close()
}

const drainLimitBytes = 64 << 10
