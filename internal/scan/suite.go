// Package scan runs a selection of secgap checks against one URL and collects
// their results into a single Report.
package scan

import (
	"context"
	"fmt"
	"strings"

	"github.com/izza-m1/Secgap-Analyzer/internal/checker"
	secerrors "github.com/izza-m1/Secgap-Analyzer/internal/shared/errors"
	"golang.org/x/sync/errgroup"
)

// Check identifies one analyzer. The values match the API route names.
type Check string

const (
	CheckHeaders  Check = "vuln-scan"
	CheckCookies  Check = "cookie-scan"
	CheckPhishing Check = "phishing-check"
)

// AllChecks lists every check in report order.
var AllChecks = []Check{CheckHeaders, CheckCookies, CheckPhishing}

var checkAliases = map[string]Check{
	"vuln-scan":      CheckHeaders,
	"headers":        CheckHeaders,
	"vuln":           CheckHeaders,
	"cookie-scan":    CheckCookies,
	"cookies":        CheckCookies,
	"phishing-check": CheckPhishing,
	"phishing":       CheckPhishing,
}

// ParseCheck resolves a check name or alias, case-insensitively.
func ParseCheck(name string) (Check, error) {
	if c, ok := checkAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", secerrors.ErrUnknownCheck, name)
}

// Report holds the results of the checks that were run; the others stay nil.
type Report struct {
	URL      string                    `json:"url" yaml:"url"`
	Headers  *checker.HeaderScanResult `json:"vuln_scan,omitempty" yaml:"vuln_scan,omitempty"`
	Cookies  *checker.CookieScanResult `json:"cookie_scan,omitempty" yaml:"cookie_scan,omitempty"`
	Phishing *checker.PhishingResult   `json:"phishing_check,omitempty" yaml:"phishing_check,omitempty"`
}

// Runner is the subset of *checker.Analyzer the suite needs.
type Runner interface {
	ScoreHeaders(ctx context.Context, rawURL string) checker.HeaderScanResult
	ScanCookies(ctx context.Context, rawURL string) checker.CookieScanResult
	CheckPhishing(rawURL string) checker.PhishingResult
}

// Suite fans the selected checks out concurrently. Each check performs its
// own fetch; nothing is shared between them.
type Suite struct {
	runner Runner
}

func NewSuite(r Runner) *Suite {
	return &Suite{runner: r}
}

// Run executes checks (all of them when none are given) against rawURL.
// Names are resolved through ParseCheck, so aliases such as "headers" work.
// The checks never fail, so the only errors are an unknown check or a context
// cancelled before the results were collected.
func (s *Suite) Run(ctx context.Context, rawURL string, checks ...Check) (*Report, error) {
	if len(checks) == 0 {
		checks = AllChecks
	}
	resolved := make([]Check, 0, len(checks))
	for _, c := range checks {
		canonical, err := ParseCheck(string(c))
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, canonical)
	}
	checks = dedupe(resolved)

	report := &Report{URL: rawURL}
	g, gctx := errgroup.WithContext(ctx)

	// Each goroutine writes a distinct field, so no lock is needed.
	for _, c := range checks {
		switch c {
		case CheckHeaders:
			g.Go(func() error {
				result := s.runner.ScoreHeaders(gctx, rawURL)
				report.Headers = &result
				return nil
			})
		case CheckCookies:
			g.Go(func() error {
				result := s.runner.ScanCookies(gctx, rawURL)
				report.Cookies = &result
				return nil
			})
		case CheckPhishing:
			g.Go(func() error {
				result := s.runner.CheckPhishing(rawURL)
				report.Phishing = &result
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return report, nil
}

func dedupe(checks []Check) []Check {
	seen := make(map[Check]bool, len(checks))
	out := make([]Check, 0, len(checks))
	for _, c := range checks {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
