package checker

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	secerrors "github.com/izza-m1/Secgap-Analyzer/internal/shared/errors"
)

const (
	maxURLLength    = 85
	maxDomainDots   = 3
	plainHTTPPrefix = "http://"
)

var riskyTLDs = []string{"tk", "ml", "cf", "gq", "ga"}

// PhishingRule is one independent suspicion signal.
type PhishingRule struct {
	Name   string
	Reason string
	Match  func(rawURL, domain string) bool
}

// phishingRules are all evaluated, in this order, for every URL.
var phishingRules = []PhishingRule{
	{
		Name:   "at-symbol",
		Reason: "The URL contains an '@' symbol — attackers use this to mislead users into trusting fake redirect links.",
		Match: func(rawURL, _ string) bool {
			return strings.Contains(rawURL, "@")
		},
	},
	{
		Name:   "hyphenated-domain",
		Reason: "The domain contains '-' symbols — often used to imitate legitimate brands.",
		Match: func(_, domain string) bool {
			return strings.Contains(domain, "-")
		},
	},
	{
		Name:   "long-url",
		Reason: "The URL is unusually long — attackers hide malicious code in long URLs.",
		Match: func(rawURL, _ string) bool {
			return utf8.RuneCountInString(rawURL) > maxURLLength
		},
	},
	{
		Name:   "many-subdomains",
		Reason: "The website uses many subdomains — a common trick to impersonate trusted websites.",
		Match: func(_, domain string) bool {
			return strings.Count(domain, ".") > maxDomainDots
		},
	},
	{
		// ASCII and other Nd digits only; superscripts like '²' do not count.
		Name:   "numeric-domain",
		Reason: "The domain contains numbers — temporary malicious domains often use numbers.",
		Match: func(_, domain string) bool {
			return strings.IndexFunc(domain, unicode.IsDigit) >= 0
		},
	},
	{
		Name:   "risky-tld",
		Reason: "The website uses a high-risk TLD extension — frequently abused by phishing attackers.",
		Match: func(_, domain string) bool {
			for _, tld := range riskyTLDs {
				if strings.HasSuffix(domain, "."+tld) {
					return true
				}
			}
			return false
		},
	},
	{
		Name:   "no-https",
		Reason: "The website does not use HTTPS — phishing sites usually avoid SSL certificates.",
		Match: func(rawURL, _ string) bool {
			return strings.HasPrefix(rawURL, plainHTTPPrefix)
		},
	},
}

// PhishingRules returns a copy of the rule table in evaluation order.
func PhishingRules() []PhishingRule {
	return append([]PhishingRule(nil), phishingRules...)
}

// HeuristicError reports that the URL could not be inspected at all.
type HeuristicError struct {
	Err error
}

func (e *HeuristicError) Error() string {
	return e.Err.Error()
}

func (e *HeuristicError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match HeuristicError against errors.ErrHeuristicFailure.
func (e *HeuristicError) Is(target error) bool {
	return target == secerrors.ErrHeuristicFailure
}

// CheckPhishing applies every phishing rule to rawURL. A URL that cannot be
// inspected is reported as not suspicious with a single failure reason.
// The empty string is the only such URL: an API request with no url decodes
// to "", and it fails here rather than passing as safe.
func CheckPhishing(rawURL string) PhishingResult {
	result, err := evaluatePhishing(rawURL)
	if err != nil {
		return PhishingResult{
			URL:        rawURL,
			Suspicious: false,
			Reasons:    []string{fmt.Sprintf(phishingFailedFmt, err.Error())},
		}
	}
	return result
}

func evaluatePhishing(rawURL string) (PhishingResult, error) {
	domain, err := DeriveDomain(rawURL)
	if err != nil {
		return PhishingResult{}, &HeuristicError{Err: err}
	}

	result := PhishingResult{URL: rawURL, Reasons: []string{}}
	for _, rule := range phishingRules {
		if rule.Match(rawURL, domain) {
			result.Suspicious = true
			result.Reasons = append(result.Reasons, rule.Reason)
		}
	}

	if !result.Suspicious {
		result.Reasons = append(result.Reasons, PhishingSafeReason)
	}
	return result, nil
}
