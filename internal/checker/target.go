package checker

import (
	"strings"

	secerrors "github.com/izza-m1/Secgap-Analyzer/internal/shared/errors"
)

// DeriveDomain extracts the host part of rawURL without a URL parser: the text
// after the first "//" (or all of it when there is none), cut at the next "/",
// lower-cased. Userinfo and port stay attached, e.g. "user@host:8080".
func DeriveDomain(rawURL string) (string, error) {
	if rawURL == "" {
		return "", secerrors.ErrEmptyURL
	}

	rest := rawURL
	if _, after, found := strings.Cut(rawURL, "//"); found {
		rest = after
	}
	host, _, _ := strings.Cut(rest, "/")

	return strings.ToLower(host), nil
}

// HasScheme reports whether rawURL starts with an http or https scheme.
func HasScheme(rawURL string) bool {
	lower := strings.ToLower(rawURL)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
