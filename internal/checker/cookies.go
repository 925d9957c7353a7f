package checker

import (
	"net/http"
	"strings"
)

// ExtractCookies splits the first Set-Cookie header on ';'. Attributes such
// as Path=/ or HttpOnly come out as entries of their own. Additional
// Set-Cookie headers are ignored.
func ExtractCookies(rawURL string, headers http.Header) CookieScanResult {
	result := CookieScanResult{URL: rawURL}

	raw := headers.Get("Set-Cookie")
	if raw == "" {
		result.Cookies = []CookieEntry{{Cookie: NoCookiesFound}}
		return result
	}

	pieces := strings.Split(raw, ";")
	result.Cookies = make([]CookieEntry, 0, len(pieces))
	for _, piece := range pieces {
		result.Cookies = append(result.Cookies, CookieEntry{Cookie: strings.TrimSpace(piece)})
	}
	return result
}

// FailedCookieResult is returned when the target could not be fetched.
func FailedCookieResult(rawURL string) CookieScanResult {
	return CookieScanResult{
		URL:     rawURL,
		Cookies: []CookieEntry{{Cookie: CookieScanFailed}},
	}
}
