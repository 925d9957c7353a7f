package checker

import (
	"net/http"
	"testing"
)

func TestExtractCookies(t *testing.T) {
	headers := http.Header{}
	headers.Add("Set-Cookie", "a=1; Path=/; HttpOnly")

	result := ExtractCookies("https://example.com", headers)

	want := []string{"a=1", "Path=/", "HttpOnly"}
	if len(result.Cookies) != len(want) {
		t.Fatalf("expected %d entries, got %d: %+v", len(want), len(result.Cookies), result.Cookies)
	}
	for i, w := range want {
		if result.Cookies[i].Cookie != w {
			t.Errorf("entry %d = %q, want %q", i, result.Cookies[i].Cookie, w)
		}
	}
	if result.URL != "https://example.com" {
		t.Errorf("expected URL to be echoed, got %q", result.URL)
	}
}

func TestExtractCookies_OnlyFirstHeader(t *testing.T) {
	headers := http.Header{}
	headers.Add("Set-Cookie", "session=abc123; Path=/")
	headers.Add("Set-Cookie", "prefs=dark; Path=/; Secure")

	result := ExtractCookies("https://example.com", headers)

	if len(result.Cookies) != 2 {
		t.Fatalf("expected only the first header to be split, got %+v", result.Cookies)
	}
	if result.Cookies[0].Cookie != "session=abc123" || result.Cookies[1].Cookie != "Path=/" {
		t.Errorf("unexpected entries: %+v", result.Cookies)
	}
}

func TestExtractCookies_TrailingDelimiter(t *testing.T) {
	headers := http.Header{}
	headers.Set("Set-Cookie", "  id=7 ;Secure;  ")

	result := ExtractCookies("https://example.com", headers)

	want := []string{"id=7", "Secure", ""}
	if len(result.Cookies) != len(want) {
		t.Fatalf("expected %d entries, got %+v", len(want), result.Cookies)
	}
	for i, w := range want {
		if result.Cookies[i].Cookie != w {
			t.Errorf("entry %d = %q, want %q", i, result.Cookies[i].Cookie, w)
		}
	}
}

func TestExtractCookies_NoSetCookie(t *testing.T) {
	result := ExtractCookies("https://example.com", http.Header{})

	if len(result.Cookies) != 1 || result.Cookies[0].Cookie != NoCookiesFound {
		t.Fatalf("expected sentinel entry, got %+v", result.Cookies)
	}
}

func TestExtractCookies_EmptySetCookie(t *testing.T) {
	headers := http.Header{}
	headers.Set("Set-Cookie", "")

	result := ExtractCookies("https://example.com", headers)
	if len(result.Cookies) != 1 || result.Cookies[0].Cookie != NoCookiesFound {
		t.Fatalf("expected sentinel entry for empty header, got %+v", result.Cookies)
	}
}

func TestFailedCookieResult(t *testing.T) {
	result := FailedCookieResult("https://nowhere.invalid")
	if len(result.Cookies) != 1 || result.Cookies[0].Cookie != CookieScanFailed {
		t.Fatalf("expected failure sentinel, got %+v", result.Cookies)
	}
}
