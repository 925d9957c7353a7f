package checker

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	consts "github.com/izza-m1/Secgap-Analyzer/internal/shared/constants"
	secerrors "github.com/izza-m1/Secgap-Analyzer/internal/shared/errors"
)

// Fetcher performs the single outbound request a network check needs.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (*http.Response, error)
}

// HTTPFetcher issues one GET per call. Errors of any kind (malformed URL,
// DNS, refused connection, TLS, timeout) are wrapped in errors.ErrUnreachable.
type HTTPFetcher struct {
	Client    *http.Client
	UserAgent string
}

// NewHTTPFetcher builds a fetcher with its own client. Keep-alives are
// disabled so every call opens a fresh connection.
func NewHTTPFetcher(timeout time.Duration, userAgent string) *HTTPFetcher {
	if timeout <= 0 {
		timeout = consts.FetchTimeout
	}
	if userAgent == "" {
		userAgent = consts.DefaultUserAgent
	}
	return &HTTPFetcher{
		Client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy:             http.ProxyFromEnvironment,
				TLSClientConfig:   &tls.Config{InsecureSkipVerify: false},
				DisableKeepAlives: true,
			},
		},
		UserAgent: userAgent,
	}
}

// Fetch performs a GET on rawURL. The caller must close the response body.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", secerrors.ErrUnreachable, err)
	}
	if f.UserAgent != "" {
		req.Header.Set("User-Agent", f.UserAgent)
	}

	client := f.Client
	if client == nil {
		client = &http.Client{Timeout: consts.FetchTimeout}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", secerrors.ErrUnreachable, err)
	}
	return resp, nil
}
