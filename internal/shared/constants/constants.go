package constants

import "time"

const (
	// FetchTimeout bounds the single outbound request each network check performs.
	FetchTimeout = 5 * time.Second
	// DefaultUserAgent is sent with every outbound request.
	DefaultUserAgent = "Mozilla/5.0"
)

const (
	// MaxRequestBodyBytes caps inbound API request bodies.
	MaxRequestBodyBytes = 1 << 20
	// DefaultListenAddr is where the API server listens unless configured otherwise.
	DefaultListenAddr = "127.0.0.1:5000"
	// DefaultShutdownTimeout is the grace period for in-flight requests on shutdown.
	DefaultShutdownTimeout = 30 * time.Second
)
