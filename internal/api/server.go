package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/izza-m1/Secgap-Analyzer/internal/api/middleware"
	"github.com/izza-m1/Secgap-Analyzer/internal/checker"
	consts "github.com/izza-m1/Secgap-Analyzer/internal/shared/constants"
	secerrors "github.com/izza-m1/Secgap-Analyzer/internal/shared/errors"
	"go.uber.org/zap"
)

// ScanRequest is the body accepted by every scan endpoint.
type ScanRequest struct {
	URL json.RawMessage `json:"url"`
}

// Target returns the url field when it is a JSON string, and "" when it is
// missing, null or any other JSON type. "" drives every check to its
// failure result, so a wrongly typed url still gets a 200 answer.
func (r ScanRequest) Target() string {
	var target string
	if err := json.Unmarshal(r.URL, &target); err != nil {
		return ""
	}
	return target
}

// Analyzers runs the three checks. *checker.Analyzer satisfies it.
type Analyzers interface {
	ScoreHeaders(ctx context.Context, rawURL string) checker.HeaderScanResult
	ScanCookies(ctx context.Context, rawURL string) checker.CookieScanResult
	CheckPhishing(rawURL string) checker.PhishingResult
}

type Config struct {
	Analyzers   Analyzers
	Logger      *zap.Logger
	CORSOrigins []string // Allowed CORS origins (empty = allow all)
}

type Server struct {
	cfg Config
	mux *http.ServeMux
}

func NewServer(cfg Config) *Server {
	srv := &Server{
		cfg: cfg,
		mux: http.NewServeMux(),
	}
	srv.routes()
	return srv
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Apply middleware chain: RequestID -> Logging -> CORS -> Handler
	handler := middleware.RequestID(s.withLogging(s.withCORS(s.mux)))
	handler.ServeHTTP(w, r)
}

func (s *Server) routes() {
	vulnScan := s.scanHandler("vuln-scan", func(ctx context.Context, url string) any {
		return s.cfg.Analyzers.ScoreHeaders(ctx, url)
	})
	cookieScan := s.scanHandler("cookie-scan", func(ctx context.Context, url string) any {
		return s.cfg.Analyzers.ScanCookies(ctx, url)
	})
	phishingCheck := s.scanHandler("phishing-check", func(_ context.Context, url string) any {
		return s.cfg.Analyzers.CheckPhishing(url)
	})

	// Version 1 API routes (primary)
	s.mux.Handle("/api/v1/health", http.HandlerFunc(s.handleHealth))
	s.mux.Handle("/api/v1/vuln-scan", vulnScan)
	s.mux.Handle("/api/v1/cookie-scan", cookieScan)
	s.mux.Handle("/api/v1/phishing-check", phishingCheck)

	// Unversioned routes (backward compatibility - alias to v1)
	s.mux.Handle("/api/health", http.HandlerFunc(s.handleHealth))
	s.mux.Handle("/api/vuln-scan", vulnScan)
	s.mux.Handle("/api/cookie-scan", cookieScan)
	s.mux.Handle("/api/phishing-check", phishingCheck)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r)
		return
	}
	if s.cfg.Analyzers == nil {
		s.writeError(w, r, http.StatusServiceUnavailable, errors.New("analyzers not configured"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// scanHandler decodes a ScanRequest and answers 200 with whatever run returns.
// Analyzer failures are encoded inside the result, never as an HTTP status.
func (s *Server) scanHandler(name string, run func(ctx context.Context, url string) any) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			s.methodNotAllowed(w, r)
			return
		}
		if s.cfg.Analyzers == nil {
			s.writeError(w, r, http.StatusServiceUnavailable, errors.New("analyzers not configured"))
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, consts.MaxRequestBodyBytes)
		var req ScanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeError(w, r, http.StatusBadRequest, fmt.Errorf("%w: %v", secerrors.ErrInvalidRequest, err))
			return
		}

		target := req.Target()
		start := time.Now()
		result := run(r.Context(), target)

		s.requestLogger(r).Debug("scan_completed",
			zap.String("check", name),
			zap.String("url", target),
			zap.Duration("duration", time.Since(start)),
		)

		writeJSON(w, http.StatusOK, result)
	})
}

func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		// Determine if origin is allowed
		allowOrigin := "*"
		if len(s.cfg.CORSOrigins) > 0 {
			allowOrigin = ""
			for _, allowedOrigin := range s.cfg.CORSOrigins {
				if allowedOrigin == origin {
					allowOrigin = origin
					break
				}
			}
		}

		if allowOrigin != "" {
			w.Header().Set("Access-Control-Allow-Origin", allowOrigin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
			w.Header().Set("Access-Control-Max-Age", "3600")
			if allowOrigin != "*" {
				w.Header().Add("Vary", "Origin")
			}
		}

		// Handle preflight requests
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Create a response writer wrapper to capture status code
		lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(lrw, r)

		if s.cfg.Logger != nil {
			requestID := middleware.GetRequestID(r.Context())
			s.cfg.Logger.Info("http_request",
				zap.String("request_id", requestID),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("remote_addr", r.RemoteAddr),
				zap.Int("status", lrw.statusCode),
				zap.Duration("duration", time.Since(start)),
				zap.Int64("bytes", lrw.bytesWritten),
			)
		}
	})
}

// loggingResponseWriter wraps http.ResponseWriter to capture status code and bytes written
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int64
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func (lrw *loggingResponseWriter) Write(b []byte) (int, error) {
	n, err := lrw.ResponseWriter.Write(b)
	lrw.bytesWritten += int64(n)
	return n, err
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	msg := err.Error()

	// For 5xx errors, return generic message and log details server-side
	if status >= 500 {
		s.requestLogger(r).Error("internal_server_error",
			zap.Error(err),
			zap.Int("status", status),
		)
		msg = http.StatusText(status)
	}

	writeJSON(w, status, map[string]string{"error": msg})
}

// requestLogger creates a logger with request context (request ID, method, path)
func (s *Server) requestLogger(r *http.Request) *zap.Logger {
	if s.cfg.Logger == nil {
		return zap.NewNop()
	}

	requestID := middleware.GetRequestID(r.Context())
	return s.cfg.Logger.With(
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)
}

func (s *Server) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, r, http.StatusMethodNotAllowed, errors.New("method not allowed"))
}
