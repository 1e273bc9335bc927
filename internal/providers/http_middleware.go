package providers

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/gzhttp"
)

const RequestIDHeader = "X-Request-Id"

// RequestLogMiddleware tags every request with an id (reusing a valid
// incoming X-Request-Id) and writes one access line per request.
func RequestLogMiddleware(logger Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		logger.Infof(TypeHTTP, "%s %s %d %s id=%s client=%s", r.Method, r.URL.RequestURI(), sw.status, time.Since(start), requestID, ClientIP(r))
	})
}

// ThrottleMiddleware rejects clients that ran out of budget with 429.
func ThrottleMiddleware(throttle ThrottleProviderInterface, retryAfter time.Duration, next http.Handler) http.Handler {
	seconds := strconv.Itoa(max(int(retryAfter.Seconds()), 1))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !throttle.Allow(ClientIP(r)) {
			w.Header().Set("Retry-After", seconds)
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CompressionMiddleware gzips responses for clients that accept it.
func CompressionMiddleware(enabled bool, next http.Handler) http.Handler {
	if !enabled {
		return next
	}
	return gzhttp.GzipHandler(next)
}

func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
