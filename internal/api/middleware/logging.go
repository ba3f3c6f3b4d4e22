package middleware

import (
	"log"
	"net/http"
	"time"
)

// responseWriter wraps http.ResponseWriter to capture status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	bytes      int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.bytes += n
	return n, err
}

// Logging middleware logs request method, path, status, size and duration.
// The authenticated user, if any, is appended.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		holder := &userHolder{}
		next.ServeHTTP(wrapped, r.WithContext(withUserHolder(r.Context(), holder)))

		duration := time.Since(start)
		if holder.username != "" {
			log.Printf("%s %s %d %dB %v user=%s", r.Method, r.URL.Path, wrapped.statusCode, wrapped.bytes, duration, holder.username)
			return
		}
		log.Printf("%s %s %d %dB %v", r.Method, r.URL.Path, wrapped.statusCode, wrapped.bytes, duration)
	})
}
