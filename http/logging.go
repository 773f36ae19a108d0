package http

import (
	"github.com/go-chi/chi/v5/middleware"
	"net/http"
	"time"
)

// logRequests logs every request once it has been served
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(rw, r.ProtoMajor)
		defer func(begin time.Time) {
			s.Logger.Log(
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"took", time.Since(begin),
			)
		}(time.Now())
		next.ServeHTTP(ww, r)
	})
}
