package middleware

import (
	"net/http"

	"blogcomments/app/metrics"

	"github.com/gorilla/mux"
)

// Metrics records request counts and latency labelled with the matched route
// template, so /api/comments/abc and /api/comments/def share a series.
func Metrics(m *metrics.HTTPMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := "unmatched"
			if route := mux.CurrentRoute(r); route != nil {
				if tpl, err := route.GetPathTemplate(); err == nil {
					path = tpl
				}
			}

			done := m.Start(r.Method, path)
			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r)
			done(rec.status)
		})
	}
}
