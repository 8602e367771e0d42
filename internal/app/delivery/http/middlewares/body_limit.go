package middlewares

import (
	"net/http"
)

// BodyLimit caps every request body at the configured size. Handlers reading
// past the cap get an error from the body reader instead of an unbounded read.
func (m *Middlewares) BodyLimit(next http.Handler) http.Handler {
	limit := int64(m.InternalConfig.App.RequestBodyLimitInMegabyte) << 20
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, limit)
		next.ServeHTTP(w, r)
	})
}
