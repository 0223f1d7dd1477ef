package middleware

import "net/http"

// BodyLimit returns middleware that caps request bodies at maxBytes.
// Handlers see an error from Read once the cap is crossed. maxBytes <= 0
// disables the cap.
func BodyLimit(maxBytes int64) Middleware {
	return func(next http.Handler) http.Handler {
		if maxBytes <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
