// ABOUTME: Permissive CORS middleware for the public read-only API
// ABOUTME: Adds the allow headers to every response and answers preflights directly

package middleware

import "net/http"

// CORSMiddleware sets the CORS headers on every response, including errors
// and unmatched paths, and answers OPTIONS on any path with 204
func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
