package middleware

import (
	"net/http"
)

// CSRFMiddleware checks the double-submit token on state-changing methods.
// It is wired only when CSRF_PROTECTION is enabled, since the API is also
// consumed without a cookie handshake.
func CSRFMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
			csrfCookie, err := r.Cookie("csrf_token")
			if err != nil {
				http.Error(w, `{"error":"CSRF token missing in cookies"}`, http.StatusForbidden)
				return
			}

			csrfHeader := r.Header.Get("X-CSRF-Token")
			if csrfHeader == "" {
				http.Error(w, `{"error":"X-CSRF-Token header missing"}`, http.StatusForbidden)
				return
			}

			if csrfCookie.Value != csrfHeader {
				http.Error(w, `{"error":"CSRF token mismatch"}`, http.StatusForbidden)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}
