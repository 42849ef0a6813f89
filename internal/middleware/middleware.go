package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/sessions"
)

func writeError(w http.ResponseWriter, status int, title, description string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"title":       title,
		"description": description,
	})
}

// RequireAuth rejects requests without a logged-in session.
func RequireAuth(store *sessions.CookieStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, _ := store.Get(r, "session")
			userID := session.Values["user_id"]

			if userID == nil {
				writeError(w, http.StatusUnauthorized, "Belum Masuk", "Silakan masuk terlebih dahulu.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin additionally demands the admin role.
func RequireAdmin(store *sessions.CookieStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, _ := store.Get(r, "session")
			userID := session.Values["user_id"]
			userRole := session.Values["role"]

			if userID == nil {
				writeError(w, http.StatusUnauthorized, "Belum Masuk", "Silakan masuk terlebih dahulu.")
				return
			}

			if userRole != "admin" {
				writeError(w, http.StatusForbidden, "Akses Ditolak", "Halaman ini khusus petugas desa.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
