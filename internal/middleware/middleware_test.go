package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

// sessionCookie builds a signed session cookie with the given values.
func sessionCookie(t *testing.T, store *sessions.CookieStore, values map[any]any) *http.Cookie {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	session, err := store.Get(r, "session")
	require.NoError(t, err)
	for k, v := range values {
		session.Values[k] = v
	}
	require.NoError(t, session.Save(r, w))
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies[0]
}

func TestRequireAuth(t *testing.T) {
	store := sessions.NewCookieStore([]byte("test-secret"))
	handler := RequireAuth(store)(okHandler())

	t.Run("no session", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/me", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Belum Masuk")
	})

	t.Run("logged in", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		r.AddCookie(sessionCookie(t, store, map[any]any{"user_id": 7, "role": "citizen"}))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	store := sessions.NewCookieStore([]byte("test-secret"))
	handler := RequireAdmin(store)(okHandler())

	t.Run("citizen is forbidden", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/admin/submissions", nil)
		r.AddCookie(sessionCookie(t, store, map[any]any{"user_id": 7, "role": "citizen"}))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "Akses Ditolak")
	})

	t.Run("admin passes", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/admin/submissions", nil)
		r.AddCookie(sessionCookie(t, store, map[any]any{"user_id": 1, "role": "admin"}))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("anonymous is unauthorized", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/submissions", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
