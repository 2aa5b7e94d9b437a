package auth

import (
	"chat-hub/domain"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMiddleware(t *testing.T) {
	issuer := NewIssuer("a-test-secret", time.Minute)
	var seen domain.UserID
	handler := Middleware(issuer)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("should reject a request without token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/contacts", nil))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should reject an invalid token", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/contacts", nil)
		r.Header.Set("Authorization", "Bearer garbage")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, r)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should inject the user id", func(t *testing.T) {
		token, err := issuer.Issue("user-7", "alice")
		require.NoError(t, err)
		r := httptest.NewRequest(http.MethodGet, "/contacts", nil)
		r.Header.Set("Authorization", "Bearer "+token.AccessToken)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, r)
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, domain.UserID("user-7"), seen)
	})
}
