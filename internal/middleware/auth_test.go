package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/passforge/passforge-go/internal/crypto"
)

func protected(t *testing.T, secret string) http.Handler {
	t.Helper()
	return JWTAuth(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := ClientIDFromContext(r.Context())
		if !ok {
			t.Error("client ID missing from context")
		}
		w.Write([]byte(id))
	}))
}

func TestJWTAuthValidToken(t *testing.T) {
	secret := "test-secret"
	token, err := crypto.GenerateToken("ci-runner", secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	protected(t, secret).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if rr.Body.String() != "ci-runner" {
		t.Errorf("client ID = %q, want %q", rr.Body.String(), "ci-runner")
	}
}

func TestJWTAuthMissingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rr := httptest.NewRecorder()
	protected(t, "test-secret").ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}

func TestJWTAuthMalformedHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Basic abc123")
	rr := httptest.NewRecorder()
	protected(t, "test-secret").ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}

func TestJWTAuthWrongSecret(t *testing.T) {
	token, err := crypto.GenerateToken("ci-runner", "other-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	protected(t, "test-secret").ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}
