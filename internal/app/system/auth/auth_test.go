package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dalemusser/grouphub/internal/app/system/auth"
	jwt "github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const testSecret = "unit-test-secret-0123456789"

func signToken(t *testing.T, secret, subject string) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return raw
}

func actorProbe(t *testing.T) (http.Handler, *string) {
	t.Helper()
	var got string
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = auth.Actor(r)
		w.WriteHeader(http.StatusOK)
	})
	return h, &got
}

func TestNewVerifier_BlankSecret(t *testing.T) {
	if _, err := auth.NewVerifier("  ", zap.NewNop()); err == nil {
		t.Fatal("expected error for blank secret")
	}
}

func TestLoadActor_ValidToken(t *testing.T) {
	v, err := auth.NewVerifier(testSecret, zap.NewNop())
	if err != nil {
		t.Fatalf("NewVerifier: %v", err)
	}
	probe, got := actorProbe(t)

	r := httptest.NewRequest("GET", "/v1/user-groups", nil)
	r.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "user-42"))
	w := httptest.NewRecorder()
	v.LoadActor(probe).ServeHTTP(w, r)

	if *got != "user-42" {
		t.Errorf("actor: got %q, want %q", *got, "user-42")
	}
}

func TestLoadActor_WrongSecret(t *testing.T) {
	v, _ := auth.NewVerifier(testSecret, zap.NewNop())
	probe, got := actorProbe(t)

	r := httptest.NewRequest("GET", "/v1/user-groups", nil)
	r.Header.Set("Authorization", "Bearer "+signToken(t, "some-other-secret-value", "user-42"))
	w := httptest.NewRecorder()
	v.LoadActor(probe).ServeHTTP(w, r)

	if *got != "" {
		t.Errorf("expected no actor for forged token, got %q", *got)
	}
}

func TestRequireActor_Unauthenticated(t *testing.T) {
	h := auth.RequireActor(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run without an actor")
	}))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("POST", "/v1/user-groups", nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestRequireActor_WithTestActor(t *testing.T) {
	called := false
	h := auth.RequireActor(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	r := auth.WithTestActor(httptest.NewRequest("POST", "/v1/user-groups", nil), "actor-1")
	h.ServeHTTP(httptest.NewRecorder(), r)
	if !called {
		t.Error("expected handler to run with injected actor")
	}
}
