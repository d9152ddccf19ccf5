// internal/app/system/auth/auth.go

// Package auth resolves the acting user for a request. Callers present a
// bearer JWT; the subject claim becomes the actor id stamped into
// createdBy/modifiedBy. The core service never reads ambient auth state —
// handlers pull the actor from the request context and pass it explicitly.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dalemusser/grouphub/internal/app/system/apperr"
	"github.com/dalemusser/grouphub/internal/app/system/respond"
	jwt "github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

type ctxKey string

const actorKey ctxKey = "actor"

var errNoSubject = errors.New("token has no subject claim")

// Verifier validates bearer tokens and injects the actor id into the
// request context.
type Verifier struct {
	secret []byte
	log    *zap.Logger
}

// NewVerifier builds a Verifier from the configured HMAC secret.
func NewVerifier(secret string, logger *zap.Logger) (*Verifier, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("auth secret must not be empty")
	}
	return &Verifier{secret: []byte(secret), log: logger}, nil
}

// Actor returns the actor id from the request context and a found flag.
func Actor(r *http.Request) (string, bool) {
	id, ok := r.Context().Value(actorKey).(string)
	return id, ok && id != ""
}

// LoadActor parses the Authorization header if present and, on a valid
// token, stores the subject as the actor id in the request context.
// Requests without a token pass through untouched; enforcement is
// RequireActor's job.
func (v *Verifier) LoadActor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := bearerToken(r)
		if raw == "" {
			next.ServeHTTP(w, r)
			return
		}
		sub, err := v.subject(raw)
		if err != nil {
			v.log.Debug("rejected bearer token", zap.Error(err))
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), actorKey, sub)))
	})
}

// RequireActor ensures an actor id is in context (set by LoadActor) and
// answers 401 otherwise.
func RequireActor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := Actor(r); !ok {
			respond.Error(w, nil, apperr.NotAuthenticated("a valid bearer token is required"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithTestActor injects an actor id directly into the request context.
// Handler tests use this to bypass token parsing.
func WithTestActor(r *http.Request, actorID string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), actorKey, actorID))
}

func (v *Verifier) subject(raw string) (string, error) {
	tok, err := jwt.Parse(raw,
		func(t *jwt.Token) (any, error) { return v.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(30*time.Second),
	)
	if err != nil {
		return "", err
	}
	sub, err := tok.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", errNoSubject
	}
	return sub, nil
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "Bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}
