package middleware

import (
	"context"
	"errors"
	"net/http"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/golang-jwt/jwt/v5"

	"github.com/brunogodoif/projectmanagement/internal/adapters/http/dto"
	"github.com/brunogodoif/projectmanagement/internal/platform/config"
	"github.com/brunogodoif/projectmanagement/internal/platform/logging"
)

var (
	errMissingToken = errors.New("missing bearer token")
	errInvalidToken = errors.New("invalid token")
	errExpiredToken = errors.New("token has expired")
)

type (
	subjectKey     struct{}
	subjectSlotKey struct{}
)

// subjectSlot carries the authenticated subject back out to Logging, which
// wraps the API group from outside and never sees the inner context.
type subjectSlot struct{ sub atomic.Pointer[string] }

func withSubjectSlot(ctx context.Context) (context.Context, *subjectSlot) {
	slot := &subjectSlot{}
	return context.WithValue(ctx, subjectSlotKey{}, slot), slot
}

func (s *subjectSlot) get() string {
	if p := s.sub.Load(); p != nil {
		return *p
	}
	return ""
}

// SubjectFromContext returns the "sub" claim of the authenticated caller, or
// an empty string when the request was not authenticated.
func SubjectFromContext(ctx context.Context) string {
	if sub, ok := ctx.Value(subjectKey{}).(string); ok {
		return sub
	}
	return ""
}

// Authenticator validates HS256 bearer tokens.
type Authenticator struct {
	secret []byte
	issuer string
}

// NewAuthenticator creates an Authenticator from cfg. An empty issuer
// accepts tokens from any issuer.
func NewAuthenticator(cfg config.AuthConfig) *Authenticator {
	return &Authenticator{secret: []byte(cfg.JWTSecret), issuer: cfg.Issuer}
}

// Validate parses raw and returns its registered claims.
func (a *Authenticator) Validate(raw string) (*jwt.RegisteredClaims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errExpiredToken
		}
		return nil, errInvalidToken
	}
	return claims, nil
}

// Auth returns middleware that requires a valid "Authorization: Bearer"
// header and stores the token subject in the request context. Failures are
// answered with 401 and a WWW-Authenticate challenge.
func Auth(a *Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, err := bearerToken(r.Header.Get("Authorization"))
			var claims *jwt.RegisteredClaims
			if err == nil {
				claims, err = a.Validate(raw)
			}
			if err != nil {
				w.Header().Set("WWW-Authenticate", `Bearer realm="api"`)
				dto.WriteProblem(w, r, http.StatusUnauthorized, err.Error())
				return
			}

			ctx := context.WithValue(r.Context(), subjectKey{}, claims.Subject)
			if slot, ok := ctx.Value(subjectSlotKey{}).(*subjectSlot); ok {
				slot.sub.Store(&claims.Subject)
			}
			ctx = logging.WithLogger(ctx, logging.FromContext(ctx).With(slog.String("subject", claims.Subject)))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(header string) (string, error) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", errMissingToken
	}
	return strings.TrimSpace(token), nil
}
