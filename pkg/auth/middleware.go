package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/Goden-Gun/apperr-lib/pkg/envelope"
	"github.com/Goden-Gun/apperr-lib/pkg/logger"
)

type claimsKey struct{}

// WithClaims stores verified claims in ctx.
func WithClaims(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, c)
}

// ClaimsFrom returns the claims stored by Middleware.
func ClaimsFrom(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(claimsKey{}).(*Claims)
	return c, ok && c != nil
}

// Middleware verifies the bearer token of every request. Rejections are
// logged through l (forged tokens reach the security sink) and answered
// with the failure envelope.
func Middleware(svc *Service, l *logger.Logger) func(http.Handler) http.Handler {
	if l != nil {
		l = l.WithArea("auth")
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := svc.Verify(r.Context(), bearerToken(r))
			if err != nil {
				if l != nil {
					l.LogError(r.Context(), err)
				}
				if envelope.Status(err) == http.StatusUnauthorized {
					w.Header().Set("WWW-Authenticate", `Bearer realm="api"`)
				}
				envelope.Write(w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// RequireScopeMiddleware rejects requests whose claims lack scope. It must
// run after Middleware.
func RequireScopeMiddleware(scope string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, _ := ClaimsFrom(r.Context())
			if err := RequireScope(claims, scope); err != nil {
				envelope.Write(w, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) < 7 || !strings.EqualFold(h[:7], "bearer ") {
		return ""
	}
	return h[7:]
}
