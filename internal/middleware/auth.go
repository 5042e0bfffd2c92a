package middleware

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/nabin00012/codecommons-sub000/internal/authorization"
	"github.com/nabin00012/codecommons-sub000/pkg/ctxdata"
	"github.com/nabin00012/codecommons-sub000/pkg/logging"
)

const authCookieName = "token"

// NewAuthMiddleware validates the bearer token (or the auth cookie set for
// browser downloads) and stores the caller's identity in the context.
func NewAuthMiddleware(tokens *authorization.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			raw := bearerToken(r)
			if raw == "" {
				if logger, ok := logging.GetFromContext(ctx); ok {
					logger.Info(ctx, "no credentials", zap.String("path", r.URL.Path))
				}
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			claims, err := tokens.Parse(raw)
			if err != nil {
				if logger, ok := logging.GetFromContext(ctx); ok {
					logger.Info(ctx, "invalid token", zap.String("path", r.URL.Path))
				}
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx = ctxdata.WithIdentity(ctx, ctxdata.Identity{
				UserID: claims.Subject,
				Role:   claims.Role.String(),
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := r.Cookie(authCookieName); err == nil {
		return cookie.Value
	}
	return ""
}
