package middlewares

import (
	"caremarket-service/internal/pkg/constvars"
	"caremarket-service/internal/pkg/exceptions"
	"caremarket-service/internal/pkg/utils"
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Authenticate verifies the bearer token issued by the identity provider and
// stores its subject and roles in the request context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := utils.GetRequestID(r.Context())

		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, constvars.AuthorizationBearerPrefix) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(errors.New("bearer token missing")))
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, constvars.AuthorizationBearerPrefix))
		claims, err := utils.ParseIdentityJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			m.Log.Warn("Middlewares.Authenticate rejected token",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			if utils.IsMissingSubject(err) {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissingSubject(err))
				return
			}
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_IDENTITY_SUB_KEY, claims.Subject)
		ctx = context.WithValue(ctx, constvars.CONTEXT_IDENTITY_ROLES_KEY, claims.Roles)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
