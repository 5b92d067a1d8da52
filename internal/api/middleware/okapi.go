package middleware

import (
	"log/slog"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/phrazzld/eholdings-api/internal/api/shared"
	"github.com/phrazzld/eholdings-api/internal/domain"
	"github.com/phrazzld/eholdings-api/internal/platform/logger"
)

// OkapiAuthenticator requires the Okapi tenant headers on every request it
// wraps. Okapi has already verified the token before the request reaches this
// module, so the token is only decoded to label log lines.
type OkapiAuthenticator struct {
	logger *slog.Logger
}

// NewOkapiAuthenticator creates the tenant header middleware.
func NewOkapiAuthenticator(log *slog.Logger) *OkapiAuthenticator {
	if log == nil {
		log = slog.Default()
	}
	return &OkapiAuthenticator{logger: log.With(slog.String("component", "okapi_authenticator"))}
}

// Middleware checks the headers in order URL, tenant, token. The first
// missing one ends the request with a plain-text 400.
func (a *OkapiAuthenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContextOrDefault(ctx, a.logger)

		tenant, err := domain.NewTenantContext(
			r.Header.Get(domain.HeaderOkapiURL),
			r.Header.Get(domain.HeaderOkapiTenant),
			r.Header.Get(domain.HeaderOkapiToken),
		)
		if err != nil {
			log.Debug("rejected request without tenant headers",
				slog.String("path", r.URL.Path),
				slog.String("reason", err.Error()))
			shared.RespondWithPlainText(w, r, http.StatusBadRequest, err.Error())
			return
		}

		attrs := []any{slog.String("tenant", tenant.Tenant)}
		if userID := tokenUserID(tenant.Token); userID != "" {
			attrs = append(attrs, slog.String("user_id", userID))
		}

		ctx = shared.WithTenant(ctx, tenant)
		ctx = logger.WithLogger(ctx, log.With(attrs...))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// tokenUserID reads the user id claim of an Okapi token without verifying
// it. Tokens that are not JWTs yield "".
func tokenUserID(token string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	for _, key := range []string{"user_id", "sub"} {
		if v, ok := claims[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
