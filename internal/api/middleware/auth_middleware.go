package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gradwear/storefront/internal/errors"
	models "github.com/gradwear/storefront/internal/models"
	"github.com/gradwear/storefront/internal/utils/response"
)

type contextKey string

const UserContextKey = contextKey("user")

type AuthMiddleware struct {
	jwtKey []byte
	parser *jwt.Parser
}

func NewAuthMiddleware(jwtKey []byte) *AuthMiddleware {

	return &AuthMiddleware{
		jwtKey: jwtKey,
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired()),
	}

}

// ClaimsFromContext returns the signed-in user's claims, or nil for anonymous requests.
func ClaimsFromContext(ctx context.Context) *models.Claims {
	claims, _ := ctx.Value(UserContextKey).(*models.Claims)

	return claims
}

// UserIDFromContext is 0 for anonymous requests.
func UserIDFromContext(ctx context.Context) int64 {
	if claims := ClaimsFromContext(ctx); claims != nil {
		return claims.UserID
	}

	return 0
}

func (m *AuthMiddleware) parse(r *http.Request) (*models.Claims, *errors.AppError) {

	logger := LoggerFromContext(r.Context())

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		logger.Warn("Missing authorization header")
		return nil, errors.AuthRequiredError("Authorization header is required")
	}

	// Token is of format : "Bearer <token>"
	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		logger.Warn("Invalid authorization header format")
		return nil, errors.AuthRequiredError("Invalid authorization format")
	}

	claims := &models.Claims{}

	token, err := m.parser.ParseWithClaims(tokenParts[1], claims, func(t *jwt.Token) (any, error) {
		return m.jwtKey, nil
	})
	if err != nil {
		logger.Warn("JWT parsing failed", slog.String("error", err.Error()))
		return nil, errors.AuthRequiredError("Invalid or expired token")
	}

	if !token.Valid || claims.UserID <= 0 {
		logger.Warn("Invalid token")
		return nil, errors.AuthRequiredError("Invalid token")
	}

	return claims, nil
}

func withClaims(r *http.Request, claims *models.Claims) *http.Request {

	ctx := context.WithValue(r.Context(), UserContextKey, claims)

	requestScopedLogger := LoggerFromContext(r.Context()).With(slog.Int64("userId", claims.UserID))
	ctx = context.WithValue(ctx, LoggerKey, requestScopedLogger)

	return r.WithContext(ctx)
}

// Authenticate rejects requests without a valid bearer token.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, appErr := m.parse(r)
		if appErr != nil {
			response.Error(w, appErr)
			return
		}

		r = withClaims(r, claims)
		LoggerFromContext(r.Context()).Info("User authenticated")

		next.ServeHTTP(w, r)
	}
}

// Optional attaches the user when a valid token is sent and lets anonymous requests through.
func (m *AuthMiddleware) Optional(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		if r.Header.Get("Authorization") != "" {
			if claims, appErr := m.parse(r); appErr == nil {
				r = withClaims(r, claims)
			}
		}

		next.ServeHTTP(w, r)
	}
}

// RequireAdmin must run after Authenticate.
func RequireAdmin(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims := ClaimsFromContext(r.Context())
		if claims == nil {
			response.Error(w, errors.AuthRequiredError("Authentication required"))
			return
		}

		if !claims.IsAdmin() {
			LoggerFromContext(r.Context()).Warn("Non-admin access to admin route")
			response.Error(w, errors.ForbiddenError("Admin access required"))
			return
		}

		next.ServeHTTP(w, r)
	}
}
