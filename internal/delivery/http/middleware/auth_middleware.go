package middleware

import (
	"context"
	"net/http"
	"strings"

	"clinic-prescription-api/internal/domain/repository"
	"clinic-prescription-api/pkg/jwt"
	"clinic-prescription-api/pkg/response"

	"github.com/google/uuid"
)

type contextKey string

const (
	DoctorIDKey    contextKey = "doctor_id"
	DoctorEmailKey contextKey = "doctor_email"
	TokenIDKey     contextKey = "token_id"
)

type AuthMiddleware struct {
	jwtService *jwt.JWTService
	tokenRepo  repository.TokenRepository
}

func NewAuthMiddleware(jwtService *jwt.JWTService, tokenRepo repository.TokenRepository) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		tokenRepo:  tokenRepo,
	}
}

// Authenticate resolves the bearer credential to a doctor identity and
// fails closed on anything missing, malformed, expired or revoked.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "No token provided")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		// Check the token has not been revoked by logout
		valid, err := m.tokenRepo.Exists(r.Context(), claims.DoctorID, claims.TokenID)
		if err != nil {
			response.InternalServerError(w, "Failed to validate token")
			return
		}
		if !valid {
			response.Unauthorized(w, "Token has been revoked")
			return
		}

		ctx := context.WithValue(r.Context(), DoctorIDKey, claims.DoctorID)
		ctx = context.WithValue(ctx, DoctorEmailKey, claims.Email)
		ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetDoctorIDFromContext extracts the authenticated doctor ID from context
func GetDoctorIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	doctorID, ok := ctx.Value(DoctorIDKey).(uuid.UUID)
	return doctorID, ok
}

// GetDoctorEmailFromContext extracts the authenticated doctor email from context
func GetDoctorEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(DoctorEmailKey).(string)
	return email, ok
}

// GetTokenIDFromContext extracts the token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}
