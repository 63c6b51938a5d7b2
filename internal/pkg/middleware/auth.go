package middleware

import (
	"context"
	"net/http"
	"strings"

	apperror "mottufind/internal/errors"
	"mottufind/internal/pkg/logger"
	"mottufind/internal/pkg/respond"
	"mottufind/internal/pkg/token"
)

// ContextKey é o tipo das chaves que este pacote grava no contexto.
type ContextKey int

const (
	UserClaimsKey ContextKey = iota
)

// UserClaims são os dados do usuário autenticado extraídos do JWT.
type UserClaims struct {
	UserID int64
	Email  string
	Nome   string
	Setor  string
}

// TokenService define o contrato de validação necessário para o middleware.
type TokenService interface {
	ValidateToken(tokenString string) (*token.CustomClaims, error)
}

// NewAuthMiddleware exige um Bearer token válido e anexa as claims ao contexto.
// Token ausente, malformado, expirado ou com issuer/audience errados responde 401.
func NewAuthMiddleware(tokenSvc TokenService, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || strings.TrimSpace(tokenString) == "" {
				w.Header().Set("WWW-Authenticate", "Bearer")
				respond.Error(w, r, log, apperror.NewUnauthorizedError("Token de autorização ausente ou malformado."))
				return
			}

			claims, err := tokenSvc.ValidateToken(strings.TrimSpace(tokenString))
			if err != nil {
				log.Debug("Token rejeitado.", map[string]interface{}{"path": r.URL.Path, "error": err.Error()})
				w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
				respond.Error(w, r, log, apperror.NewUnauthorizedError("Token inválido ou expirado."))
				return
			}

			userID, err := claims.UserID()
			if err != nil {
				respond.Error(w, r, log, apperror.NewUnauthorizedError("Token inválido ou expirado."))
				return
			}

			ctx := context.WithValue(r.Context(), UserClaimsKey, UserClaims{
				UserID: userID,
				Email:  claims.Email,
				Nome:   claims.Nome,
				Setor:  claims.Setor,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserClaimsFromContext extrai as claims gravadas por NewAuthMiddleware.
func GetUserClaimsFromContext(ctx context.Context) (UserClaims, bool) {
	claims, ok := ctx.Value(UserClaimsKey).(UserClaims)
	return claims, ok
}
