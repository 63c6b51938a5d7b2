package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"mottufind/internal/domain"
	apperror "mottufind/internal/errors"
	"mottufind/internal/pkg/logger"
	"mottufind/internal/pkg/respond"
)

// Authenticator define o contrato de login esperado da camada de Serviço.
type Authenticator interface {
	Authenticate(ctx context.Context, email, senha string) (string, error)
}

// MensagemResponse é o corpo devolvido quando o login é recusado.
type MensagemResponse struct {
	Mensagem string `json:"mensagem" example:"Credenciais inválidas"`
}

type Handler struct {
	Service Authenticator
	Logger  logger.Logger
}

func NewHandler(svc Authenticator, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/login", h.Login)
}

// Login troca e-mail e senha por um JWT.
// @Summary Autentica um usuário
// @Tags auth
// @Accept json
// @Produce json
// @Param credenciais body domain.LoginRequest true "E-mail e senha"
// @Success 200 {object} domain.LoginResponse
// @Failure 400 {object} respond.ErrorResponse
// @Failure 401 {object} auth.MensagemResponse
// @Router /v1/auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	tokenString, err := h.Service.Authenticate(r.Context(), req.Email, req.Senha)
	if err != nil {
		var unauthorized *apperror.UnauthorizedError
		if errors.As(err, &unauthorized) {
			respond.JSON(w, h.Logger, http.StatusUnauthorized, MensagemResponse{Mensagem: unauthorized.Error()})
			return
		}
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, h.Logger, http.StatusOK, domain.LoginResponse{Token: tokenString})
}
