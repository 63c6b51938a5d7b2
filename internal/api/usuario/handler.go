package usuario

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"mottufind/internal/domain"
	"mottufind/internal/pkg/logger"
	"mottufind/internal/pkg/respond"
)

// UsuarioService define o contrato que o Handler espera da camada de Serviço.
type UsuarioService interface {
	GetAll(ctx context.Context) ([]domain.UsuarioResponse, error)
	GetByID(ctx context.Context, id int64) (domain.UsuarioResponse, error)
	GetPaged(ctx context.Context, numeroPag, tamanhoPag int) (domain.PagedResult[domain.UsuarioResponse], error)
	Create(ctx context.Context, req domain.UsuarioRequest) (domain.UsuarioResponse, error)
	Update(ctx context.Context, id int64, req domain.UsuarioRequest) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type Handler struct {
	Service  UsuarioService
	Logger   logger.Logger
	BasePath string
}

func NewHandler(svc UsuarioService, log logger.Logger, basePath string) *Handler {
	return &Handler{Service: svc, Logger: log, BasePath: basePath}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.GetAll)
	r.Post("/", h.Create)
	r.Get("/pagina", h.GetPaged)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

// GetAll lista os usuários sem expor senhas.
// @Summary Lista todos os usuários
// @Tags usuario
// @Produce json
// @Success 200 {array} domain.UsuarioResponse
// @Success 204 "Nenhum usuário cadastrado"
// @Router /usuario [get]
func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	usuarios, err := h.Service.GetAll(r.Context())
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	if len(usuarios) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	respond.JSON(w, h.Logger, http.StatusOK, usuarios)
}

// @Summary Obtém um usuário por ID
// @Tags usuario
// @Produce json
// @Param id path int true "ID do usuário"
// @Success 200 {object} domain.UsuarioResponse
// @Failure 404 "Usuário não encontrado"
// @Router /usuario/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	u, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, h.Logger, http.StatusOK, u)
}

// @Summary Lista usuários paginados
// @Tags usuario
// @Produce json
// @Param numeroPag query int false "Número da página (base 1)" default(1)
// @Param tamanhoPag query int false "Itens por página" default(10)
// @Success 200 {object} domain.PagedResult[domain.UsuarioResponse]
// @Failure 400 {object} respond.ErrorResponse
// @Router /usuario/pagina [get]
func (h *Handler) GetPaged(w http.ResponseWriter, r *http.Request) {
	numeroPag, tamanhoPag, err := respond.PageParams(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	page, err := h.Service.GetPaged(r.Context(), numeroPag, tamanhoPag)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, h.Logger, http.StatusOK, page)
}

// Create cadastra um usuário. A senha é gravada como hash.
// @Summary Cria um usuário
// @Tags usuario
// @Accept json
// @Produce json
// @Param usuario body domain.UsuarioRequest true "Dados do usuário"
// @Success 201 {object} domain.UsuarioResponse
// @Failure 400 {object} respond.ErrorResponse
// @Failure 409 {object} respond.ErrorResponse "E-mail já cadastrado"
// @Router /usuario [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.UsuarioRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	created, err := h.Service.Create(r.Context(), req)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.Created(w, h.Logger, fmt.Sprintf("%s/%d", h.BasePath, created.ID), created)
}

// @Summary Atualiza um usuário
// @Tags usuario
// @Accept json
// @Param id path int true "ID do usuário"
// @Param usuario body domain.UsuarioRequest true "Dados do usuário"
// @Success 204
// @Failure 404 "Usuário não encontrado"
// @Router /usuario/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	var req domain.UsuarioRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	ok, err := h.Service.Update(r.Context(), id, req)
	respond.NoContent(w, r, h.Logger, ok, err)
}

// @Summary Remove um usuário
// @Tags usuario
// @Param id path int true "ID do usuário"
// @Success 204
// @Failure 404 "Usuário não encontrado"
// @Router /usuario/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	ok, err := h.Service.Delete(r.Context(), id)
	respond.NoContent(w, r, h.Logger, ok, err)
}
