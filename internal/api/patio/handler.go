package patio

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"mottufind/internal/domain"
	"mottufind/internal/pkg/hateoas"
	"mottufind/internal/pkg/logger"
	"mottufind/internal/pkg/respond"
)

// PatioService define o contrato que o Handler espera da camada de Serviço.
type PatioService interface {
	GetAll(ctx context.Context) ([]domain.PatioResponse, error)
	GetByID(ctx context.Context, id int64) (domain.PatioResponse, error)
	GetPaged(ctx context.Context, numeroPag, tamanhoPag int) (domain.PagedResult[domain.PatioResponse], error)
	Create(ctx context.Context, req domain.PatioRequest) (domain.PatioResponse, error)
	Update(ctx context.Context, id int64, req domain.PatioRequest) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// Handler agrupa os endpoints de pátios montados em BasePath (ex.: /api/v1/patio).
type Handler struct {
	Service  PatioService
	Logger   logger.Logger
	BasePath string
}

func NewHandler(svc PatioService, log logger.Logger, basePath string) *Handler {
	return &Handler{Service: svc, Logger: log, BasePath: basePath}
}

// Routes registra as rotas relativas a BasePath.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.GetAll)
	r.Post("/", h.Create)
	r.Get("/pagina", h.GetPaged)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

func (h *Handler) itemPath(id int64) string {
	return fmt.Sprintf("%s/%d", h.BasePath, id)
}

func (h *Handler) wrap(p domain.PatioResponse) hateoas.Resource[domain.PatioResponse] {
	return hateoas.Wrap(p, hateoas.ItemLinks(h.itemPath(p.ID), h.BasePath)...)
}

// GetAll lista os pátios.
// @Summary Lista todos os pátios
// @Tags patio
// @Produce json
// @Success 200 {array} domain.PatioResponse
// @Success 204 "Nenhum pátio cadastrado"
// @Failure 500 {object} respond.ErrorResponse
// @Router /v1/patio [get]
func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	patios, err := h.Service.GetAll(r.Context())
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	if len(patios) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	respond.JSON(w, h.Logger, http.StatusOK, patios)
}

// GetByID busca um pátio com seus links.
// @Summary Obtém um pátio por ID
// @Tags patio
// @Produce json
// @Param id path int true "ID do pátio"
// @Success 200 {object} hateoas.Resource[domain.PatioResponse]
// @Failure 404 "Pátio não encontrado"
// @Router /v1/patio/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	p, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, h.Logger, http.StatusOK, h.wrap(p))
}

// GetPaged devolve uma página de pátios. Página vazia responde 204.
// @Summary Lista pátios paginados
// @Tags patio
// @Produce json
// @Param numeroPag query int false "Número da página (base 1)" default(1)
// @Param tamanhoPag query int false "Itens por página" default(10)
// @Success 200 {object} hateoas.Resource[domain.PagedResult[domain.PatioResponse]]
// @Success 204 "Página vazia"
// @Failure 400 {object} respond.ErrorResponse
// @Router /v1/patio/pagina [get]
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
	if len(page.Itens) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	links := hateoas.PageLinks(h.BasePath+"/pagina", page.NumeroPag, page.TamanhoPag, page.Total)
	respond.JSON(w, h.Logger, http.StatusOK, hateoas.Wrap(page, links...))
}

// Create cadastra um pátio.
// @Summary Cria um pátio
// @Tags patio
// @Accept json
// @Produce json
// @Param patio body domain.PatioRequest true "Dados do pátio"
// @Success 201 {object} domain.PatioResponse
// @Header 201 {string} Location "URL do pátio criado"
// @Failure 400 {object} respond.ErrorResponse
// @Router /v1/patio [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.PatioRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	created, err := h.Service.Create(r.Context(), req)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.Created(w, h.Logger, h.itemPath(created.ID), created)
}

// Update substitui os dados de um pátio.
// @Summary Atualiza um pátio
// @Tags patio
// @Accept json
// @Param id path int true "ID do pátio"
// @Param patio body domain.PatioRequest true "Dados do pátio"
// @Success 204
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 "Pátio não encontrado"
// @Router /v1/patio/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	var req domain.PatioRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	ok, err := h.Service.Update(r.Context(), id, req)
	respond.NoContent(w, r, h.Logger, ok, err)
}

// Delete remove um pátio.
// @Summary Remove um pátio
// @Tags patio
// @Param id path int true "ID do pátio"
// @Success 204
// @Failure 404 "Pátio não encontrado"
// @Failure 409 {object} respond.ErrorResponse "Pátio possui motos ou leitores"
// @Router /v1/patio/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	ok, err := h.Service.Delete(r.Context(), id)
	respond.NoContent(w, r, h.Logger, ok, err)
}
