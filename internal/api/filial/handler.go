package filial

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

// FilialService define o contrato que o Handler espera da camada de Serviço.
type FilialService interface {
	GetAll(ctx context.Context) ([]domain.FilialResponse, error)
	GetByID(ctx context.Context, id int64) (domain.FilialResponse, error)
	GetPaged(ctx context.Context, numeroPag, tamanhoPag int) (domain.PagedResult[domain.FilialResponse], error)
	Create(ctx context.Context, req domain.FilialRequest) (domain.FilialResponse, error)
	Update(ctx context.Context, id int64, req domain.FilialRequest) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// Handler agrupa os endpoints de filiais montados em BasePath (ex.: /api/v2/filial).
type Handler struct {
	Service  FilialService
	Logger   logger.Logger
	BasePath string
}

func NewHandler(svc FilialService, log logger.Logger, basePath string) *Handler {
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

func (h *Handler) wrap(f domain.FilialResponse) hateoas.Resource[domain.FilialResponse] {
	return hateoas.Wrap(f, hateoas.ItemLinks(h.itemPath(f.ID), h.BasePath)...)
}

// GetAll lista as filiais.
// @Summary Lista todas as filiais
// @Tags filial
// @Produce json
// @Success 200 {array} domain.FilialResponse
// @Success 204 "Nenhuma filial cadastrada"
// @Failure 500 {object} respond.ErrorResponse
// @Router /v2/filial [get]
func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	filiais, err := h.Service.GetAll(r.Context())
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	if len(filiais) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	respond.JSON(w, h.Logger, http.StatusOK, filiais)
}

// GetByID busca uma filial com seus links.
// @Summary Obtém uma filial por ID
// @Tags filial
// @Produce json
// @Param id path int true "ID da filial"
// @Success 200 {object} hateoas.Resource[domain.FilialResponse]
// @Failure 404 "Filial não encontrada"
// @Router /v2/filial/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	f, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, h.Logger, http.StatusOK, h.wrap(f))
}

// GetPaged devolve uma página de filiais. Página vazia responde 204.
// @Summary Lista filiais paginadas
// @Tags filial
// @Produce json
// @Param numeroPag query int false "Número da página (base 1)" default(1)
// @Param tamanhoPag query int false "Itens por página" default(10)
// @Success 200 {object} hateoas.Resource[domain.PagedResult[domain.FilialResponse]]
// @Success 204 "Página vazia"
// @Failure 400 {object} respond.ErrorResponse
// @Router /v2/filial/pagina [get]
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

// Create cadastra uma filial.
// @Summary Cria uma filial
// @Tags filial
// @Accept json
// @Produce json
// @Param filial body domain.FilialRequest true "Dados da filial"
// @Success 201 {object} domain.FilialResponse
// @Header 201 {string} Location "URL da filial criada"
// @Failure 400 {object} respond.ErrorResponse
// @Router /v2/filial [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.FilialRequest
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

// Update substitui os dados de uma filial.
// @Summary Atualiza uma filial
// @Tags filial
// @Accept json
// @Param id path int true "ID da filial"
// @Param filial body domain.FilialRequest true "Dados da filial"
// @Success 204
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 "Filial não encontrada"
// @Router /v2/filial/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	var req domain.FilialRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	ok, err := h.Service.Update(r.Context(), id, req)
	respond.NoContent(w, r, h.Logger, ok, err)
}

// Delete remove uma filial.
// @Summary Remove uma filial
// @Tags filial
// @Param id path int true "ID da filial"
// @Success 204
// @Failure 404 "Filial não encontrada"
// @Failure 409 {object} respond.ErrorResponse "Filial possui pátios"
// @Router /v2/filial/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	ok, err := h.Service.Delete(r.Context(), id)
	respond.NoContent(w, r, h.Logger, ok, err)
}
