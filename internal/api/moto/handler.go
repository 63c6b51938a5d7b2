package moto

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"mottufind/internal/domain"
	"mottufind/internal/pkg/hateoas"
	"mottufind/internal/pkg/logger"
	"mottufind/internal/pkg/respond"
)

// MotoService define o contrato que o Handler espera da camada de Serviço.
type MotoService interface {
	GetAll(ctx context.Context) ([]domain.MotoResponse, error)
	GetByID(ctx context.Context, id int64) (domain.MotoResponse, error)
	GetByPlaca(ctx context.Context, placa string) (domain.MotoResponse, error)
	GetPaged(ctx context.Context, numeroPag, tamanhoPag int) (domain.PagedResult[domain.MotoResponse], error)
	Create(ctx context.Context, req domain.MotoRequest) (domain.MotoResponse, error)
	Update(ctx context.Context, id int64, req domain.MotoRequest) (bool, error)
	UpdateByPlaca(ctx context.Context, placa string, req domain.MotoRequest) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	DeleteByPlaca(ctx context.Context, placa string) (bool, error)
}

// Handler agrupa os endpoints de motos montados em BasePath (ex.: /api/v1/moto).
// A moto é endereçada pela placa: BasePath?placa=ABC1234.
type Handler struct {
	Service  MotoService
	Logger   logger.Logger
	BasePath string
}

func NewHandler(svc MotoService, log logger.Logger, basePath string) *Handler {
	return &Handler{Service: svc, Logger: log, BasePath: basePath}
}

// Routes registra as rotas relativas a BasePath.
// /placa aceita ?placa= ou ?valor=, mantido para clientes antigos.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.Get)
	r.Post("/", h.Create)
	r.Put("/", h.UpdateByPlaca)
	r.Delete("/", h.DeleteByPlaca)
	r.Get("/pagina", h.GetPaged)
	r.Get("/placa", h.GetByPlaca)
	r.Put("/placa", h.UpdateByPlaca)
	r.Delete("/placa", h.DeleteByPlaca)
	r.Get("/{id:[0-9]+}", h.GetByID)
	r.Put("/{id:[0-9]+}", h.Update)
	r.Delete("/{id:[0-9]+}", h.Delete)
}

func (h *Handler) placaPath(placa string) string {
	return h.BasePath + "?placa=" + url.QueryEscape(placa)
}

func (h *Handler) wrap(m domain.MotoResponse) hateoas.Resource[domain.MotoResponse] {
	return hateoas.Wrap(m, hateoas.ItemLinks(h.placaPath(m.Placa), h.BasePath)...)
}

func placaParam(r *http.Request) string {
	q := r.URL.Query()
	if p := q.Get("placa"); p != "" {
		return p
	}
	return q.Get("valor")
}

// Get lista as motos, ou devolve uma só quando ?placa= é informado.
// @Summary Lista motos ou busca por placa
// @Tags moto
// @Produce json
// @Param placa query string false "Placa da moto"
// @Success 200 {object} hateoas.Resource[domain.MotoResponse] "Com ?placa="
// @Success 200 {array} domain.MotoResponse "Sem ?placa="
// @Success 204 "Nenhuma moto cadastrada"
// @Failure 401 {object} respond.ErrorResponse
// @Failure 404 "Moto não encontrada"
// @Security Bearer
// @Router /v1/moto [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Has("placa") {
		h.GetByPlaca(w, r)
		return
	}

	motos, err := h.Service.GetAll(r.Context())
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	if len(motos) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	respond.JSON(w, h.Logger, http.StatusOK, motos)
}

// GetByPlaca busca a moto pela placa.
// @Summary Obtém uma moto pela placa
// @Tags moto
// @Produce json
// @Param placa query string false "Placa da moto"
// @Param valor query string false "Alias de placa"
// @Success 200 {object} hateoas.Resource[domain.MotoResponse]
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 "Moto não encontrada"
// @Security Bearer
// @Router /v1/moto/placa [get]
func (h *Handler) GetByPlaca(w http.ResponseWriter, r *http.Request) {
	m, err := h.Service.GetByPlaca(r.Context(), placaParam(r))
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, h.Logger, http.StatusOK, h.wrap(m))
}

// GetByID busca a moto pelo id interno.
// @Summary Obtém uma moto por ID
// @Tags moto
// @Produce json
// @Param id path int true "ID da moto"
// @Success 200 {object} hateoas.Resource[domain.MotoResponse]
// @Failure 404 "Moto não encontrada"
// @Security Bearer
// @Router /v1/moto/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	m, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, h.Logger, http.StatusOK, h.wrap(m))
}

// GetPaged devolve uma página de motos, sempre com o envelope de links.
// @Summary Lista motos paginadas
// @Tags moto
// @Produce json
// @Param numeroPag query int false "Número da página (base 1)" default(1)
// @Param tamanhoPag query int false "Itens por página" default(10)
// @Success 200 {object} hateoas.Resource[domain.PagedResult[domain.MotoResponse]]
// @Failure 400 {object} respond.ErrorResponse
// @Security Bearer
// @Router /v1/moto/pagina [get]
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

	if page.Itens == nil {
		page.Itens = []domain.MotoResponse{}
	}
	links := hateoas.PageLinks(h.BasePath+"/pagina", page.NumeroPag, page.TamanhoPag, page.Total)
	respond.JSON(w, h.Logger, http.StatusOK, hateoas.Wrap(page, links...))
}

// Create cadastra uma moto. Location aponta para BasePath?placa=<placa>.
// @Summary Cria uma moto
// @Tags moto
// @Accept json
// @Produce json
// @Param moto body domain.MotoRequest true "Dados da moto"
// @Success 201 {object} domain.MotoResponse
// @Header 201 {string} Location "URL da moto criada"
// @Failure 400 {object} respond.ErrorResponse
// @Failure 409 {object} respond.ErrorResponse "Placa já cadastrada"
// @Security Bearer
// @Router /v1/moto [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.MotoRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	created, err := h.Service.Create(r.Context(), req)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.Created(w, h.Logger, h.placaPath(created.Placa), created)
}

// UpdateByPlaca substitui os dados da moto identificada pela placa.
// @Summary Atualiza uma moto pela placa
// @Tags moto
// @Accept json
// @Param placa query string true "Placa atual"
// @Param moto body domain.MotoRequest true "Dados da moto"
// @Success 204
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 "Moto não encontrada"
// @Security Bearer
// @Router /v1/moto/placa [put]
func (h *Handler) UpdateByPlaca(w http.ResponseWriter, r *http.Request) {
	var req domain.MotoRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	ok, err := h.Service.UpdateByPlaca(r.Context(), placaParam(r), req)
	respond.NoContent(w, r, h.Logger, ok, err)
}

// Update substitui os dados da moto pelo id.
// @Summary Atualiza uma moto por ID
// @Tags moto
// @Accept json
// @Param id path int true "ID da moto"
// @Param moto body domain.MotoRequest true "Dados da moto"
// @Success 204
// @Failure 404 "Moto não encontrada"
// @Security Bearer
// @Router /v1/moto/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	var req domain.MotoRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	ok, err := h.Service.Update(r.Context(), id, req)
	respond.NoContent(w, r, h.Logger, ok, err)
}

// DeleteByPlaca remove a moto identificada pela placa.
// @Summary Remove uma moto pela placa
// @Tags moto
// @Param placa query string true "Placa da moto"
// @Success 204
// @Failure 404 "Moto não encontrada"
// @Security Bearer
// @Router /v1/moto/placa [delete]
func (h *Handler) DeleteByPlaca(w http.ResponseWriter, r *http.Request) {
	ok, err := h.Service.DeleteByPlaca(r.Context(), placaParam(r))
	respond.NoContent(w, r, h.Logger, ok, err)
}

// Delete remove a moto pelo id.
// @Summary Remove uma moto por ID
// @Tags moto
// @Param id path int true "ID da moto"
// @Success 204
// @Failure 404 "Moto não encontrada"
// @Security Bearer
// @Router /v1/moto/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	ok, err := h.Service.Delete(r.Context(), id)
	respond.NoContent(w, r, h.Logger, ok, err)
}
