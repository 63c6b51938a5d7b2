package leitorrfid

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"mottufind/internal/domain"
	"mottufind/internal/pkg/logger"
	"mottufind/internal/pkg/respond"
)

// LeitorRfidService define o contrato que o Handler espera da camada de Serviço.
type LeitorRfidService interface {
	GetAll(ctx context.Context) ([]domain.LeitorRfidResponse, error)
	GetByID(ctx context.Context, id int64) (domain.LeitorRfidResponse, error)
	GetPaged(ctx context.Context, numeroPag, tamanhoPag int) (domain.PagedResult[domain.LeitorRfidResponse], error)
	Create(ctx context.Context, req domain.LeitorRfidRequest) (domain.LeitorRfidResponse, error)
	Update(ctx context.Context, id int64, req domain.LeitorRfidRequest) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type Handler struct {
	Service  LeitorRfidService
	Logger   logger.Logger
	BasePath string
}

func NewHandler(svc LeitorRfidService, log logger.Logger, basePath string) *Handler {
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

// @Summary Lista todos os leitores RFID
// @Tags leitorrfid
// @Produce json
// @Success 200 {array} domain.LeitorRfidResponse
// @Success 204 "Nenhum leitor cadastrado"
// @Security Bearer
// @Router /leitorrfid [get]
func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	itens, err := h.Service.GetAll(r.Context())
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	if len(itens) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	respond.JSON(w, h.Logger, http.StatusOK, itens)
}

// @Summary Obtém um leitor RFID por ID
// @Tags leitorrfid
// @Produce json
// @Param id path int true "ID do leitor"
// @Success 200 {object} domain.LeitorRfidResponse
// @Failure 404 "Leitor não encontrado"
// @Security Bearer
// @Router /leitorrfid/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	item, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, h.Logger, http.StatusOK, item)
}

// @Summary Lista leitores RFID paginados
// @Tags leitorrfid
// @Produce json
// @Param numeroPag query int false "Número da página (base 1)" default(1)
// @Param tamanhoPag query int false "Itens por página" default(10)
// @Success 200 {object} domain.PagedResult[domain.LeitorRfidResponse]
// @Failure 400 {object} respond.ErrorResponse
// @Security Bearer
// @Router /leitorrfid/pagina [get]
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

// @Summary Cadastra um leitor RFID
// @Tags leitorrfid
// @Accept json
// @Produce json
// @Param leitor body domain.LeitorRfidRequest true "Dados do leitor"
// @Success 201 {object} domain.LeitorRfidResponse
// @Failure 400 {object} respond.ErrorResponse
// @Failure 409 {object} respond.ErrorResponse "Identificador já cadastrado"
// @Security Bearer
// @Router /leitorrfid [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.LeitorRfidRequest
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

// @Summary Atualiza um leitor RFID
// @Tags leitorrfid
// @Accept json
// @Param id path int true "ID do leitor"
// @Param leitor body domain.LeitorRfidRequest true "Dados do leitor"
// @Success 204
// @Failure 404 "Leitor não encontrado"
// @Security Bearer
// @Router /leitorrfid/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	var req domain.LeitorRfidRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	ok, err := h.Service.Update(r.Context(), id, req)
	respond.NoContent(w, r, h.Logger, ok, err)
}

// @Summary Remove um leitor RFID
// @Tags leitorrfid
// @Param id path int true "ID do leitor"
// @Success 204
// @Failure 404 "Leitor não encontrado"
// @Failure 409 {object} respond.ErrorResponse "Leitor possui leituras registradas"
// @Security Bearer
// @Router /leitorrfid/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	ok, err := h.Service.Delete(r.Context(), id)
	respond.NoContent(w, r, h.Logger, ok, err)
}
