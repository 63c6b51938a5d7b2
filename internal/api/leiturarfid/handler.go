package leiturarfid

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"mottufind/internal/domain"
	"mottufind/internal/pkg/logger"
	"mottufind/internal/pkg/respond"
)

// LeituraRfidService define o contrato que o Handler espera da camada de Serviço.
type LeituraRfidService interface {
	GetAll(ctx context.Context) ([]domain.LeituraRfidResponse, error)
	GetByID(ctx context.Context, id int64) (domain.LeituraRfidResponse, error)
	GetPaged(ctx context.Context, numeroPag, tamanhoPag int) (domain.PagedResult[domain.LeituraRfidResponse], error)
	Create(ctx context.Context, req domain.LeituraRfidRequest) (domain.LeituraRfidResponse, error)
	Update(ctx context.Context, id int64, req domain.LeituraRfidRequest) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// Handler expõe as leituras RFID. Leituras também chegam pela ingestão MQTT.
type Handler struct {
	Service  LeituraRfidService
	Logger   logger.Logger
	BasePath string
}

func NewHandler(svc LeituraRfidService, log logger.Logger, basePath string) *Handler {
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

// @Summary Lista todas as leituras RFID
// @Tags leiturarfid
// @Produce json
// @Success 200 {array} domain.LeituraRfidResponse
// @Success 204 "Nenhuma leitura registrada"
// @Security Bearer
// @Router /leiturarfid [get]
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

// @Summary Obtém uma leitura RFID por ID
// @Tags leiturarfid
// @Produce json
// @Param id path int true "ID da leitura"
// @Success 200 {object} domain.LeituraRfidResponse
// @Failure 404 "Leitura não encontrada"
// @Security Bearer
// @Router /leiturarfid/{id} [get]
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

// @Summary Lista leituras RFID paginadas
// @Tags leiturarfid
// @Produce json
// @Param numeroPag query int false "Número da página (base 1)" default(1)
// @Param tamanhoPag query int false "Itens por página" default(10)
// @Success 200 {object} domain.PagedResult[domain.LeituraRfidResponse]
// @Failure 400 {object} respond.ErrorResponse
// @Security Bearer
// @Router /leiturarfid/pagina [get]
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

// @Summary Registra uma leitura RFID
// @Tags leiturarfid
// @Accept json
// @Produce json
// @Param leitura body domain.LeituraRfidRequest true "Dados da leitura"
// @Success 201 {object} domain.LeituraRfidResponse
// @Failure 400 {object} respond.ErrorResponse
// @Security Bearer
// @Router /leiturarfid [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.LeituraRfidRequest
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

// @Summary Atualiza uma leitura RFID
// @Tags leiturarfid
// @Accept json
// @Param id path int true "ID da leitura"
// @Param leitura body domain.LeituraRfidRequest true "Dados da leitura"
// @Success 204
// @Failure 404 "Leitura não encontrada"
// @Security Bearer
// @Router /leiturarfid/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	var req domain.LeituraRfidRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	ok, err := h.Service.Update(r.Context(), id, req)
	respond.NoContent(w, r, h.Logger, ok, err)
}

// @Summary Remove uma leitura RFID
// @Tags leiturarfid
// @Param id path int true "ID da leitura"
// @Success 204
// @Failure 404 "Leitura não encontrada"
// @Security Bearer
// @Router /leiturarfid/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	ok, err := h.Service.Delete(r.Context(), id)
	respond.NoContent(w, r, h.Logger, ok, err)
}
