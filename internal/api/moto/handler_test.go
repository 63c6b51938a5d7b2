package moto_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mottufind/internal/api/moto"
	"mottufind/internal/domain"
	apperror "mottufind/internal/errors"
	"mottufind/internal/pkg/logger"
	"mottufind/internal/service/motoservice"
)

// memRepo é um MotoRepository em memória, usado para exercitar handler e serviço juntos.
type memRepo struct {
	mu     sync.Mutex
	nextID int64
	motos  map[int64]domain.Moto
}

func newMemRepo() *memRepo { return &memRepo{motos: map[int64]domain.Moto{}} }

func (r *memRepo) Create(_ context.Context, m domain.Moto) (domain.Moto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.motos {
		if existing.Placa == m.Placa {
			return domain.Moto{}, apperror.NewConflictError("placa")
		}
	}
	r.nextID++
	m.ID = r.nextID
	r.motos[m.ID] = m
	return m, nil
}

func (r *memRepo) FindByID(_ context.Context, id int64) (domain.Moto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.motos[id]
	if !ok {
		return domain.Moto{}, apperror.NewNotFoundError("moto")
	}
	return m, nil
}

func (r *memRepo) FindByPlaca(_ context.Context, placa string) (domain.Moto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.motos {
		if m.Placa == placa {
			return m, nil
		}
	}
	return domain.Moto{}, apperror.NewNotFoundError("moto")
}

func (r *memRepo) FindAll(_ context.Context) ([]domain.Moto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.Moto{}
	for id := int64(1); id <= r.nextID; id++ {
		if m, ok := r.motos[id]; ok {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memRepo) FindPage(ctx context.Context, offset, limit int) ([]domain.Moto, int, error) {
	all, _ := r.FindAll(ctx)
	if offset > len(all) {
		offset = len(all)
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], len(all), nil
}

func (r *memRepo) Update(_ context.Context, m domain.Moto) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.motos[m.ID]; !ok {
		return false, nil
	}
	r.motos[m.ID] = m
	return true, nil
}

func (r *memRepo) UpdateByPlaca(ctx context.Context, placa string, m domain.Moto) (bool, error) {
	existing, err := r.FindByPlaca(ctx, placa)
	if err != nil {
		return false, nil
	}
	m.ID = existing.ID
	return r.Update(ctx, m)
}

func (r *memRepo) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.motos[id]; !ok {
		return false, nil
	}
	delete(r.motos, id)
	return true, nil
}

func (r *memRepo) DeleteByPlaca(ctx context.Context, placa string) (bool, error) {
	existing, err := r.FindByPlaca(ctx, placa)
	if err != nil {
		return false, nil
	}
	return r.Delete(ctx, existing.ID)
}

func newServer() http.Handler {
	svc := motoservice.NewService(newMemRepo(), logger.Nop{})
	r := chi.NewRouter()
	r.Route("/api/v1/moto", moto.NewHandler(svc, logger.Nop{}, "/api/v1/moto").Routes)
	r.Route("/api/v1.0/moto", moto.NewHandler(svc, logger.Nop{}, "/api/v1.0/moto").Routes)
	return r
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Data  domain.MotoResponse `json:"data"`
	Links []struct {
		Href   string `json:"href"`
		Rel    string `json:"rel"`
		Method string `json:"method"`
	} `json:"links"`
}

const motoJSON = `{"placa":"ABC1234","modelo":"MottuSport","ano":2024,"status":"Disponivel","patioId":1}`

func TestCreate_LocationRoundTrip(t *testing.T) {
	h := newServer()

	rec := do(h, http.MethodPost, "/api/v1/moto", motoJSON)
	require.Equal(t, http.StatusCreated, rec.Code)
	location := rec.Header().Get("Location")
	assert.Equal(t, "/api/v1/moto?placa=ABC1234", location)

	rec = do(h, http.MethodGet, location, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ABC1234", body.Data.Placa)
	assert.Equal(t, domain.ModeloMottuSport, body.Data.Modelo)

	rels := map[string]string{}
	for _, l := range body.Links {
		rels[l.Rel] = l.Method
	}
	assert.Equal(t, "PUT", rels["update"])
	assert.Equal(t, "DELETE", rels["delete"])
	assert.Equal(t, "GET", rels["all"])
}

func TestGetAll_EmptyIs204(t *testing.T) {
	rec := do(newServer(), http.MethodGet, "/api/v1/moto", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestVersionAlias(t *testing.T) {
	h := newServer()
	require.Equal(t, http.StatusCreated, do(h, http.MethodPost, "/api/v1.0/moto", motoJSON).Code)

	rec := do(h, http.MethodGet, "/api/v1.0/moto/placa?valor=abc1234", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "/api/v1.0/moto?placa=ABC1234", body.Links[0].Href)
}

func TestDuplicatePlacaIsConflict(t *testing.T) {
	h := newServer()
	require.Equal(t, http.StatusCreated, do(h, http.MethodPost, "/api/v1/moto", motoJSON).Code)

	rec := do(h, http.MethodPost, "/api/v1/moto", motoJSON)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestInvalidPayloadListsFields(t *testing.T) {
	rec := do(newServer(), http.MethodPost, "/api/v1/moto", `{"placa":"X","modelo":"Honda","ano":2024,"status":"Disponivel","patioId":1}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"campo":"placa"`)
	assert.Contains(t, rec.Body.String(), `"campo":"modelo"`)
}

func TestUpdateDeleteByPlaca(t *testing.T) {
	h := newServer()
	require.Equal(t, http.StatusCreated, do(h, http.MethodPost, "/api/v1/moto", motoJSON).Code)

	rec := do(h, http.MethodPut, "/api/v1/moto/placa?placa=ABC1234",
		`{"placa":"ABC1234","modelo":"MottuE","ano":2025,"status":"Manutencao","patioId":1}`)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(h, http.MethodGet, "/api/v1/moto?placa=ABC1234", "")
	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, domain.StatusManutencao, body.Data.Status)

	assert.Equal(t, http.StatusNoContent, do(h, http.MethodDelete, "/api/v1/moto?placa=ABC1234", "").Code)
	assert.Equal(t, http.StatusNotFound, do(h, http.MethodGet, "/api/v1/moto?placa=ABC1234", "").Code)
	assert.Equal(t, http.StatusNotFound, do(h, http.MethodDelete, "/api/v1/moto/placa?placa=ABC1234", "").Code)
}

func TestGetPaged_EmptyStillHasEnvelope(t *testing.T) {
	rec := do(newServer(), http.MethodGet, "/api/v1/moto/pagina", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"rel":"self"`)
	assert.Contains(t, rec.Body.String(), `"itens":[]`)
}

func TestGetPaged_ItemsArePlainMotos(t *testing.T) {
	h := newServer()
	require.Equal(t, http.StatusCreated, do(h, http.MethodPost, "/api/v1/moto", motoJSON).Code)

	rec := do(h, http.MethodGet, "/api/v1/moto/pagina", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data struct {
			Itens []map[string]interface{} `json:"itens"`
			Total int                      `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Data.Total)
	require.Len(t, body.Data.Itens, 1)
	assert.Equal(t, "ABC1234", body.Data.Itens[0]["placa"])
	assert.NotContains(t, body.Data.Itens[0], "data")
}

func TestGetPaged_InvalidPage(t *testing.T) {
	rec := do(newServer(), http.MethodGet, "/api/v1/moto/pagina?numeroPag=0", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetByID(t *testing.T) {
	h := newServer()
	require.Equal(t, http.StatusCreated, do(h, http.MethodPost, "/api/v1/moto", motoJSON).Code)

	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/api/v1/moto/1", "").Code)
	assert.Equal(t, http.StatusNotFound, do(h, http.MethodGet, "/api/v1/moto/2", "").Code)
}
