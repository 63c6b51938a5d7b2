package usuario_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mottufind/internal/api/usuario"
	"mottufind/internal/domain"
	apperror "mottufind/internal/errors"
	"mottufind/internal/pkg/logger"
)

type MockUsuarioService struct {
	mock.Mock
}

func (m *MockUsuarioService) GetAll(ctx context.Context) ([]domain.UsuarioResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.UsuarioResponse), args.Error(1)
}

func (m *MockUsuarioService) GetByID(ctx context.Context, id int64) (domain.UsuarioResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.UsuarioResponse), args.Error(1)
}

func (m *MockUsuarioService) GetPaged(ctx context.Context, numeroPag, tamanhoPag int) (domain.PagedResult[domain.UsuarioResponse], error) {
	args := m.Called(ctx, numeroPag, tamanhoPag)
	return args.Get(0).(domain.PagedResult[domain.UsuarioResponse]), args.Error(1)
}

func (m *MockUsuarioService) Create(ctx context.Context, req domain.UsuarioRequest) (domain.UsuarioResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.UsuarioResponse), args.Error(1)
}

func (m *MockUsuarioService) Update(ctx context.Context, id int64, req domain.UsuarioRequest) (bool, error) {
	args := m.Called(ctx, id, req)
	return args.Bool(0), args.Error(1)
}

func (m *MockUsuarioService) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func newServer(svc *MockUsuarioService) http.Handler {
	r := chi.NewRouter()
	r.Route("/api/usuario", usuario.NewHandler(svc, logger.Nop{}, "/api/usuario").Routes)
	return r
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

var ana = domain.UsuarioResponse{ID: 7, NomeUsuario: "ana.souza", Email: "ana@mottu.com", Setor: domain.SetorOperacional}

func TestCreate_ResponseHasNoSenha(t *testing.T) {
	svc := new(MockUsuarioService)
	svc.On("Create", mock.Anything, mock.AnythingOfType("domain.UsuarioRequest")).Return(ana, nil)

	rec := do(newServer(svc), http.MethodPost, "/api/usuario",
		`{"nomeUsuario":"ana.souza","email":"ana@mottu.com","senha":"s3nh@forte","setor":"Operacional"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/api/usuario/7", rec.Header().Get("Location"))
	assert.NotContains(t, rec.Body.String(), "senha")
	assert.NotContains(t, rec.Body.String(), "s3nh@forte")
	svc.AssertExpectations(t)
}

func TestCreate_DuplicateEmail(t *testing.T) {
	svc := new(MockUsuarioService)
	svc.On("Create", mock.Anything, mock.Anything).Return(domain.UsuarioResponse{}, apperror.NewConflictError("e-mail já cadastrado"))

	rec := do(newServer(svc), http.MethodPost, "/api/usuario",
		`{"nomeUsuario":"ana.souza","email":"ana@mottu.com","senha":"s3nh@forte","setor":"Operacional"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetAll(t *testing.T) {
	svc := new(MockUsuarioService)
	svc.On("GetAll", mock.Anything).Return([]domain.UsuarioResponse{}, nil).Once()
	svc.On("GetAll", mock.Anything).Return([]domain.UsuarioResponse{ana}, nil).Once()
	h := newServer(svc)

	assert.Equal(t, http.StatusNoContent, do(h, http.MethodGet, "/api/usuario", "").Code)

	rec := do(h, http.MethodGet, "/api/usuario", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var body []domain.UsuarioResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []domain.UsuarioResponse{ana}, body)
}

func TestGetPaged_PlainResult(t *testing.T) {
	svc := new(MockUsuarioService)
	svc.On("GetPaged", mock.Anything, 2, 5).Return(domain.PagedResult[domain.UsuarioResponse]{
		Itens: []domain.UsuarioResponse{ana}, Total: 6, NumeroPag: 2, TamanhoPag: 5,
	}, nil)

	rec := do(newServer(svc), http.MethodGet, "/api/usuario/pagina?numeroPag=2&tamanhoPag=5", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body domain.PagedResult[domain.UsuarioResponse]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 6, body.Total)
	assert.Len(t, body.Itens, 1)
	assert.NotContains(t, rec.Body.String(), "links")
}

func TestUpdateDelete_NotFound(t *testing.T) {
	svc := new(MockUsuarioService)
	svc.On("Update", mock.Anything, int64(99), mock.Anything).Return(false, nil)
	svc.On("Delete", mock.Anything, int64(99)).Return(false, nil)
	svc.On("Delete", mock.Anything, int64(7)).Return(true, nil)
	h := newServer(svc)

	rec := do(h, http.MethodPut, "/api/usuario/99",
		`{"nomeUsuario":"ana.souza","email":"ana@mottu.com","senha":"s3nh@forte","setor":"Operacional"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())

	assert.Equal(t, http.StatusNotFound, do(h, http.MethodDelete, "/api/usuario/99", "").Code)
	assert.Equal(t, http.StatusNoContent, do(h, http.MethodDelete, "/api/usuario/7", "").Code)
}

func TestGetByID_InvalidID(t *testing.T) {
	svc := new(MockUsuarioService)

	rec := do(newServer(svc), http.MethodGet, "/api/usuario/abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}
