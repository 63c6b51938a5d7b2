package filialservice_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mottufind/internal/domain"
	apperror "mottufind/internal/errors"
	"mottufind/internal/pkg/logger"
	"mottufind/internal/service/filialservice"
)

type MockFilialRepository struct {
	mock.Mock
}

func (m *MockFilialRepository) Create(ctx context.Context, f domain.Filial) (domain.Filial, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(domain.Filial), args.Error(1)
}

func (m *MockFilialRepository) FindByID(ctx context.Context, id int64) (domain.Filial, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Filial), args.Error(1)
}

func (m *MockFilialRepository) FindAll(ctx context.Context) ([]domain.Filial, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Filial), args.Error(1)
}

func (m *MockFilialRepository) FindPage(ctx context.Context, offset, limit int) ([]domain.Filial, int, error) {
	args := m.Called(ctx, offset, limit)
	return args.Get(0).([]domain.Filial), args.Int(1), args.Error(2)
}

func (m *MockFilialRepository) Update(ctx context.Context, f domain.Filial) (bool, error) {
	args := m.Called(ctx, f)
	return args.Bool(0), args.Error(1)
}

func (m *MockFilialRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestCreate_UppercasesEstado(t *testing.T) {
	repo := new(MockFilialRepository)
	svc := filialservice.NewService(repo, logger.Nop{})
	want := domain.Filial{Nome: "Mottu Centro", Endereco: "Rua X, 1", Cidade: "São Paulo", Estado: "SP"}
	saved := want
	saved.ID = 1
	repo.On("Create", mock.Anything, want).Return(saved, nil)

	resp, err := svc.Create(context.Background(), domain.FilialRequest{Nome: "Mottu Centro", Endereco: "Rua X, 1", Cidade: "São Paulo", Estado: " sp"})

	require.NoError(t, err)
	assert.Equal(t, "SP", resp.Estado)
	repo.AssertExpectations(t)
}

func TestCreate_MissingNome(t *testing.T) {
	svc := filialservice.NewService(new(MockFilialRepository), logger.Nop{})

	_, err := svc.Create(context.Background(), domain.FilialRequest{Endereco: "Rua X", Cidade: "SP", Estado: "SP"})

	var verr *apperror.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "nome", verr.Fields[0].Campo)
}

func TestGetPaged_LastPage(t *testing.T) {
	repo := new(MockFilialRepository)
	svc := filialservice.NewService(repo, logger.Nop{})
	repo.On("FindPage", mock.Anything, 10, 10).Return([]domain.Filial{}, 10, nil)

	page, err := svc.GetPaged(context.Background(), 2, 10)

	require.NoError(t, err)
	assert.Empty(t, page.Itens)
	assert.Equal(t, 10, page.Total)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := new(MockFilialRepository)
	svc := filialservice.NewService(repo, logger.Nop{})
	repo.On("FindByID", mock.Anything, int64(3)).Return(domain.Filial{}, apperror.NewNotFoundError("filial 3"))

	_, err := svc.GetByID(context.Background(), 3)

	assert.True(t, apperror.IsNotFound(err))
}
