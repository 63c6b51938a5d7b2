package patioservice_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mottufind/internal/domain"
	apperror "mottufind/internal/errors"
	"mottufind/internal/pkg/logger"
	"mottufind/internal/service/patioservice"
)

type MockPatioRepository struct {
	mock.Mock
}

func (m *MockPatioRepository) Create(ctx context.Context, p domain.Patio) (domain.Patio, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.Patio), args.Error(1)
}

func (m *MockPatioRepository) FindByID(ctx context.Context, id int64) (domain.Patio, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Patio), args.Error(1)
}

func (m *MockPatioRepository) FindAll(ctx context.Context) ([]domain.Patio, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Patio), args.Error(1)
}

func (m *MockPatioRepository) FindPage(ctx context.Context, offset, limit int) ([]domain.Patio, int, error) {
	args := m.Called(ctx, offset, limit)
	return args.Get(0).([]domain.Patio), args.Int(1), args.Error(2)
}

func (m *MockPatioRepository) Update(ctx context.Context, p domain.Patio) (bool, error) {
	args := m.Called(ctx, p)
	return args.Bool(0), args.Error(1)
}

func (m *MockPatioRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

var validReq = domain.PatioRequest{Nome: "Pátio Butantã", Localizacao: "Av. Vital Brasil", Capacidade: 120, FilialID: 1}

func TestCreate_Success(t *testing.T) {
	repo := new(MockPatioRepository)
	svc := patioservice.NewService(repo, logger.Nop{})
	saved := validReq.ToEntity()
	saved.ID = 7
	repo.On("Create", mock.Anything, validReq.ToEntity()).Return(saved, nil)

	resp, err := svc.Create(context.Background(), validReq)

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "Pátio Butantã", resp.Nome)
	repo.AssertExpectations(t)
}

func TestCreate_InvalidCapacidade(t *testing.T) {
	repo := new(MockPatioRepository)
	svc := patioservice.NewService(repo, logger.Nop{})
	req := validReq
	req.Capacidade = 0

	_, err := svc.Create(context.Background(), req)

	var verr *apperror.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "capacidade", verr.Fields[0].Campo)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetPaged_ComputesOffset(t *testing.T) {
	repo := new(MockPatioRepository)
	svc := patioservice.NewService(repo, logger.Nop{})
	repo.On("FindPage", mock.Anything, 20, 10).Return([]domain.Patio{{ID: 21}, {ID: 22}}, 22, nil)

	page, err := svc.GetPaged(context.Background(), 3, 10)

	require.NoError(t, err)
	assert.Equal(t, 22, page.Total)
	assert.Equal(t, 3, page.NumeroPag)
	assert.Len(t, page.Itens, 2)
	assert.False(t, page.HasNext())
	assert.True(t, page.HasPrev())
}

func TestGetPaged_RejectsZero(t *testing.T) {
	svc := patioservice.NewService(new(MockPatioRepository), logger.Nop{})

	_, err := svc.GetPaged(context.Background(), 0, 10)

	assert.IsType(t, &apperror.ValidationError{}, err)
}

func TestGetAll_Empty(t *testing.T) {
	repo := new(MockPatioRepository)
	svc := patioservice.NewService(repo, logger.Nop{})
	repo.On("FindAll", mock.Anything).Return([]domain.Patio{}, nil)

	items, err := svc.GetAll(context.Background())

	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := new(MockPatioRepository)
	svc := patioservice.NewService(repo, logger.Nop{})
	expected := validReq.ToEntity()
	expected.ID = 99
	repo.On("Update", mock.Anything, expected).Return(false, nil)

	ok, err := svc.Update(context.Background(), 99, validReq)

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeleteThenGet_NotFound(t *testing.T) {
	repo := new(MockPatioRepository)
	svc := patioservice.NewService(repo, logger.Nop{})
	repo.On("Delete", mock.Anything, int64(5)).Return(true, nil)
	repo.On("FindByID", mock.Anything, int64(5)).Return(domain.Patio{}, apperror.NewNotFoundError("pátio 5"))

	ok, err := svc.Delete(context.Background(), 5)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = svc.GetByID(context.Background(), 5)
	assert.True(t, apperror.IsNotFound(err))
}
