package leiturarfidservice_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mottufind/internal/domain"
	apperror "mottufind/internal/errors"
	"mottufind/internal/pkg/logger"
	"mottufind/internal/service/leiturarfidservice"
)

type MockLeituraRfidRepository struct {
	mock.Mock
}

func (m *MockLeituraRfidRepository) Create(ctx context.Context, l domain.LeituraRfid) (domain.LeituraRfid, error) {
	args := m.Called(ctx, l)
	return args.Get(0).(domain.LeituraRfid), args.Error(1)
}

func (m *MockLeituraRfidRepository) FindByID(ctx context.Context, id int64) (domain.LeituraRfid, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.LeituraRfid), args.Error(1)
}

func (m *MockLeituraRfidRepository) FindAll(ctx context.Context) ([]domain.LeituraRfid, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.LeituraRfid), args.Error(1)
}

func (m *MockLeituraRfidRepository) FindPage(ctx context.Context, offset, limit int) ([]domain.LeituraRfid, int, error) {
	args := m.Called(ctx, offset, limit)
	return args.Get(0).([]domain.LeituraRfid), args.Int(1), args.Error(2)
}

func (m *MockLeituraRfidRepository) Update(ctx context.Context, l domain.LeituraRfid) (bool, error) {
	args := m.Called(ctx, l)
	return args.Bool(0), args.Error(1)
}

func (m *MockLeituraRfidRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

var fixedNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

func newService(repo *MockLeituraRfidRepository) *leiturarfidservice.Service {
	return leiturarfidservice.NewService(repo, logger.Nop{}).WithClock(func() time.Time { return fixedNow })
}

func TestCreate_DefaultsDataHora(t *testing.T) {
	repo := new(MockLeituraRfidRepository)
	svc := newService(repo)
	want := domain.LeituraRfid{LeitorID: 1, MotoID: 2, DataHora: fixedNow}
	saved := want
	saved.ID = 50
	repo.On("Create", mock.Anything, want).Return(saved, nil)

	resp, err := svc.Create(context.Background(), domain.LeituraRfidRequest{LeitorID: 1, MotoID: 2})

	require.NoError(t, err)
	assert.Equal(t, fixedNow, resp.DataHora)
	repo.AssertExpectations(t)
}

func TestCreate_KeepsInformedDataHora(t *testing.T) {
	repo := new(MockLeituraRfidRepository)
	svc := newService(repo)
	at := fixedNow.Add(-time.Hour)
	repo.On("Create", mock.Anything, domain.LeituraRfid{LeitorID: 1, MotoID: 2, DataHora: at}).
		Return(domain.LeituraRfid{ID: 1, LeitorID: 1, MotoID: 2, DataHora: at}, nil)

	resp, err := svc.Create(context.Background(), domain.LeituraRfidRequest{LeitorID: 1, MotoID: 2, DataHora: at})

	require.NoError(t, err)
	assert.Equal(t, at, resp.DataHora)
}

func TestCreate_MissingMoto(t *testing.T) {
	svc := newService(new(MockLeituraRfidRepository))

	_, err := svc.Create(context.Background(), domain.LeituraRfidRequest{LeitorID: 1})

	var verr *apperror.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "motoId", verr.Fields[0].Campo)
}

func TestIngestor_HandleMessage(t *testing.T) {
	repo := new(MockLeituraRfidRepository)
	ing := leiturarfidservice.NewIngestor(newService(repo), logger.Nop{}, time.Second)
	repo.On("Create", mock.Anything, domain.LeituraRfid{LeitorID: 3, MotoID: 9, DataHora: fixedNow}).
		Return(domain.LeituraRfid{ID: 77, LeitorID: 3, MotoID: 9, DataHora: fixedNow}, nil)

	err := ing.HandleMessage("mottufind/rfid/3/leituras", []byte(`{"leitorId":3,"motoId":9}`))

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestIngestor_RejectsMalformedPayload(t *testing.T) {
	repo := new(MockLeituraRfidRepository)
	ing := leiturarfidservice.NewIngestor(newService(repo), logger.Nop{}, time.Second)

	assert.Error(t, ing.HandleMessage("mottufind/rfid/3/leituras", []byte(`{leitorId`)))
	assert.Error(t, ing.HandleMessage("mottufind/rfid/3/leituras", []byte(`{"leitorId":3}`)))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
