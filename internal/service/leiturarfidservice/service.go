package leiturarfidservice

import (
	"context"
	"time"

	"mottufind/internal/domain"
	"mottufind/internal/pkg/logger"
	"mottufind/internal/pkg/validation"
)

type LeituraRfidRepository interface {
	Create(ctx context.Context, l domain.LeituraRfid) (domain.LeituraRfid, error)
	FindByID(ctx context.Context, id int64) (domain.LeituraRfid, error)
	FindAll(ctx context.Context) ([]domain.LeituraRfid, error)
	FindPage(ctx context.Context, offset, limit int) ([]domain.LeituraRfid, int, error)
	Update(ctx context.Context, l domain.LeituraRfid) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// Service registra e consulta eventos de leitura RFID.
type Service struct {
	repo   LeituraRfidRepository
	logger logger.Logger
	now    func() time.Time
}

func NewService(repo LeituraRfidRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger, now: time.Now}
}

// WithClock troca a fonte de tempo usada quando dataHora não é informada.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) GetAll(ctx context.Context) ([]domain.LeituraRfidResponse, error) {
	leituras, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return domain.MapSlice(leituras, domain.NewLeituraRfidResponse), nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.LeituraRfidResponse, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.LeituraRfidResponse{}, err
	}
	return domain.NewLeituraRfidResponse(l), nil
}

func (s *Service) GetPaged(ctx context.Context, numeroPag, tamanhoPag int) (domain.PagedResult[domain.LeituraRfidResponse], error) {
	page, err := domain.NewPageRequest(numeroPag, tamanhoPag)
	if err != nil {
		return domain.PagedResult[domain.LeituraRfidResponse]{}, err
	}

	leituras, total, err := s.repo.FindPage(ctx, page.Offset(), page.TamanhoPag)
	if err != nil {
		return domain.PagedResult[domain.LeituraRfidResponse]{}, err
	}
	return domain.MapPage(page, leituras, total, domain.NewLeituraRfidResponse), nil
}

// Create registra a leitura. dataHora vazia assume o instante atual (UTC).
func (s *Service) Create(ctx context.Context, req domain.LeituraRfidRequest) (domain.LeituraRfidResponse, error) {
	if err := validation.Struct(req); err != nil {
		return domain.LeituraRfidResponse{}, err
	}

	l := s.toEntity(req)
	created, err := s.repo.Create(ctx, l)
	if err != nil {
		return domain.LeituraRfidResponse{}, err
	}

	s.logger.Debug("Leitura RFID registrada.", map[string]interface{}{"id": created.ID, "leitorId": created.LeitorID, "motoId": created.MotoID})
	return domain.NewLeituraRfidResponse(created), nil
}

func (s *Service) Update(ctx context.Context, id int64, req domain.LeituraRfidRequest) (bool, error) {
	if err := validation.Struct(req); err != nil {
		return false, err
	}

	l := s.toEntity(req)
	l.ID = id
	return s.repo.Update(ctx, l)
}

func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}

func (s *Service) toEntity(req domain.LeituraRfidRequest) domain.LeituraRfid {
	l := req.ToEntity()
	if l.DataHora.IsZero() {
		l.DataHora = s.now().UTC()
	}
	return l
}
