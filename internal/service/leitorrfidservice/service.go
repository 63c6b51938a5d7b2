package leitorrfidservice

import (
	"context"
	"strings"

	"mottufind/internal/domain"
	"mottufind/internal/pkg/logger"
	"mottufind/internal/pkg/validation"
)

type LeitorRfidRepository interface {
	Create(ctx context.Context, l domain.LeitorRfid) (domain.LeitorRfid, error)
	FindByID(ctx context.Context, id int64) (domain.LeitorRfid, error)
	FindAll(ctx context.Context) ([]domain.LeitorRfid, error)
	FindPage(ctx context.Context, offset, limit int) ([]domain.LeitorRfid, int, error)
	Update(ctx context.Context, l domain.LeitorRfid) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// Service gerencia o cadastro dos leitores RFID instalados nos pátios.
type Service struct {
	repo   LeitorRfidRepository
	logger logger.Logger
}

func NewService(repo LeitorRfidRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) GetAll(ctx context.Context) ([]domain.LeitorRfidResponse, error) {
	leitores, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return domain.MapSlice(leitores, domain.NewLeitorRfidResponse), nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.LeitorRfidResponse, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.LeitorRfidResponse{}, err
	}
	return domain.NewLeitorRfidResponse(l), nil
}

func (s *Service) GetPaged(ctx context.Context, numeroPag, tamanhoPag int) (domain.PagedResult[domain.LeitorRfidResponse], error) {
	page, err := domain.NewPageRequest(numeroPag, tamanhoPag)
	if err != nil {
		return domain.PagedResult[domain.LeitorRfidResponse]{}, err
	}

	leitores, total, err := s.repo.FindPage(ctx, page.Offset(), page.TamanhoPag)
	if err != nil {
		return domain.PagedResult[domain.LeitorRfidResponse]{}, err
	}
	return domain.MapPage(page, leitores, total, domain.NewLeitorRfidResponse), nil
}

func (s *Service) Create(ctx context.Context, req domain.LeitorRfidRequest) (domain.LeitorRfidResponse, error) {
	req.Identificador = strings.TrimSpace(req.Identificador)
	if err := validation.Struct(req); err != nil {
		return domain.LeitorRfidResponse{}, err
	}

	created, err := s.repo.Create(ctx, req.ToEntity())
	if err != nil {
		return domain.LeitorRfidResponse{}, err
	}

	s.logger.Info("Leitor RFID cadastrado.", map[string]interface{}{"id": created.ID, "identificador": created.Identificador})
	return domain.NewLeitorRfidResponse(created), nil
}

func (s *Service) Update(ctx context.Context, id int64, req domain.LeitorRfidRequest) (bool, error) {
	req.Identificador = strings.TrimSpace(req.Identificador)
	if err := validation.Struct(req); err != nil {
		return false, err
	}

	l := req.ToEntity()
	l.ID = id
	return s.repo.Update(ctx, l)
}

func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}
