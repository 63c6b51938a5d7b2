package filialservice

import (
	"context"
	"strings"

	"mottufind/internal/domain"
	"mottufind/internal/pkg/logger"
	"mottufind/internal/pkg/validation"
)

// FilialRepository define o contrato que o serviço espera da camada de persistência.
type FilialRepository interface {
	Create(ctx context.Context, f domain.Filial) (domain.Filial, error)
	FindByID(ctx context.Context, id int64) (domain.Filial, error)
	FindAll(ctx context.Context) ([]domain.Filial, error)
	FindPage(ctx context.Context, offset, limit int) ([]domain.Filial, int, error)
	Update(ctx context.Context, f domain.Filial) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	repo   FilialRepository
	logger logger.Logger
}

func NewService(repo FilialRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) GetAll(ctx context.Context) ([]domain.FilialResponse, error) {
	filiais, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return domain.MapSlice(filiais, domain.NewFilialResponse), nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.FilialResponse, error) {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.FilialResponse{}, err
	}
	return domain.NewFilialResponse(f), nil
}

func (s *Service) GetPaged(ctx context.Context, numeroPag, tamanhoPag int) (domain.PagedResult[domain.FilialResponse], error) {
	page, err := domain.NewPageRequest(numeroPag, tamanhoPag)
	if err != nil {
		return domain.PagedResult[domain.FilialResponse]{}, err
	}

	filiais, total, err := s.repo.FindPage(ctx, page.Offset(), page.TamanhoPag)
	if err != nil {
		return domain.PagedResult[domain.FilialResponse]{}, err
	}
	return domain.MapPage(page, filiais, total, domain.NewFilialResponse), nil
}

// Create grava a filial com a UF em maiúsculas.
func (s *Service) Create(ctx context.Context, req domain.FilialRequest) (domain.FilialResponse, error) {
	req.Estado = strings.ToUpper(strings.TrimSpace(req.Estado))
	if err := validation.Struct(req); err != nil {
		return domain.FilialResponse{}, err
	}

	created, err := s.repo.Create(ctx, req.ToEntity())
	if err != nil {
		return domain.FilialResponse{}, err
	}

	s.logger.Info("Filial criada.", map[string]interface{}{"id": created.ID})
	return domain.NewFilialResponse(created), nil
}

func (s *Service) Update(ctx context.Context, id int64, req domain.FilialRequest) (bool, error) {
	req.Estado = strings.ToUpper(strings.TrimSpace(req.Estado))
	if err := validation.Struct(req); err != nil {
		return false, err
	}

	f := req.ToEntity()
	f.ID = id
	return s.repo.Update(ctx, f)
}

func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	ok, err := s.repo.Delete(ctx, id)
	if ok {
		s.logger.Info("Filial removida.", map[string]interface{}{"id": id})
	}
	return ok, err
}
