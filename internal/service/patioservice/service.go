package patioservice

import (
	"context"

	"mottufind/internal/domain"
	"mottufind/internal/pkg/logger"
	"mottufind/internal/pkg/validation"
)

// PatioRepository define o contrato que o serviço espera da camada de persistência.
type PatioRepository interface {
	Create(ctx context.Context, p domain.Patio) (domain.Patio, error)
	FindByID(ctx context.Context, id int64) (domain.Patio, error)
	FindAll(ctx context.Context) ([]domain.Patio, error)
	FindPage(ctx context.Context, offset, limit int) ([]domain.Patio, int, error)
	Update(ctx context.Context, p domain.Patio) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// Service implementa as regras de negócio de pátios.
type Service struct {
	repo   PatioRepository
	logger logger.Logger
}

func NewService(repo PatioRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// GetAll lista todos os pátios. Uma lista vazia não é erro.
func (s *Service) GetAll(ctx context.Context) ([]domain.PatioResponse, error) {
	patios, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return domain.MapSlice(patios, domain.NewPatioResponse), nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.PatioResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.PatioResponse{}, err
	}
	return domain.NewPatioResponse(p), nil
}

// GetPaged devolve a página numeroPag (base 1) com tamanhoPag itens.
func (s *Service) GetPaged(ctx context.Context, numeroPag, tamanhoPag int) (domain.PagedResult[domain.PatioResponse], error) {
	page, err := domain.NewPageRequest(numeroPag, tamanhoPag)
	if err != nil {
		return domain.PagedResult[domain.PatioResponse]{}, err
	}

	patios, total, err := s.repo.FindPage(ctx, page.Offset(), page.TamanhoPag)
	if err != nil {
		return domain.PagedResult[domain.PatioResponse]{}, err
	}
	return domain.MapPage(page, patios, total, domain.NewPatioResponse), nil
}

func (s *Service) Create(ctx context.Context, req domain.PatioRequest) (domain.PatioResponse, error) {
	if err := validation.Struct(req); err != nil {
		s.logger.Debug("Pátio rejeitado na validação.", map[string]interface{}{"error": err.Error()})
		return domain.PatioResponse{}, err
	}

	created, err := s.repo.Create(ctx, req.ToEntity())
	if err != nil {
		return domain.PatioResponse{}, err
	}

	s.logger.Info("Pátio criado.", map[string]interface{}{"id": created.ID, "filialId": created.FilialID})
	return domain.NewPatioResponse(created), nil
}

// Update substitui os dados do pátio. false indica que o id não existe.
func (s *Service) Update(ctx context.Context, id int64, req domain.PatioRequest) (bool, error) {
	if err := validation.Struct(req); err != nil {
		return false, err
	}

	p := req.ToEntity()
	p.ID = id
	ok, err := s.repo.Update(ctx, p)
	if err != nil || !ok {
		return ok, err
	}

	s.logger.Info("Pátio atualizado.", map[string]interface{}{"id": id})
	return true, nil
}

func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil || !ok {
		return ok, err
	}

	s.logger.Info("Pátio removido.", map[string]interface{}{"id": id})
	return true, nil
}
