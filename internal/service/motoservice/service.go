package motoservice

import (
	"context"

	"mottufind/internal/domain"
	apperror "mottufind/internal/errors"
	"mottufind/internal/pkg/logger"
	"mottufind/internal/pkg/validation"
)

// MotoRepository define o contrato que o serviço espera da camada de persistência.
type MotoRepository interface {
	Create(ctx context.Context, m domain.Moto) (domain.Moto, error)
	FindByID(ctx context.Context, id int64) (domain.Moto, error)
	FindByPlaca(ctx context.Context, placa string) (domain.Moto, error)
	FindAll(ctx context.Context) ([]domain.Moto, error)
	FindPage(ctx context.Context, offset, limit int) ([]domain.Moto, int, error)
	Update(ctx context.Context, m domain.Moto) (bool, error)
	UpdateByPlaca(ctx context.Context, placa string, m domain.Moto) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	DeleteByPlaca(ctx context.Context, placa string) (bool, error)
}

// Service implementa as regras de negócio de motos. A placa é o identificador externo.
type Service struct {
	repo   MotoRepository
	logger logger.Logger
}

func NewService(repo MotoRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) GetAll(ctx context.Context) ([]domain.MotoResponse, error) {
	motos, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return domain.MapSlice(motos, domain.NewMotoResponse), nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.MotoResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.MotoResponse{}, err
	}
	return domain.NewMotoResponse(m), nil
}

// GetByPlaca normaliza a placa antes da busca.
func (s *Service) GetByPlaca(ctx context.Context, placa string) (domain.MotoResponse, error) {
	placa, err := normalizePlaca(placa)
	if err != nil {
		return domain.MotoResponse{}, err
	}

	m, err := s.repo.FindByPlaca(ctx, placa)
	if err != nil {
		return domain.MotoResponse{}, err
	}
	return domain.NewMotoResponse(m), nil
}

func (s *Service) GetPaged(ctx context.Context, numeroPag, tamanhoPag int) (domain.PagedResult[domain.MotoResponse], error) {
	page, err := domain.NewPageRequest(numeroPag, tamanhoPag)
	if err != nil {
		return domain.PagedResult[domain.MotoResponse]{}, err
	}

	motos, total, err := s.repo.FindPage(ctx, page.Offset(), page.TamanhoPag)
	if err != nil {
		return domain.PagedResult[domain.MotoResponse]{}, err
	}
	return domain.MapPage(page, motos, total, domain.NewMotoResponse), nil
}

// Create valida e grava a moto. Placa duplicada resulta em ConflictError.
func (s *Service) Create(ctx context.Context, req domain.MotoRequest) (domain.MotoResponse, error) {
	req.Normalize()
	if err := validation.Struct(req); err != nil {
		s.logger.Debug("Moto rejeitada na validação.", map[string]interface{}{"placa": req.Placa, "error": err.Error()})
		return domain.MotoResponse{}, err
	}

	created, err := s.repo.Create(ctx, req.ToEntity())
	if err != nil {
		return domain.MotoResponse{}, err
	}

	s.logger.Info("Moto cadastrada.", map[string]interface{}{"id": created.ID, "placa": created.Placa})
	return domain.NewMotoResponse(created), nil
}

func (s *Service) Update(ctx context.Context, id int64, req domain.MotoRequest) (bool, error) {
	req.Normalize()
	if err := validation.Struct(req); err != nil {
		return false, err
	}

	m := req.ToEntity()
	m.ID = id
	return s.repo.Update(ctx, m)
}

// UpdateByPlaca atualiza a moto identificada por placa. O payload pode trocar a placa.
func (s *Service) UpdateByPlaca(ctx context.Context, placa string, req domain.MotoRequest) (bool, error) {
	placa, err := normalizePlaca(placa)
	if err != nil {
		return false, err
	}
	req.Normalize()
	if err := validation.Struct(req); err != nil {
		return false, err
	}

	ok, err := s.repo.UpdateByPlaca(ctx, placa, req.ToEntity())
	if ok {
		s.logger.Info("Moto atualizada.", map[string]interface{}{"placa": placa, "novaPlaca": req.Placa})
	}
	return ok, err
}

func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}

func (s *Service) DeleteByPlaca(ctx context.Context, placa string) (bool, error) {
	placa, err := normalizePlaca(placa)
	if err != nil {
		return false, err
	}

	ok, err := s.repo.DeleteByPlaca(ctx, placa)
	if ok {
		s.logger.Info("Moto removida.", map[string]interface{}{"placa": placa})
	}
	return ok, err
}

func normalizePlaca(placa string) (string, error) {
	placa = domain.NormalizePlaca(placa)
	if placa == "" {
		return "", apperror.NewFieldValidationError("Placa não informada.",
			apperror.FieldError{Campo: "placa", Mensagem: "campo obrigatório"})
	}
	return placa, nil
}
