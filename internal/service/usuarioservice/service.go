package usuarioservice

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"mottufind/internal/domain"
	apperror "mottufind/internal/errors"
	"mottufind/internal/pkg/logger"
	"mottufind/internal/pkg/validation"
)

type UsuarioRepository interface {
	Create(ctx context.Context, u domain.Usuario) (domain.Usuario, error)
	FindByID(ctx context.Context, id int64) (domain.Usuario, error)
	FindAll(ctx context.Context) ([]domain.Usuario, error)
	FindPage(ctx context.Context, offset, limit int) ([]domain.Usuario, int, error)
	Update(ctx context.Context, u domain.Usuario) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// Service gerencia usuários. A senha recebida é sempre convertida em hash bcrypt
// antes de chegar ao repositório e nunca aparece nas respostas.
type Service struct {
	repo       UsuarioRepository
	logger     logger.Logger
	bcryptCost int
}

func NewService(repo UsuarioRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger, bcryptCost: bcrypt.DefaultCost}
}

// WithBcryptCost troca o custo do hash. Testes usam bcrypt.MinCost.
func (s *Service) WithBcryptCost(cost int) *Service {
	s.bcryptCost = cost
	return s
}

func (s *Service) GetAll(ctx context.Context) ([]domain.UsuarioResponse, error) {
	usuarios, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return domain.MapSlice(usuarios, domain.NewUsuarioResponse), nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.UsuarioResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.UsuarioResponse{}, err
	}
	return domain.NewUsuarioResponse(u), nil
}

func (s *Service) GetPaged(ctx context.Context, numeroPag, tamanhoPag int) (domain.PagedResult[domain.UsuarioResponse], error) {
	page, err := domain.NewPageRequest(numeroPag, tamanhoPag)
	if err != nil {
		return domain.PagedResult[domain.UsuarioResponse]{}, err
	}

	usuarios, total, err := s.repo.FindPage(ctx, page.Offset(), page.TamanhoPag)
	if err != nil {
		return domain.PagedResult[domain.UsuarioResponse]{}, err
	}
	return domain.MapPage(page, usuarios, total, domain.NewUsuarioResponse), nil
}

func (s *Service) Create(ctx context.Context, req domain.UsuarioRequest) (domain.UsuarioResponse, error) {
	u, err := s.toEntity(req)
	if err != nil {
		return domain.UsuarioResponse{}, err
	}

	created, err := s.repo.Create(ctx, u)
	if err != nil {
		return domain.UsuarioResponse{}, err
	}

	s.logger.Info("Usuário criado.", map[string]interface{}{"id": created.ID, "setor": created.Setor})
	return domain.NewUsuarioResponse(created), nil
}

func (s *Service) Update(ctx context.Context, id int64, req domain.UsuarioRequest) (bool, error) {
	u, err := s.toEntity(req)
	if err != nil {
		return false, err
	}
	u.ID = id
	return s.repo.Update(ctx, u)
}

func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}

// toEntity valida o payload, normaliza o e-mail e gera o hash da senha.
func (s *Service) toEntity(req domain.UsuarioRequest) (domain.Usuario, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validation.Struct(req); err != nil {
		return domain.Usuario{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), s.bcryptCost)
	if err != nil {
		return domain.Usuario{}, apperror.NewInternalError("Falha ao gerar hash da senha.", err)
	}

	return domain.Usuario{
		NomeUsuario: req.NomeUsuario,
		Email:       req.Email,
		Senha:       string(hash),
		Setor:       req.Setor,
	}, nil
}
