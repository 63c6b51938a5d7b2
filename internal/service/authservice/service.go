package authservice

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"mottufind/internal/domain"
	apperror "mottufind/internal/errors"
	"mottufind/internal/pkg/logger"
	"mottufind/internal/pkg/token"
)

// MsgCredenciaisInvalidas é a única mensagem devolvida em falhas de login.
const MsgCredenciaisInvalidas = "Credenciais inválidas"

// UsuarioFinder é o trecho do repositório de usuários usado na autenticação.
type UsuarioFinder interface {
	FindByEmail(ctx context.Context, email string) (domain.Usuario, error)
}

// TokenGenerator emite o JWT do usuário autenticado.
type TokenGenerator interface {
	GenerateToken(sub token.Subject) (string, error)
}

type Service struct {
	repo      UsuarioFinder
	tokenSvc  TokenGenerator
	logger    logger.Logger
	dummyHash []byte
}

func NewService(repo UsuarioFinder, tokenSvc TokenGenerator, logger logger.Logger) *Service {
	// Hash usado quando o e-mail não existe, para que as duas falhas custem o mesmo.
	dummy, _ := bcrypt.GenerateFromPassword([]byte("mottufind-dummy"), bcrypt.DefaultCost)
	return &Service{repo: repo, tokenSvc: tokenSvc, logger: logger, dummyHash: dummy}
}

// Authenticate valida e-mail e senha e devolve um JWT.
// E-mail desconhecido e senha errada produzem o mesmo UnauthorizedError.
func (s *Service) Authenticate(ctx context.Context, email, senha string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if !apperror.IsNotFound(err) {
			return "", err
		}
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(senha))
		s.logger.Debug("Login recusado.", map[string]interface{}{"motivo": "email"})
		return "", apperror.NewUnauthorizedError(MsgCredenciaisInvalidas)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Senha), []byte(senha)); err != nil {
		s.logger.Debug("Login recusado.", map[string]interface{}{"motivo": "senha", "id": user.ID})
		return "", apperror.NewUnauthorizedError(MsgCredenciaisInvalidas)
	}

	tokenString, err := s.tokenSvc.GenerateToken(token.Subject{
		UserID: user.ID,
		Email:  user.Email,
		Nome:   user.NomeUsuario,
		Setor:  string(user.Setor),
	})
	if err != nil {
		return "", apperror.NewInternalError("Falha ao gerar token.", err)
	}

	s.logger.Info("Login realizado.", map[string]interface{}{"id": user.ID})
	return tokenString, nil
}
