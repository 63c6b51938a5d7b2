package authservice_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"mottufind/internal/domain"
	apperror "mottufind/internal/errors"
	"mottufind/internal/pkg/logger"
	"mottufind/internal/pkg/token"
	"mottufind/internal/service/authservice"
)

type MockUsuarioFinder struct {
	mock.Mock
}

func (m *MockUsuarioFinder) FindByEmail(ctx context.Context, email string) (domain.Usuario, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.Usuario), args.Error(1)
}

const testKey = "0123456789abcdef0123456789abcdef"

func storedUser(t *testing.T) domain.Usuario {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3nh@forte"), bcrypt.MinCost)
	require.NoError(t, err)
	return domain.Usuario{ID: 12, NomeUsuario: "ana.souza", Email: "ana@mottu.com", Senha: string(hash), Setor: domain.SetorAdministrativo}
}

func TestAuthenticate_RoundTrip(t *testing.T) {
	repo := new(MockUsuarioFinder)
	tokens := token.NewService(testKey, "MottuFind", "MottuFindClients", 0)
	svc := authservice.NewService(repo, tokens, logger.Nop{})
	repo.On("FindByEmail", mock.Anything, "ana@mottu.com").Return(storedUser(t), nil)

	tok, err := svc.Authenticate(context.Background(), "ana@mottu.com", "s3nh@forte")
	require.NoError(t, err)

	claims, err := tokens.ValidateToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "12", claims.Subject)
	assert.Equal(t, "ana@mottu.com", claims.Email)
	assert.Equal(t, "ana.souza", claims.Nome)
	assert.Equal(t, "Administrativo", claims.Setor)
}

func TestAuthenticate_FailuresAreIndistinguishable(t *testing.T) {
	repo := new(MockUsuarioFinder)
	svc := authservice.NewService(repo, token.NewService(testKey, "MottuFind", "MottuFindClients", 0), logger.Nop{})
	repo.On("FindByEmail", mock.Anything, "ana@mottu.com").Return(storedUser(t), nil)
	repo.On("FindByEmail", mock.Anything, "x@mottu.com").Return(domain.Usuario{}, apperror.NewNotFoundError("usuário"))

	_, errSenha := svc.Authenticate(context.Background(), "ana@mottu.com", "errada")
	_, errEmail := svc.Authenticate(context.Background(), "x@mottu.com", "s3nh@forte")

	var u1, u2 *apperror.UnauthorizedError
	require.ErrorAs(t, errSenha, &u1)
	require.ErrorAs(t, errEmail, &u2)
	assert.Equal(t, u1.Error(), u2.Error())
	assert.Equal(t, authservice.MsgCredenciaisInvalidas, u1.Error())
}

func TestAuthenticate_RepositoryFailureIsNotUnauthorized(t *testing.T) {
	repo := new(MockUsuarioFinder)
	svc := authservice.NewService(repo, token.NewService(testKey, "MottuFind", "MottuFindClients", 0), logger.Nop{})
	repo.On("FindByEmail", mock.Anything, mock.Anything).Return(domain.Usuario{}, apperror.NewDBError("falha", errors.New("conn reset")))

	_, err := svc.Authenticate(context.Background(), "ana@mottu.com", "s3nh@forte")

	assert.IsType(t, &apperror.InternalError{}, err)
}

func TestAuthenticate_MissingSigningKey(t *testing.T) {
	repo := new(MockUsuarioFinder)
	svc := authservice.NewService(repo, token.NewService("", "MottuFind", "MottuFindClients", 0), logger.Nop{})
	repo.On("FindByEmail", mock.Anything, "ana@mottu.com").Return(storedUser(t), nil)

	_, err := svc.Authenticate(context.Background(), "ana@mottu.com", "s3nh@forte")

	var internal *apperror.InternalError
	require.ErrorAs(t, err, &internal)
	assert.ErrorIs(t, err, token.ErrMissingKey)
}

func TestAuthenticate_EmailIsCaseInsensitive(t *testing.T) {
	repo := new(MockUsuarioFinder)
	svc := authservice.NewService(repo, token.NewService(testKey, "MottuFind", "MottuFindClients", 0), logger.Nop{})
	repo.On("FindByEmail", mock.Anything, "ana@mottu.com").Return(storedUser(t), nil)

	_, err := svc.Authenticate(context.Background(), "  Ana@Mottu.com ", "s3nh@forte")

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
