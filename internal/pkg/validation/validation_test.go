package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mottufind/internal/domain"
	apperror "mottufind/internal/errors"
)

func validMoto() domain.MotoRequest {
	return domain.MotoRequest{
		Placa:   "ABC1234",
		Modelo:  domain.ModeloMottuPop,
		Ano:     2024,
		Status:  domain.StatusDisponivel,
		PatioID: 1,
	}
}

func TestStruct_ValidMoto(t *testing.T) {
	assert.NoError(t, Struct(validMoto()))
}

func TestStruct_MercosulPlaca(t *testing.T) {
	req := validMoto()
	req.Placa = "BRA2E19"
	assert.NoError(t, Struct(req))
}

func TestStruct_ReportsJSONFieldNames(t *testing.T) {
	req := validMoto()
	req.Placa = "12ABC"
	req.Modelo = "Honda"
	req.PatioID = 0

	err := Struct(req)

	var verr *apperror.ValidationError
	require.ErrorAs(t, err, &verr)
	campos := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		campos = append(campos, f.Campo)
	}
	assert.ElementsMatch(t, []string{"placa", "modelo", "patioId"}, campos)
}

func TestStruct_UsuarioEmailAndSenha(t *testing.T) {
	err := Struct(domain.UsuarioRequest{
		NomeUsuario: "ana.souza",
		Email:       "nao-e-email",
		Senha:       "123",
		Setor:       domain.SetorOperacional,
	})

	var verr *apperror.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 2)
	assert.Equal(t, "email", verr.Fields[0].Campo)
	assert.Equal(t, "e-mail inválido", verr.Fields[0].Mensagem)
	assert.Equal(t, "senha", verr.Fields[1].Campo)
}

func TestStruct_SenhaLimitIsInBytes(t *testing.T) {
	usuario := domain.UsuarioRequest{
		NomeUsuario: "ana.souza",
		Email:       "ana@mottu.com",
		Senha:       strings.Repeat("é", 40),
		Setor:       domain.SetorOperacional,
	}

	err := Struct(usuario)

	var verr *apperror.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "senha", verr.Fields[0].Campo)
	assert.Equal(t, "tamanho máximo é 72 bytes", verr.Fields[0].Mensagem)

	usuario.Senha = strings.Repeat("é", 36)
	assert.NoError(t, Struct(usuario))
}

func TestStruct_FilialEstadoLength(t *testing.T) {
	err := Struct(domain.FilialRequest{Nome: "Mottu", Endereco: "Rua A", Cidade: "SP", Estado: "SPA"})

	var verr *apperror.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "estado", verr.Fields[0].Campo)
}

func TestValidPlaca(t *testing.T) {
	assert.True(t, ValidPlaca("ABC1234"))
	assert.False(t, ValidPlaca("abc1234"))
	assert.False(t, ValidPlaca("ABCD123"))
}
