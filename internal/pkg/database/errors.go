package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	apperror "mottufind/internal/errors"
)

// Códigos SQLSTATE tratados pelos repositórios.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// ClassifyError converte erros do driver em erros de domínio.
// constraintFields mapeia o nome de cada constraint para o campo JSON correspondente.
// Chave única violada vira 409; chave estrangeira inexistente vira 400 no campo mapeado.
// Qualquer outro erro vira InternalError.
func ClassifyError(msg string, err error, constraintFields map[string]string) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return apperror.NewDBError(msg, err)
	}

	field, known := constraintFields[pqErr.Constraint]
	if !known {
		field = pqErr.Constraint
	}

	switch string(pqErr.Code) {
	case codeUniqueViolation:
		return apperror.NewConflictError(fmt.Sprintf("já existe um registro com o mesmo valor de '%s'.", field))
	case codeForeignKeyViolation:
		return apperror.NewFieldValidationError("Referência inválida.", apperror.FieldError{
			Campo:    field,
			Mensagem: "registro referenciado não existe",
		})
	}
	return apperror.NewDBError(msg, err)
}

// ClassifyDeleteError trata a remoção de um registro ainda referenciado por outros como 409.
func ClassifyDeleteError(msg string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == codeForeignKeyViolation {
		return apperror.NewConflictError("o registro possui dependências e não pode ser removido.")
	}
	return apperror.NewDBError(msg, err)
}

// RowsAffected informa se o comando atingiu ao menos uma linha.
func RowsAffected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, apperror.NewDBError("falha ao obter linhas afetadas", err)
	}
	return n > 0, nil
}
