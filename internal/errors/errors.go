package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// AppError é a interface central para todos os erros customizados do MottuFind.
// Ela permite que o Handler acesse a Categoria, o status HTTP e a causa do erro.
type AppError interface {
	Error() string
	Category() string
	HTTPStatus() int
	Unwrap() error
}

// --- Erros de Domínio ---

// FieldError descreve a falha de validação de um único campo do payload.
type FieldError struct {
	Campo    string `json:"campo"`
	Mensagem string `json:"mensagem"`
}

// ValidationError representa falhas de validação de dados de entrada.
// Fields é preenchido quando a falha pode ser atribuída a campos específicos.
type ValidationError struct {
	Msg    string
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("Erro de Validação: %s", e.Msg)
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Campo+": "+f.Mensagem)
	}
	return fmt.Sprintf("Erro de Validação: %s (%s)", e.Msg, strings.Join(parts, "; "))
}
func (e *ValidationError) Category() string { return "VALIDATION_ERROR" }
func (e *ValidationError) HTTPStatus() int  { return http.StatusBadRequest }
func (e *ValidationError) Unwrap() error    { return nil }

// NewValidationError cria um novo erro de validação sem campos associados.
func NewValidationError(msg string) AppError {
	return &ValidationError{Msg: msg}
}

// NewFieldValidationError cria um erro de validação com a lista de campos inválidos.
func NewFieldValidationError(msg string, fields ...FieldError) AppError {
	return &ValidationError{Msg: msg, Fields: fields}
}

// NotFoundError representa a ausência de um recurso solicitado.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string    { return fmt.Sprintf("Recurso não encontrado: %s", e.Msg) }
func (e *NotFoundError) Category() string { return "NOT_FOUND" }
func (e *NotFoundError) HTTPStatus() int  { return http.StatusNotFound }
func (e *NotFoundError) Unwrap() error    { return nil }

// NewNotFoundError cria um novo erro de recurso não encontrado.
func NewNotFoundError(msg string) AppError {
	return &NotFoundError{Msg: msg}
}

// ConflictError representa um conflito de estado, como uma chave única duplicada.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string    { return fmt.Sprintf("Conflito de estado: %s", e.Msg) }
func (e *ConflictError) Category() string { return "CONFLICT" }
func (e *ConflictError) HTTPStatus() int  { return http.StatusConflict }
func (e *ConflictError) Unwrap() error    { return nil }

// NewConflictError cria um novo erro de conflito.
func NewConflictError(msg string) AppError {
	return &ConflictError{Msg: msg}
}

// UnauthorizedError representa credenciais ausentes, inválidas ou expiradas.
type UnauthorizedError struct {
	Msg string
}

func (e *UnauthorizedError) Error() string    { return e.Msg }
func (e *UnauthorizedError) Category() string { return "UNAUTHORIZED" }
func (e *UnauthorizedError) HTTPStatus() int  { return http.StatusUnauthorized }
func (e *UnauthorizedError) Unwrap() error    { return nil }

// NewUnauthorizedError cria um erro de autenticação (401).
func NewUnauthorizedError(msg string) AppError {
	return &UnauthorizedError{Msg: msg}
}

// --- Erros de Infraestrutura ---

// InternalError representa falhas inesperadas no servidor, serviço ou repositório.
type InternalError struct {
	Msg string
	Err error
}

func (e *InternalError) Error() string    { return fmt.Sprintf("Erro Interno: %s", e.Msg) }
func (e *InternalError) Category() string { return "INTERNAL_ERROR" }
func (e *InternalError) HTTPStatus() int  { return http.StatusInternalServerError }
func (e *InternalError) Unwrap() error    { return e.Err }

// NewInternalError cria um erro de servidor (para falhas de lógica ou código não esperado).
func NewInternalError(msg string, err error) AppError {
	return &InternalError{Msg: msg, Err: err}
}

// NewDBError é um atalho para criar um InternalError específico de falhas no DB.
func NewDBError(msg string, err error) AppError {
	return NewInternalError(fmt.Sprintf("%s (DB): %s", msg, err.Error()), err)
}

// --- Helpers ---

// IsNotFound informa se algum erro da cadeia é um NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// MapToHTTPStatus traduz um erro no código HTTP, categoria e mensagem da resposta.
// Erros encapsulados com %w são resolvidos pela cadeia de Unwrap.
func MapToHTTPStatus(err error) (int, string, string) {
	var appErr AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPStatus() >= http.StatusInternalServerError {
			// A causa interna fica apenas no log.
			return appErr.HTTPStatus(), appErr.Category(), "Ocorreu um erro interno."
		}
		return appErr.HTTPStatus(), appErr.Category(), appErr.Error()
	}

	return http.StatusInternalServerError, "UNKNOWN_ERROR", "Ocorreu um erro inesperado."
}
