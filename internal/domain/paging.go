package domain

import (
	"fmt"
	"math"

	apperror "mottufind/internal/errors"
)

// Valores padrão e limites dos parâmetros numeroPag e tamanhoPag.
const (
	DefaultNumeroPag  = 1
	DefaultTamanhoPag = 10
	MaxTamanhoPag     = 100
)

// maxNumeroPag mantém (numeroPag-1)*MaxTamanhoPag dentro de um int32, que cabe em OFFSET.
const maxNumeroPag = math.MaxInt32 / MaxTamanhoPag

// PageRequest identifica uma página (base 1).
type PageRequest struct {
	NumeroPag  int
	TamanhoPag int
}

// NewPageRequest valida os parâmetros de paginação: ambos >= 1, tamanhoPag <= MaxTamanhoPag
// e numeroPag limitado para que o offset nunca estoure.
func NewPageRequest(numeroPag, tamanhoPag int) (PageRequest, error) {
	var fields []apperror.FieldError
	switch {
	case numeroPag < 1:
		fields = append(fields, apperror.FieldError{Campo: "numeroPag", Mensagem: "deve ser maior ou igual a 1"})
	case numeroPag > maxNumeroPag:
		fields = append(fields, apperror.FieldError{Campo: "numeroPag", Mensagem: fmt.Sprintf("deve ser menor ou igual a %d", maxNumeroPag)})
	}
	switch {
	case tamanhoPag < 1:
		fields = append(fields, apperror.FieldError{Campo: "tamanhoPag", Mensagem: "deve ser maior ou igual a 1"})
	case tamanhoPag > MaxTamanhoPag:
		fields = append(fields, apperror.FieldError{Campo: "tamanhoPag", Mensagem: fmt.Sprintf("deve ser menor ou igual a %d", MaxTamanhoPag)})
	}
	if len(fields) > 0 {
		return PageRequest{}, apperror.NewFieldValidationError("Parâmetros de paginação inválidos.", fields...)
	}
	return PageRequest{NumeroPag: numeroPag, TamanhoPag: tamanhoPag}, nil
}

// Offset é a quantidade de registros anteriores à página.
func (p PageRequest) Offset() int {
	return (p.NumeroPag - 1) * p.TamanhoPag
}

// PagedResult é uma página de itens e o total de registros da coleção.
type PagedResult[T any] struct {
	Itens      []T `json:"itens"`
	Total      int `json:"total"`
	NumeroPag  int `json:"numeroPag"`
	TamanhoPag int `json:"tamanhoPag"`
}

// HasNext informa se existem registros depois desta página.
func (p PagedResult[T]) HasNext() bool {
	return HasNextPage(p.NumeroPag, p.TamanhoPag, p.Total)
}

// HasNextPage equivale a numeroPag*tamanhoPag < total sem multiplicar, logo sem overflow.
func HasNextPage(numeroPag, tamanhoPag, total int) bool {
	if tamanhoPag < 1 || total < 1 {
		return false
	}
	return numeroPag <= (total-1)/tamanhoPag
}

// HasPrev informa se existe uma página anterior.
func (p PagedResult[T]) HasPrev() bool {
	return p.NumeroPag > 1
}

// MapPage converte os itens de uma página mantendo os metadados.
func MapPage[T, R any](page PageRequest, items []T, total int, fn func(T) R) PagedResult[R] {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return PagedResult[R]{
		Itens:      out,
		Total:      total,
		NumeroPag:  page.NumeroPag,
		TamanhoPag: page.TamanhoPag,
	}
}

// MapSlice converte uma lista de entidades em DTOs.
func MapSlice[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}
