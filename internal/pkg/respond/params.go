package respond

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"mottufind/internal/domain"
	apperror "mottufind/internal/errors"
	"mottufind/internal/pkg/logger"
)

// PathID lê o parâmetro {id} da rota como inteiro positivo.
func PathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, apperror.NewFieldValidationError("Identificador inválido.",
			apperror.FieldError{Campo: "id", Mensagem: "deve ser um inteiro positivo"})
	}
	return id, nil
}

// PageParams lê numeroPag e tamanhoPag da query string, com os valores padrão quando ausentes.
// Valores não numéricos geram ValidationError; o limite inferior é checado pelo serviço.
func PageParams(r *http.Request) (int, int, error) {
	numeroPag, err := intQuery(r, "numeroPag", domain.DefaultNumeroPag)
	if err != nil {
		return 0, 0, err
	}
	tamanhoPag, err := intQuery(r, "tamanhoPag", domain.DefaultTamanhoPag)
	if err != nil {
		return 0, 0, err
	}
	return numeroPag, tamanhoPag, nil
}

func intQuery(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperror.NewFieldValidationError("Parâmetros de paginação inválidos.",
			apperror.FieldError{Campo: name, Mensagem: "deve ser um número inteiro"})
	}
	return v, nil
}

// Created responde 201 com o header Location apontando para o novo recurso.
func Created(w http.ResponseWriter, log logger.Logger, location string, data interface{}) {
	w.Header().Set("Location", location)
	JSON(w, log, http.StatusCreated, data)
}

// NoContent fecha operações de update e delete: erro mapeado, 404 quando ok é false, senão 204.
func NoContent(w http.ResponseWriter, r *http.Request, log logger.Logger, ok bool, err error) {
	switch {
	case err != nil:
		Error(w, r, log, err)
	case !ok:
		w.WriteHeader(http.StatusNotFound)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}
