// Package respond centraliza a escrita de respostas JSON e o mapeamento de erros para HTTP.
package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	apperror "mottufind/internal/errors"
	"mottufind/internal/pkg/logger"
)

// ErrorResponse é o corpo padronizado de erro.
type ErrorResponse struct {
	Code      int                   `json:"code" example:"400"`
	Category  string                `json:"category" example:"VALIDATION_ERROR"`
	Message   string                `json:"message" example:"Erro de Validação: payload inválido"`
	Fields    []apperror.FieldError `json:"fields,omitempty"`
	RequestID string                `json:"requestId,omitempty"`
}

// JSON escreve data com o status informado. data nil gera apenas o status.
func JSON(w http.ResponseWriter, log logger.Logger, status int, data interface{}) {
	if data == nil {
		w.WriteHeader(status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error("Falha ao codificar JSON de resposta", err)
	}
}

// Error traduz err para o status HTTP e escreve o corpo de erro.
// NotFound responde 404 sem corpo.
func Error(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= http.StatusInternalServerError {
		log.Error(fmt.Sprintf("Erro de Servidor: %s", category), err)
	} else {
		log.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category), map[string]interface{}{
			"path":   r.URL.Path,
			"method": r.Method,
		})
	}

	if status == http.StatusNotFound {
		w.WriteHeader(status)
		return
	}

	body := ErrorResponse{
		Code:      status,
		Category:  category,
		Message:   message,
		RequestID: middleware.GetReqID(r.Context()),
	}
	var verr *apperror.ValidationError
	if errors.As(err, &verr) {
		body.Fields = verr.Fields
	}
	JSON(w, log, status, body)
}

// DecodeJSON lê o corpo da requisição em v. JSON malformado vira ValidationError.
func DecodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		return apperror.NewValidationError("Payload inválido. Verifique o formato JSON.")
	}
	return nil
}
