package leiturarfidservice

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mottufind/internal/domain"
	"mottufind/internal/pkg/logger"
)

// Creator é o caminho de criação compartilhado com a API HTTP.
type Creator interface {
	Create(ctx context.Context, req domain.LeituraRfidRequest) (domain.LeituraRfidResponse, error)
}

// Ingestor grava as leituras publicadas pelos leitores no broker MQTT.
type Ingestor struct {
	svc     Creator
	logger  logger.Logger
	timeout time.Duration
}

func NewIngestor(svc Creator, logger logger.Logger, timeout time.Duration) *Ingestor {
	return &Ingestor{svc: svc, logger: logger, timeout: timeout}
}

// HandleMessage decodifica o payload {leitorId, motoId, dataHora?} e grava a leitura.
// O erro devolvido só é registrado em log pelo cliente MQTT; a mensagem é descartada.
func (i *Ingestor) HandleMessage(topic string, payload []byte) error {
	var req domain.LeituraRfidRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		return fmt.Errorf("payload inválido: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), i.timeout)
	defer cancel()

	created, err := i.svc.Create(ctx, req)
	if err != nil {
		return err
	}

	i.logger.Debug("Leitura RFID recebida via MQTT.", map[string]interface{}{"topic": topic, "id": created.ID})
	return nil
}
