package domain

import "time"

// LeituraRfid é um evento de leitura: o leitor LeitorID viu a moto MotoID em DataHora.
type LeituraRfid struct {
	ID       int64
	LeitorID int64
	MotoID   int64
	DataHora time.Time
}

// LeituraRfidRequest é usado tanto pela API quanto pela ingestão MQTT.
// DataHora vazia assume o instante do recebimento.
type LeituraRfidRequest struct {
	LeitorID int64     `json:"leitorId" validate:"required,gt=0" example:"1"`
	MotoID   int64     `json:"motoId" validate:"required,gt=0" example:"1"`
	DataHora time.Time `json:"dataHora" example:"2026-10-15T12:00:00Z"`
}

func (r LeituraRfidRequest) ToEntity() LeituraRfid {
	return LeituraRfid{
		LeitorID: r.LeitorID,
		MotoID:   r.MotoID,
		DataHora: r.DataHora,
	}
}

type LeituraRfidResponse struct {
	ID       int64     `json:"id" example:"1"`
	LeitorID int64     `json:"leitorId" example:"1"`
	MotoID   int64     `json:"motoId" example:"1"`
	DataHora time.Time `json:"dataHora" example:"2026-10-15T12:00:00Z"`
}

func NewLeituraRfidResponse(l LeituraRfid) LeituraRfidResponse {
	return LeituraRfidResponse{
		ID:       l.ID,
		LeitorID: l.LeitorID,
		MotoID:   l.MotoID,
		DataHora: l.DataHora,
	}
}
