package domain

import "strings"

// ModeloMoto identifica o modelo de uma moto da frota.
type ModeloMoto string

const (
	ModeloMottuSport ModeloMoto = "MottuSport"
	ModeloMottuE     ModeloMoto = "MottuE"
	ModeloMottuPop   ModeloMoto = "MottuPop"
)

// StatusMoto indica a situação operacional de uma moto.
type StatusMoto string

const (
	StatusDisponivel StatusMoto = "Disponivel"
	StatusAlugada    StatusMoto = "Alugada"
	StatusManutencao StatusMoto = "Manutencao"
)

// Moto é um ativo rastreado, identificado externamente pela placa.
type Moto struct {
	ID      int64
	Placa   string
	Modelo  ModeloMoto
	Ano     int
	Status  StatusMoto
	PatioID int64
}

// MotoRequest é o payload de criação e atualização de motos.
type MotoRequest struct {
	Placa   string     `json:"placa" validate:"required,placa" example:"ABC1234"`
	Modelo  ModeloMoto `json:"modelo" validate:"required,oneof=MottuSport MottuE MottuPop" example:"MottuPop"`
	Ano     int        `json:"ano" validate:"required,gte=2000,lte=2100" example:"2024"`
	Status  StatusMoto `json:"status" validate:"required,oneof=Disponivel Alugada Manutencao" example:"Disponivel"`
	PatioID int64      `json:"patioId" validate:"required,gt=0" example:"1"`
}

// Normalize padroniza a placa (maiúsculas, sem espaços) antes da validação.
func (r *MotoRequest) Normalize() {
	r.Placa = NormalizePlaca(r.Placa)
}

// ToEntity converte o payload na entidade.
func (r MotoRequest) ToEntity() Moto {
	return Moto{
		Placa:   r.Placa,
		Modelo:  r.Modelo,
		Ano:     r.Ano,
		Status:  r.Status,
		PatioID: r.PatioID,
	}
}

// MotoResponse é a representação pública de uma moto.
type MotoResponse struct {
	ID      int64      `json:"id" example:"1"`
	Placa   string     `json:"placa" example:"ABC1234"`
	Modelo  ModeloMoto `json:"modelo" example:"MottuPop"`
	Ano     int        `json:"ano" example:"2024"`
	Status  StatusMoto `json:"status" example:"Disponivel"`
	PatioID int64      `json:"patioId" example:"1"`
}

// NewMotoResponse mapeia a entidade para o DTO de resposta.
func NewMotoResponse(m Moto) MotoResponse {
	return MotoResponse{
		ID:      m.ID,
		Placa:   m.Placa,
		Modelo:  m.Modelo,
		Ano:     m.Ano,
		Status:  m.Status,
		PatioID: m.PatioID,
	}
}

// NormalizePlaca remove espaços e hífen e coloca a placa em maiúsculas.
func NormalizePlaca(placa string) string {
	placa = strings.ToUpper(strings.TrimSpace(placa))
	return strings.ReplaceAll(placa, "-", "")
}
