package domain

// Patio é um pátio que agrupa motos e pertence a uma filial.
type Patio struct {
	ID          int64
	Nome        string
	Localizacao string
	Capacidade  int
	FilialID    int64
}

// PatioRequest é o payload de criação e atualização de pátios.
type PatioRequest struct {
	Nome        string `json:"nome" validate:"required,min=2,max=100" example:"Pátio Butantã"`
	Localizacao string `json:"localizacao" validate:"required,max=200" example:"Av. Vital Brasil, 100"`
	Capacidade  int    `json:"capacidade" validate:"required,gt=0" example:"120"`
	FilialID    int64  `json:"filialId" validate:"required,gt=0" example:"1"`
}

func (r PatioRequest) ToEntity() Patio {
	return Patio{
		Nome:        r.Nome,
		Localizacao: r.Localizacao,
		Capacidade:  r.Capacidade,
		FilialID:    r.FilialID,
	}
}

// PatioResponse é a representação pública de um pátio.
type PatioResponse struct {
	ID          int64  `json:"id" example:"1"`
	Nome        string `json:"nome" example:"Pátio Butantã"`
	Localizacao string `json:"localizacao" example:"Av. Vital Brasil, 100"`
	Capacidade  int    `json:"capacidade" example:"120"`
	FilialID    int64  `json:"filialId" example:"1"`
}

func NewPatioResponse(p Patio) PatioResponse {
	return PatioResponse{
		ID:          p.ID,
		Nome:        p.Nome,
		Localizacao: p.Localizacao,
		Capacidade:  p.Capacidade,
		FilialID:    p.FilialID,
	}
}
