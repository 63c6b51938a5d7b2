package domain

// LeitorRfid é um leitor RFID físico instalado em um pátio.
type LeitorRfid struct {
	ID            int64
	Identificador string
	Localizacao   string
	PatioID       int64
}

type LeitorRfidRequest struct {
	Identificador string `json:"identificador" validate:"required,max=50" example:"LEITOR-BUT-01"`
	Localizacao   string `json:"localizacao" validate:"required,max=200" example:"Portão de entrada"`
	PatioID       int64  `json:"patioId" validate:"required,gt=0" example:"1"`
}

func (r LeitorRfidRequest) ToEntity() LeitorRfid {
	return LeitorRfid{
		Identificador: r.Identificador,
		Localizacao:   r.Localizacao,
		PatioID:       r.PatioID,
	}
}

type LeitorRfidResponse struct {
	ID            int64  `json:"id" example:"1"`
	Identificador string `json:"identificador" example:"LEITOR-BUT-01"`
	Localizacao   string `json:"localizacao" example:"Portão de entrada"`
	PatioID       int64  `json:"patioId" example:"1"`
}

func NewLeitorRfidResponse(l LeitorRfid) LeitorRfidResponse {
	return LeitorRfidResponse{
		ID:            l.ID,
		Identificador: l.Identificador,
		Localizacao:   l.Localizacao,
		PatioID:       l.PatioID,
	}
}
