package domain

// Filial é uma unidade da empresa com um ou mais pátios.
type Filial struct {
	ID       int64
	Nome     string
	Endereco string
	Cidade   string
	Estado   string
}

// FilialRequest é o payload de criação e atualização de filiais.
type FilialRequest struct {
	Nome     string `json:"nome" validate:"required,min=2,max=100" example:"Mottu Butantã"`
	Endereco string `json:"endereco" validate:"required,max=200" example:"Rua Alvarenga, 1200"`
	Cidade   string `json:"cidade" validate:"required,max=100" example:"São Paulo"`
	Estado   string `json:"estado" validate:"required,len=2,alpha" example:"SP"`
}

func (r FilialRequest) ToEntity() Filial {
	return Filial{
		Nome:     r.Nome,
		Endereco: r.Endereco,
		Cidade:   r.Cidade,
		Estado:   r.Estado,
	}
}

// FilialResponse é a representação pública de uma filial.
type FilialResponse struct {
	ID       int64  `json:"id" example:"1"`
	Nome     string `json:"nome" example:"Mottu Butantã"`
	Endereco string `json:"endereco" example:"Rua Alvarenga, 1200"`
	Cidade   string `json:"cidade" example:"São Paulo"`
	Estado   string `json:"estado" example:"SP"`
}

func NewFilialResponse(f Filial) FilialResponse {
	return FilialResponse{
		ID:       f.ID,
		Nome:     f.Nome,
		Endereco: f.Endereco,
		Cidade:   f.Cidade,
		Estado:   f.Estado,
	}
}
