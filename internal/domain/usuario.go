package domain

// Setor é o departamento do usuário, emitido como claim "setor" no JWT.
type Setor string

const (
	SetorAdministrativo Setor = "Administrativo"
	SetorOperacional    Setor = "Operacional"
	SetorManutencao     Setor = "Manutencao"
)

// Usuario é um operador do sistema. Senha guarda o hash bcrypt, nunca o texto puro.
type Usuario struct {
	ID          int64
	NomeUsuario string
	Email       string
	Senha       string
	Setor       Setor
}

// UsuarioRequest é o payload de criação e atualização de usuários.
// Senha chega em texto puro e é convertida em hash pelo serviço.
type UsuarioRequest struct {
	NomeUsuario string `json:"nomeUsuario" validate:"required,min=3,max=100" example:"ana.souza"`
	Email       string `json:"email" validate:"required,email,max=150" example:"ana@mottu.com"`
	Senha       string `json:"senha" validate:"required,min=6,maxbytes=72" example:"s3nh@forte"`
	Setor       Setor  `json:"setor" validate:"required,oneof=Administrativo Operacional Manutencao" example:"Operacional"`
}

// UsuarioResponse omite a senha.
type UsuarioResponse struct {
	ID          int64  `json:"id" example:"1"`
	NomeUsuario string `json:"nomeUsuario" example:"ana.souza"`
	Email       string `json:"email" example:"ana@mottu.com"`
	Setor       Setor  `json:"setor" example:"Operacional"`
}

func NewUsuarioResponse(u Usuario) UsuarioResponse {
	return UsuarioResponse{
		ID:          u.ID,
		NomeUsuario: u.NomeUsuario,
		Email:       u.Email,
		Setor:       u.Setor,
	}
}

// LoginRequest é o payload de autenticação.
type LoginRequest struct {
	Email string `json:"email" validate:"required,email" example:"ana@mottu.com"`
	Senha string `json:"senha" validate:"required" example:"s3nh@forte"`
}

// LoginResponse carrega o JWT emitido.
type LoginResponse struct {
	Token string `json:"token"`
}
