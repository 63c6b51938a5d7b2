package usuariorepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"mottufind/internal/domain"
	apperror "mottufind/internal/errors"
	"mottufind/internal/pkg/database"
	"mottufind/internal/pkg/logger"
)

var constraintFields = map[string]string{
	"uq_usuarios_email": "email",
}

// UsuarioRepository persiste usuários. A coluna senha guarda apenas o hash bcrypt.
type UsuarioRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	Logger    logger.Logger
}

func NewUsuarioRepository(db *sql.DB, dbTimeout time.Duration, log logger.Logger) *UsuarioRepository {
	return &UsuarioRepository{DB: db, DBTimeout: dbTimeout, Logger: log}
}

const selectUsuario = `SELECT id, nome_usuario, email, senha, setor FROM usuarios`

func scanUsuario(s interface{ Scan(...interface{}) error }) (domain.Usuario, error) {
	var u domain.Usuario
	err := s.Scan(&u.ID, &u.NomeUsuario, &u.Email, &u.Senha, &u.Setor)
	return u, err
}

func (r *UsuarioRepository) Create(ctx context.Context, u domain.Usuario) (domain.Usuario, error) {
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const q = `INSERT INTO usuarios (nome_usuario, email, senha, setor)
	           VALUES ($1, $2, $3, $4) RETURNING id`

	if err := r.DB.QueryRowContext(ctx, q, u.NomeUsuario, u.Email, u.Senha, u.Setor).Scan(&u.ID); err != nil {
		return domain.Usuario{}, database.ClassifyError("falha ao inserir usuário", err, constraintFields)
	}
	return u, nil
}

func (r *UsuarioRepository) FindByID(ctx context.Context, id int64) (domain.Usuario, error) {
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	return r.findOne(ctx, fmt.Sprintf("usuário %d", id), selectUsuario+` WHERE id = $1`, id)
}

// FindByEmail busca o usuário usado na autenticação.
func (r *UsuarioRepository) FindByEmail(ctx context.Context, email string) (domain.Usuario, error) {
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	return r.findOne(ctx, "usuário com o e-mail informado", selectUsuario+` WHERE email = $1`, email)
}

func (r *UsuarioRepository) findOne(ctx context.Context, what, q string, arg interface{}) (domain.Usuario, error) {
	u, err := scanUsuario(r.DB.QueryRowContext(ctx, q, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Usuario{}, apperror.NewNotFoundError(what)
	}
	if err != nil {
		return domain.Usuario{}, apperror.NewDBError("falha ao buscar usuário", err)
	}
	return u, nil
}

func (r *UsuarioRepository) FindAll(ctx context.Context) ([]domain.Usuario, error) {
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	return r.query(ctx, selectUsuario+` ORDER BY id`)
}

func (r *UsuarioRepository) FindPage(ctx context.Context, offset, limit int) ([]domain.Usuario, int, error) {
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM usuarios`).Scan(&total); err != nil {
		return nil, 0, apperror.NewDBError("falha ao contar usuários", err)
	}

	items, err := r.query(ctx, selectUsuario+` ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *UsuarioRepository) query(ctx context.Context, q string, args ...interface{}) ([]domain.Usuario, error) {
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, apperror.NewDBError("falha ao listar usuários", err)
	}
	defer rows.Close()

	usuarios := []domain.Usuario{}
	for rows.Next() {
		u, err := scanUsuario(rows)
		if err != nil {
			return nil, apperror.NewDBError("falha ao ler usuário", err)
		}
		usuarios = append(usuarios, u)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("falha ao iterar usuários", err)
	}
	return usuarios, nil
}

func (r *UsuarioRepository) Update(ctx context.Context, u domain.Usuario) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const q = `UPDATE usuarios SET nome_usuario = $1, email = $2, senha = $3, setor = $4 WHERE id = $5`

	res, err := r.DB.ExecContext(ctx, q, u.NomeUsuario, u.Email, u.Senha, u.Setor, u.ID)
	if err != nil {
		return false, database.ClassifyError("falha ao atualizar usuário", err, constraintFields)
	}
	return database.RowsAffected(res)
}

func (r *UsuarioRepository) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	res, err := r.DB.ExecContext(ctx, `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return false, apperror.NewDBError("falha ao remover usuário", err)
	}
	return database.RowsAffected(res)
}
