package filialrepo

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

// FilialRepository persiste filiais no PostgreSQL.
type FilialRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	Logger    logger.Logger
}

func NewFilialRepository(db *sql.DB, dbTimeout time.Duration, log logger.Logger) *FilialRepository {
	return &FilialRepository{DB: db, DBTimeout: dbTimeout, Logger: log}
}

const selectFilial = `SELECT id, nome, endereco, cidade, estado FROM filiais`

func scanFilial(s interface{ Scan(...interface{}) error }) (domain.Filial, error) {
	var f domain.Filial
	err := s.Scan(&f.ID, &f.Nome, &f.Endereco, &f.Cidade, &f.Estado)
	return f, err
}

func (r *FilialRepository) Create(ctx context.Context, f domain.Filial) (domain.Filial, error) {
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const q = `INSERT INTO filiais (nome, endereco, cidade, estado)
	           VALUES ($1, $2, $3, $4) RETURNING id`

	if err := r.DB.QueryRowContext(ctx, q, f.Nome, f.Endereco, f.Cidade, f.Estado).Scan(&f.ID); err != nil {
		return domain.Filial{}, database.ClassifyError("falha ao inserir filial", err, nil)
	}
	return f, nil
}

func (r *FilialRepository) FindByID(ctx context.Context, id int64) (domain.Filial, error) {
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	f, err := scanFilial(r.DB.QueryRowContext(ctx, selectFilial+` WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Filial{}, apperror.NewNotFoundError(fmt.Sprintf("filial %d", id))
	}
	if err != nil {
		return domain.Filial{}, apperror.NewDBError("falha ao buscar filial", err)
	}
	return f, nil
}

func (r *FilialRepository) FindAll(ctx context.Context) ([]domain.Filial, error) {
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	return r.query(ctx, selectFilial+` ORDER BY id`)
}

func (r *FilialRepository) FindPage(ctx context.Context, offset, limit int) ([]domain.Filial, int, error) {
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM filiais`).Scan(&total); err != nil {
		return nil, 0, apperror.NewDBError("falha ao contar filiais", err)
	}

	items, err := r.query(ctx, selectFilial+` ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *FilialRepository) query(ctx context.Context, q string, args ...interface{}) ([]domain.Filial, error) {
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, apperror.NewDBError("falha ao listar filiais", err)
	}
	defer rows.Close()

	filiais := []domain.Filial{}
	for rows.Next() {
		f, err := scanFilial(rows)
		if err != nil {
			return nil, apperror.NewDBError("falha ao ler filial", err)
		}
		filiais = append(filiais, f)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("falha ao iterar filiais", err)
	}
	return filiais, nil
}

func (r *FilialRepository) Update(ctx context.Context, f domain.Filial) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const q = `UPDATE filiais SET nome = $1, endereco = $2, cidade = $3, estado = $4 WHERE id = $5`

	res, err := r.DB.ExecContext(ctx, q, f.Nome, f.Endereco, f.Cidade, f.Estado, f.ID)
	if err != nil {
		return false, database.ClassifyError("falha ao atualizar filial", err, nil)
	}
	return database.RowsAffected(res)
}

// Delete falha com 409 enquanto houver pátios ligados à filial.
func (r *FilialRepository) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	res, err := r.DB.ExecContext(ctx, `DELETE FROM filiais WHERE id = $1`, id)
	if err != nil {
		return false, database.ClassifyDeleteError("falha ao remover filial", err)
	}
	return database.RowsAffected(res)
}
