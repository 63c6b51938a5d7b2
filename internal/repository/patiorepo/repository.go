package patiorepo

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

// constraintFields mapeia as constraints da tabela patios para os campos do payload.
var constraintFields = map[string]string{
	"fk_patios_filial": "filialId",
}

// PatioRepository persiste pátios no PostgreSQL.
type PatioRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	Logger    logger.Logger
}

func NewPatioRepository(db *sql.DB, dbTimeout time.Duration, log logger.Logger) *PatioRepository {
	return &PatioRepository{DB: db, DBTimeout: dbTimeout, Logger: log}
}

const selectPatio = `SELECT id, nome, localizacao, capacidade, filial_id FROM patios`

func scanPatio(s interface{ Scan(...interface{}) error }) (domain.Patio, error) {
	var p domain.Patio
	err := s.Scan(&p.ID, &p.Nome, &p.Localizacao, &p.Capacidade, &p.FilialID)
	return p, err
}

// Create insere o pátio e devolve a entidade com o id gerado.
func (r *PatioRepository) Create(ctx context.Context, p domain.Patio) (domain.Patio, error) {
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const q = `INSERT INTO patios (nome, localizacao, capacidade, filial_id)
	           VALUES ($1, $2, $3, $4) RETURNING id`

	if err := r.DB.QueryRowContext(ctx, q, p.Nome, p.Localizacao, p.Capacidade, p.FilialID).Scan(&p.ID); err != nil {
		return domain.Patio{}, database.ClassifyError("falha ao inserir pátio", err, constraintFields)
	}
	return p, nil
}

// FindByID busca um pátio. Retorna NotFoundError se o id não existir.
func (r *PatioRepository) FindByID(ctx context.Context, id int64) (domain.Patio, error) {
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	p, err := scanPatio(r.DB.QueryRowContext(ctx, selectPatio+` WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Patio{}, apperror.NewNotFoundError(fmt.Sprintf("pátio %d", id))
	}
	if err != nil {
		return domain.Patio{}, apperror.NewDBError("falha ao buscar pátio", err)
	}
	return p, nil
}

// FindAll lista todos os pátios ordenados por id.
func (r *PatioRepository) FindAll(ctx context.Context) ([]domain.Patio, error) {
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	return r.query(ctx, selectPatio+` ORDER BY id`)
}

// FindPage devolve uma página de pátios e o total de registros.
func (r *PatioRepository) FindPage(ctx context.Context, offset, limit int) ([]domain.Patio, int, error) {
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM patios`).Scan(&total); err != nil {
		return nil, 0, apperror.NewDBError("falha ao contar pátios", err)
	}

	items, err := r.query(ctx, selectPatio+` ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *PatioRepository) query(ctx context.Context, q string, args ...interface{}) ([]domain.Patio, error) {
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, apperror.NewDBError("falha ao listar pátios", err)
	}
	defer rows.Close()

	patios := []domain.Patio{}
	for rows.Next() {
		p, err := scanPatio(rows)
		if err != nil {
			return nil, apperror.NewDBError("falha ao ler pátio", err)
		}
		patios = append(patios, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("falha ao iterar pátios", err)
	}
	return patios, nil
}

// Update grava todos os campos do pátio. Retorna false se o id não existir.
func (r *PatioRepository) Update(ctx context.Context, p domain.Patio) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const q = `UPDATE patios SET nome = $1, localizacao = $2, capacidade = $3, filial_id = $4 WHERE id = $5`

	res, err := r.DB.ExecContext(ctx, q, p.Nome, p.Localizacao, p.Capacidade, p.FilialID, p.ID)
	if err != nil {
		return false, database.ClassifyError("falha ao atualizar pátio", err, constraintFields)
	}
	return database.RowsAffected(res)
}

// Delete remove o pátio. Retorna false se o id não existir.
func (r *PatioRepository) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	res, err := r.DB.ExecContext(ctx, `DELETE FROM patios WHERE id = $1`, id)
	if err != nil {
		return false, database.ClassifyDeleteError("falha ao remover pátio", err)
	}
	return database.RowsAffected(res)
}
