package leitorrfidrepo

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
	"uq_leitores_rfid_identificador": "identificador",
	"fk_leitores_rfid_patio":         "patioId",
}

// LeitorRfidRepository persiste os leitores RFID cadastrados.
type LeitorRfidRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	Logger    logger.Logger
}

func NewLeitorRfidRepository(db *sql.DB, dbTimeout time.Duration, log logger.Logger) *LeitorRfidRepository {
	return &LeitorRfidRepository{DB: db, DBTimeout: dbTimeout, Logger: log}
}

const selectLeitor = `SELECT id, identificador, localizacao, patio_id FROM leitores_rfid`

func scanLeitor(s interface{ Scan(...interface{}) error }) (domain.LeitorRfid, error) {
	var l domain.LeitorRfid
	err := s.Scan(&l.ID, &l.Identificador, &l.Localizacao, &l.PatioID)
	return l, err
}

func (r *LeitorRfidRepository) Create(ctx context.Context, l domain.LeitorRfid) (domain.LeitorRfid, error) {
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const q = `INSERT INTO leitores_rfid (identificador, localizacao, patio_id)
	           VALUES ($1, $2, $3) RETURNING id`

	if err := r.DB.QueryRowContext(ctx, q, l.Identificador, l.Localizacao, l.PatioID).Scan(&l.ID); err != nil {
		return domain.LeitorRfid{}, database.ClassifyError("falha ao inserir leitor RFID", err, constraintFields)
	}
	return l, nil
}

func (r *LeitorRfidRepository) FindByID(ctx context.Context, id int64) (domain.LeitorRfid, error) {
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	l, err := scanLeitor(r.DB.QueryRowContext(ctx, selectLeitor+` WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.LeitorRfid{}, apperror.NewNotFoundError(fmt.Sprintf("leitor RFID %d", id))
	}
	if err != nil {
		return domain.LeitorRfid{}, apperror.NewDBError("falha ao buscar leitor RFID", err)
	}
	return l, nil
}

func (r *LeitorRfidRepository) FindAll(ctx context.Context) ([]domain.LeitorRfid, error) {
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	return r.query(ctx, selectLeitor+` ORDER BY id`)
}

func (r *LeitorRfidRepository) FindPage(ctx context.Context, offset, limit int) ([]domain.LeitorRfid, int, error) {
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM leitores_rfid`).Scan(&total); err != nil {
		return nil, 0, apperror.NewDBError("falha ao contar leitores RFID", err)
	}

	items, err := r.query(ctx, selectLeitor+` ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *LeitorRfidRepository) query(ctx context.Context, q string, args ...interface{}) ([]domain.LeitorRfid, error) {
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, apperror.NewDBError("falha ao listar leitores RFID", err)
	}
	defer rows.Close()

	leitores := []domain.LeitorRfid{}
	for rows.Next() {
		l, err := scanLeitor(rows)
		if err != nil {
			return nil, apperror.NewDBError("falha ao ler leitor RFID", err)
		}
		leitores = append(leitores, l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("falha ao iterar leitores RFID", err)
	}
	return leitores, nil
}

func (r *LeitorRfidRepository) Update(ctx context.Context, l domain.LeitorRfid) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const q = `UPDATE leitores_rfid SET identificador = $1, localizacao = $2, patio_id = $3 WHERE id = $4`

	res, err := r.DB.ExecContext(ctx, q, l.Identificador, l.Localizacao, l.PatioID, l.ID)
	if err != nil {
		return false, database.ClassifyError("falha ao atualizar leitor RFID", err, constraintFields)
	}
	return database.RowsAffected(res)
}

func (r *LeitorRfidRepository) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	res, err := r.DB.ExecContext(ctx, `DELETE FROM leitores_rfid WHERE id = $1`, id)
	if err != nil {
		return false, database.ClassifyDeleteError("falha ao remover leitor RFID", err)
	}
	return database.RowsAffected(res)
}
