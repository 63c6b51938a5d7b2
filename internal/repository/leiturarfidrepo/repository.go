package leiturarfidrepo

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
	"fk_leituras_rfid_leitor": "leitorId",
	"fk_leituras_rfid_moto":   "motoId",
}

// LeituraRfidRepository persiste os eventos de leitura RFID.
type LeituraRfidRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	Logger    logger.Logger
}

func NewLeituraRfidRepository(db *sql.DB, dbTimeout time.Duration, log logger.Logger) *LeituraRfidRepository {
	return &LeituraRfidRepository{DB: db, DBTimeout: dbTimeout, Logger: log}
}

const selectLeitura = `SELECT id, leitor_id, moto_id, data_hora FROM leituras_rfid`

func scanLeitura(s interface{ Scan(...interface{}) error }) (domain.LeituraRfid, error) {
	var l domain.LeituraRfid
	err := s.Scan(&l.ID, &l.LeitorID, &l.MotoID, &l.DataHora)
	return l, err
}

func (r *LeituraRfidRepository) Create(ctx context.Context, l domain.LeituraRfid) (domain.LeituraRfid, error) {
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const q = `INSERT INTO leituras_rfid (leitor_id, moto_id, data_hora)
	           VALUES ($1, $2, $3) RETURNING id`

	if err := r.DB.QueryRowContext(ctx, q, l.LeitorID, l.MotoID, l.DataHora).Scan(&l.ID); err != nil {
		return domain.LeituraRfid{}, database.ClassifyError("falha ao inserir leitura RFID", err, constraintFields)
	}
	return l, nil
}

func (r *LeituraRfidRepository) FindByID(ctx context.Context, id int64) (domain.LeituraRfid, error) {
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	l, err := scanLeitura(r.DB.QueryRowContext(ctx, selectLeitura+` WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.LeituraRfid{}, apperror.NewNotFoundError(fmt.Sprintf("leitura RFID %d", id))
	}
	if err != nil {
		return domain.LeituraRfid{}, apperror.NewDBError("falha ao buscar leitura RFID", err)
	}
	return l, nil
}

func (r *LeituraRfidRepository) FindAll(ctx context.Context) ([]domain.LeituraRfid, error) {
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	return r.query(ctx, selectLeitura+` ORDER BY id`)
}

func (r *LeituraRfidRepository) FindPage(ctx context.Context, offset, limit int) ([]domain.LeituraRfid, int, error) {
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM leituras_rfid`).Scan(&total); err != nil {
		return nil, 0, apperror.NewDBError("falha ao contar leituras RFID", err)
	}

	items, err := r.query(ctx, selectLeitura+` ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *LeituraRfidRepository) query(ctx context.Context, q string, args ...interface{}) ([]domain.LeituraRfid, error) {
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, apperror.NewDBError("falha ao listar leituras RFID", err)
	}
	defer rows.Close()

	leituras := []domain.LeituraRfid{}
	for rows.Next() {
		l, err := scanLeitura(rows)
		if err != nil {
			return nil, apperror.NewDBError("falha ao ler leitura RFID", err)
		}
		leituras = append(leituras, l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("falha ao iterar leituras RFID", err)
	}
	return leituras, nil
}

func (r *LeituraRfidRepository) Update(ctx context.Context, l domain.LeituraRfid) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const q = `UPDATE leituras_rfid SET leitor_id = $1, moto_id = $2, data_hora = $3 WHERE id = $4`

	res, err := r.DB.ExecContext(ctx, q, l.LeitorID, l.MotoID, l.DataHora, l.ID)
	if err != nil {
		return false, database.ClassifyError("falha ao atualizar leitura RFID", err, constraintFields)
	}
	return database.RowsAffected(res)
}

func (r *LeituraRfidRepository) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	res, err := r.DB.ExecContext(ctx, `DELETE FROM leituras_rfid WHERE id = $1`, id)
	if err != nil {
		return false, apperror.NewDBError("falha ao remover leitura RFID", err)
	}
	return database.RowsAffected(res)
}
