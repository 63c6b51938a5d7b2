package motorepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"mottufind/internal/domain"
	apperror "mottufind/internal/errors"
	"mottufind/internal/pkg/cache"
	"mottufind/internal/pkg/database"
	"mottufind/internal/pkg/logger"
)

var constraintFields = map[string]string{
	"uq_motos_placa": "placa",
	"fk_motos_patio": "patioId",
}

// Chave de cache das motos buscadas por placa.
const motoCacheKey = "moto:placa:%s"

// MotoRepository persiste motos no PostgreSQL e mantém as buscas por placa no Redis (cache-aside).
type MotoRepository struct {
	DB        *sql.DB
	Cache     cache.Client
	DBTimeout time.Duration
	CacheTTL  time.Duration
	Logger    logger.Logger
}

func NewMotoRepository(db *sql.DB, cacheClient cache.Client, dbTimeout, cacheTTL time.Duration, log logger.Logger) *MotoRepository {
	return &MotoRepository{
		DB:        db,
		Cache:     cacheClient,
		DBTimeout: dbTimeout,
		CacheTTL:  cacheTTL,
		Logger:    log,
	}
}

const selectMoto = `SELECT id, placa, modelo, ano, status, patio_id FROM motos`

func scanMoto(s interface{ Scan(...interface{}) error }) (domain.Moto, error) {
	var m domain.Moto
	err := s.Scan(&m.ID, &m.Placa, &m.Modelo, &m.Ano, &m.Status, &m.PatioID)
	return m, err
}

func (r *MotoRepository) Create(ctx context.Context, m domain.Moto) (domain.Moto, error) {
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const q = `INSERT INTO motos (placa, modelo, ano, status, patio_id)
	           VALUES ($1, $2, $3, $4, $5) RETURNING id`

	if err := r.DB.QueryRowContext(ctx, q, m.Placa, m.Modelo, m.Ano, m.Status, m.PatioID).Scan(&m.ID); err != nil {
		return domain.Moto{}, database.ClassifyError("falha ao inserir moto", err, constraintFields)
	}
	return m, nil
}

func (r *MotoRepository) FindByID(ctx context.Context, id int64) (domain.Moto, error) {
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	m, err := scanMoto(r.DB.QueryRowContext(ctx, selectMoto+` WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Moto{}, apperror.NewNotFoundError(fmt.Sprintf("moto %d", id))
	}
	if err != nil {
		return domain.Moto{}, apperror.NewDBError("falha ao buscar moto", err)
	}
	return m, nil
}

// FindByPlaca consulta o cache antes do banco. Falhas do cache só geram log.
func (r *MotoRepository) FindByPlaca(ctx context.Context, placa string) (domain.Moto, error) {
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	key := fmt.Sprintf(motoCacheKey, placa)
	var moto domain.Moto

	cached, err := r.Cache.Get(ctx, key)
	switch {
	case err == nil:
		if json.Unmarshal([]byte(cached), &moto) == nil {
			return moto, nil
		}
		r.Logger.Warn("Entrada de cache inválida, consultando o banco.", map[string]interface{}{"key": key})
	case !errors.Is(err, cache.ErrCacheMiss):
		r.Logger.Warn("Falha ao ler do cache.", map[string]interface{}{"key": key, "error": err.Error()})
	}

	moto, err = scanMoto(r.DB.QueryRowContext(ctx, selectMoto+` WHERE placa = $1`, placa))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Moto{}, apperror.NewNotFoundError(fmt.Sprintf("moto de placa %s", placa))
	}
	if err != nil {
		return domain.Moto{}, apperror.NewDBError("falha ao buscar moto por placa", err)
	}

	if data, err := json.Marshal(moto); err == nil {
		if err := r.Cache.Set(ctx, key, data, r.CacheTTL); err != nil {
			r.Logger.Warn("Falha ao gravar no cache.", map[string]interface{}{"key": key, "error": err.Error()})
		}
	}
	return moto, nil
}

func (r *MotoRepository) FindAll(ctx context.Context) ([]domain.Moto, error) {
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	return r.query(ctx, selectMoto+` ORDER BY id`)
}

func (r *MotoRepository) FindPage(ctx context.Context, offset, limit int) ([]domain.Moto, int, error) {
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM motos`).Scan(&total); err != nil {
		return nil, 0, apperror.NewDBError("falha ao contar motos", err)
	}

	items, err := r.query(ctx, selectMoto+` ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *MotoRepository) query(ctx context.Context, q string, args ...interface{}) ([]domain.Moto, error) {
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, apperror.NewDBError("falha ao listar motos", err)
	}
	defer rows.Close()

	motos := []domain.Moto{}
	for rows.Next() {
		m, err := scanMoto(rows)
		if err != nil {
			return nil, apperror.NewDBError("falha ao ler moto", err)
		}
		motos = append(motos, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("falha ao iterar motos", err)
	}
	return motos, nil
}

// Update grava a moto pelo id e invalida o cache da placa antiga e da nova.
func (r *MotoRepository) Update(ctx context.Context, m domain.Moto) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const q = `UPDATE motos AS m
	           SET placa = $1, modelo = $2, ano = $3, status = $4, patio_id = $5
	           FROM (SELECT id, placa FROM motos WHERE id = $6) AS old
	           WHERE m.id = old.id
	           RETURNING old.placa`

	var oldPlaca string
	err := r.DB.QueryRowContext(ctx, q, m.Placa, m.Modelo, m.Ano, m.Status, m.PatioID, m.ID).Scan(&oldPlaca)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, database.ClassifyError("falha ao atualizar moto", err, constraintFields)
	}
	r.invalidate(ctx, oldPlaca, m.Placa)
	return true, nil
}

// UpdateByPlaca grava a moto identificada pela placa atual.
func (r *MotoRepository) UpdateByPlaca(ctx context.Context, placa string, m domain.Moto) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const q = `UPDATE motos SET placa = $1, modelo = $2, ano = $3, status = $4, patio_id = $5 WHERE placa = $6`

	res, err := r.DB.ExecContext(ctx, q, m.Placa, m.Modelo, m.Ano, m.Status, m.PatioID, placa)
	if err != nil {
		return false, database.ClassifyError("falha ao atualizar moto", err, constraintFields)
	}
	ok, err := database.RowsAffected(res)
	if ok {
		r.invalidate(ctx, placa, m.Placa)
	}
	return ok, err
}

func (r *MotoRepository) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var placa string
	err := r.DB.QueryRowContext(ctx, `DELETE FROM motos WHERE id = $1 RETURNING placa`, id).Scan(&placa)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, database.ClassifyDeleteError("falha ao remover moto", err)
	}
	r.invalidate(ctx, placa)
	return true, nil
}

func (r *MotoRepository) DeleteByPlaca(ctx context.Context, placa string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	res, err := r.DB.ExecContext(ctx, `DELETE FROM motos WHERE placa = $1`, placa)
	if err != nil {
		return false, database.ClassifyDeleteError("falha ao remover moto", err)
	}
	ok, err := database.RowsAffected(res)
	if ok {
		r.invalidate(ctx, placa)
	}
	return ok, err
}

func (r *MotoRepository) invalidate(ctx context.Context, placas ...string) {
	seen := make(map[string]bool, len(placas))
	for _, p := range placas {
		if seen[p] {
			continue
		}
		seen[p] = true
		key := fmt.Sprintf(motoCacheKey, p)
		if err := r.Cache.Delete(ctx, key); err != nil {
			r.Logger.Warn("Falha ao invalidar cache.", map[string]interface{}{"key": key, "error": err.Error()})
		}
	}
}
