package repositories

import (
	"context"
	"errors"
	"fmt"

	"lmsconnector/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SyncLogRepository interface {
	Create(ctx context.Context, source string, status models.SyncStatus, recordsSynced *int, errorMessage *string) (*models.SyncLog, error)
	GetByID(ctx context.Context, id int) (*models.SyncLog, error)
	List(ctx context.Context, limit int) ([]models.SyncLog, error)
}

type syncLogRepo struct {
	db *pgxpool.Pool
}

func NewSyncLogRepository(db *pgxpool.Pool) SyncLogRepository {
	return &syncLogRepo{db: db}
}

const syncLogColumns = `id, sync_date, source, status, records_synced, error_message`

func scanSyncLog(row pgx.Row) (*models.SyncLog, error) {
	var l models.SyncLog
	if err := row.Scan(&l.ID, &l.SyncDate, &l.Source, &l.Status, &l.RecordsSynced, &l.ErrorMessage); err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *syncLogRepo) Create(ctx context.Context, source string, status models.SyncStatus, recordsSynced *int, errorMessage *string) (*models.SyncLog, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO sync_logs (source, status, records_synced, error_message)
		VALUES ($1, $2, $3, $4)
		RETURNING `+syncLogColumns,
		source, status, recordsSynced, errorMessage)

	l, err := scanSyncLog(row)
	if err != nil {
		return nil, fmt.Errorf("saving sync log: %w", err)
	}
	return l, nil
}

func (r *syncLogRepo) GetByID(ctx context.Context, id int) (*models.SyncLog, error) {
	row := r.db.QueryRow(ctx, `SELECT `+syncLogColumns+` FROM sync_logs WHERE id = $1`, id)
	l, err := scanSyncLog(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading sync log %d: %w", id, err)
	}
	return l, nil
}

// List returns the most recent sync logs first.
func (r *syncLogRepo) List(ctx context.Context, limit int) ([]models.SyncLog, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+syncLogColumns+`
		FROM sync_logs
		ORDER BY sync_date DESC, id DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]models.SyncLog, 0)
	for rows.Next() {
		l, err := scanSyncLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, *l)
	}
	return logs, rows.Err()
}
