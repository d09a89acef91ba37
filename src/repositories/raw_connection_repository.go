package repositories

import (
	"context"
	"fmt"

	"lmsconnector/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type RawConnectionRepository interface {
	Create(ctx context.Context, c *models.RawConnection) (*models.RawConnection, error)
	Count(ctx context.Context) (int, error)
}

type rawConnectionRepo struct {
	db *pgxpool.Pool
}

func NewRawConnectionRepository(db *pgxpool.Pool) RawConnectionRepository {
	return &rawConnectionRepo{db: db}
}

func (r *rawConnectionRepo) Create(ctx context.Context, c *models.RawConnection) (*models.RawConnection, error) {
	var saved models.RawConnection
	err := r.db.QueryRow(ctx, `
		INSERT INTO raw_connections (student_id, connection_time, session_duration, pages_visited)
		VALUES ($1, $2, $3, $4)
		RETURNING id, student_id, connection_time, session_duration, pages_visited, synced_at`,
		c.StudentID, c.ConnectionTime, c.SessionDuration, c.PagesVisited,
	).Scan(&saved.ID, &saved.StudentID, &saved.ConnectionTime, &saved.SessionDuration, &saved.PagesVisited, &saved.SyncedAt)
	if err != nil {
		return nil, fmt.Errorf("saving connection for %s: %w", c.StudentID, err)
	}
	return &saved, nil
}

func (r *rawConnectionRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM raw_connections`).Scan(&count)
	return count, err
}
