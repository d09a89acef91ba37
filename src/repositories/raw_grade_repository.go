package repositories

import (
	"context"
	"fmt"

	"lmsconnector/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type RawGradeRepository interface {
	Create(ctx context.Context, g *models.RawGrade) (*models.RawGrade, error)
	Count(ctx context.Context) (int, error)
}

type rawGradeRepo struct {
	db *pgxpool.Pool
}

func NewRawGradeRepository(db *pgxpool.Pool) RawGradeRepository {
	return &rawGradeRepo{db: db}
}

func (r *rawGradeRepo) Create(ctx context.Context, g *models.RawGrade) (*models.RawGrade, error) {
	var saved models.RawGrade
	err := r.db.QueryRow(ctx, `
		INSERT INTO raw_grades (student_id, module_id, grade, max_grade, submission_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, student_id, module_id, grade, max_grade, submission_date, synced_at`,
		g.StudentID, g.ModuleID, g.Grade, g.MaxGrade, g.SubmissionDate,
	).Scan(&saved.ID, &saved.StudentID, &saved.ModuleID, &saved.Grade, &saved.MaxGrade, &saved.SubmissionDate, &saved.SyncedAt)
	if err != nil {
		return nil, fmt.Errorf("saving grade for %s/%s: %w", g.StudentID, g.ModuleID, err)
	}
	return &saved, nil
}

func (r *rawGradeRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM raw_grades`).Scan(&count)
	return count, err
}
