package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"lmsconnector/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RawStudentRepository interface {
	Create(ctx context.Context, studentID, lmsSource string, payload interface{}) (*models.RawStudent, error)
	Count(ctx context.Context) (int, error)
}

type rawStudentRepo struct {
	db *pgxpool.Pool
}

func NewRawStudentRepository(db *pgxpool.Pool) RawStudentRepository {
	return &rawStudentRepo{db: db}
}

// Create stores payload verbatim as JSON. The table has no unique key, so
// the ON CONFLICT clause never fires and every call inserts a row. A nil
// record with a nil error means the insert was skipped as a duplicate.
func (r *rawStudentRepo) Create(ctx context.Context, studentID, lmsSource string, payload interface{}) (*models.RawStudent, error) {
	rawData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding raw data for student %s: %w", studentID, err)
	}

	var s models.RawStudent
	err = r.db.QueryRow(ctx, `
		INSERT INTO raw_student_data (student_id, lms_source, raw_data)
		VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING
		RETURNING id, student_id, lms_source, raw_data, synced_at`,
		studentID, lmsSource, rawData,
	).Scan(&s.ID, &s.StudentID, &s.LMSSource, &s.RawData, &s.SyncedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("saving raw student data for %s: %w", studentID, err)
	}
	return &s, nil
}

func (r *rawStudentRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM raw_student_data`).Scan(&count)
	return count, err
}
