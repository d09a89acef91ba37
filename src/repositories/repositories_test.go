package repositories_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"lmsconnector/src/database/dbtest"
	"lmsconnector/src/models"
	"lmsconnector/src/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncLogRepository(t *testing.T) {
	db := dbtest.SetupTestDB(t)
	repo := repositories.NewSyncLogRepository(db)
	ctx := context.Background()

	count := 12
	success, err := repo.Create(ctx, "CSV", models.SyncStatusSuccess, &count, nil)
	require.NoError(t, err)
	assert.NotZero(t, success.ID)
	assert.Equal(t, "CSV", success.Source)
	assert.Equal(t, models.SyncStatusSuccess, success.Status)
	require.NotNil(t, success.RecordsSynced)
	assert.Equal(t, 12, *success.RecordsSynced)
	assert.Nil(t, success.ErrorMessage)
	assert.False(t, success.SyncDate.IsZero())

	zero := 0
	message := "students.csv: file not found"
	failure, err := repo.Create(ctx, "CSV", models.SyncStatusError, &zero, &message)
	require.NoError(t, err)
	require.NotNil(t, failure.ErrorMessage)
	assert.Equal(t, message, *failure.ErrorMessage)

	t.Run("get by id", func(t *testing.T) {
		got, err := repo.GetByID(ctx, success.ID)
		require.NoError(t, err)
		assert.Equal(t, success.ID, got.ID)
		assert.Equal(t, 12, *got.RecordsSynced)

		_, err = repo.GetByID(ctx, failure.ID+1000)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("list newest first", func(t *testing.T) {
		logs, err := repo.List(ctx, 10)
		require.NoError(t, err)
		require.Len(t, logs, 2)
		assert.Equal(t, failure.ID, logs[0].ID)

		logs, err = repo.List(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, logs, 1)
	})

	t.Run("accepts a null record count", func(t *testing.T) {
		entry, err := repo.Create(ctx, "moodle", models.SyncStatusSuccess, nil, nil)
		require.NoError(t, err)
		assert.Nil(t, entry.RecordsSynced)
	})
}

func TestRawStudentRepository(t *testing.T) {
	db := dbtest.SetupTestDB(t)
	repo := repositories.NewRawStudentRepository(db)
	ctx := context.Background()

	payload := map[string]string{"student_id": "S1", "score": "85", "module_id": "M010"}
	saved, err := repo.Create(ctx, "S1", "CSV", payload)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "S1", saved.StudentID)
	assert.Equal(t, "CSV", saved.LMSSource)

	var stored map[string]string
	require.NoError(t, json.Unmarshal(saved.RawData, &stored))
	assert.Equal(t, payload, stored)

	t.Run("identical rows are not deduplicated", func(t *testing.T) {
		again, err := repo.Create(ctx, "S1", "CSV", payload)
		require.NoError(t, err)
		require.NotNil(t, again)
		assert.NotEqual(t, saved.ID, again.ID)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("rejects an oversized student id", func(t *testing.T) {
		long := make([]byte, 60)
		for i := range long {
			long[i] = 'x'
		}
		_, err := repo.Create(ctx, string(long), "CSV", payload)
		assert.Error(t, err)
	})
}

func TestRawGradeRepository(t *testing.T) {
	db := dbtest.SetupTestDB(t)
	repo := repositories.NewRawGradeRepository(db)
	ctx := context.Background()

	submitted := time.Date(2024, 9, 30, 14, 0, 0, 0, time.UTC)
	saved, err := repo.Create(ctx, &models.RawGrade{
		StudentID:      "S1",
		ModuleID:       "M010",
		Grade:          85,
		MaxGrade:       models.DefaultMaxGrade,
		SubmissionDate: submitted,
	})
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)
	assert.Equal(t, "S1", saved.StudentID)
	assert.Equal(t, "M010", saved.ModuleID)
	assert.Equal(t, 85.0, saved.Grade)
	assert.Equal(t, 100.0, saved.MaxGrade)
	assert.True(t, saved.SubmissionDate.Equal(submitted))

	t.Run("rejects grades beyond the column scale", func(t *testing.T) {
		_, err := repo.Create(ctx, &models.RawGrade{StudentID: "S2", ModuleID: "M001", Grade: 1000, MaxGrade: 100, SubmissionDate: submitted})
		assert.Error(t, err)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}

func TestRawConnectionRepository(t *testing.T) {
	db := dbtest.SetupTestDB(t)
	repo := repositories.NewRawConnectionRepository(db)
	ctx := context.Background()

	duration, pages := 45, 12
	connected := time.Date(2024, 10, 1, 8, 30, 0, 0, time.UTC)
	saved, err := repo.Create(ctx, &models.RawConnection{
		StudentID:       "S1",
		ConnectionTime:  connected,
		SessionDuration: &duration,
		PagesVisited:    &pages,
	})
	require.NoError(t, err)
	assert.True(t, saved.ConnectionTime.Equal(connected))
	assert.Equal(t, 45, *saved.SessionDuration)
	assert.Equal(t, 12, *saved.PagesVisited)

	optional, err := repo.Create(ctx, &models.RawConnection{StudentID: "S2", ConnectionTime: connected})
	require.NoError(t, err)
	assert.Nil(t, optional.SessionDuration)
	assert.Nil(t, optional.PagesVisited)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
