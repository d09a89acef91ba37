package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"lmsconnector/src/models"
	"lmsconnector/src/repositories"
	"lmsconnector/src/utils"
)

var errStorage = errors.New("connection refused")

type fakeReader struct {
	files map[string][]map[string]string
}

func (f *fakeReader) ReadRecords(filename string) ([]map[string]string, error) {
	records, ok := f.files[filename]
	if !ok {
		return nil, fmt.Errorf("%s: %w", filename, utils.ErrFileNotFound)
	}
	return records, nil
}

type fakeSyncLogRepo struct {
	mu      sync.Mutex
	logs    []models.SyncLog
	failFor map[models.SyncStatus]bool
}

func (f *fakeSyncLogRepo) Create(_ context.Context, source string, status models.SyncStatus, recordsSynced *int, errorMessage *string) (*models.SyncLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFor[status] {
		return nil, errStorage
	}
	l := models.SyncLog{
		ID:            len(f.logs) + 1,
		SyncDate:      time.Now(),
		Source:        source,
		Status:        status,
		RecordsSynced: recordsSynced,
		ErrorMessage:  errorMessage,
	}
	f.logs = append(f.logs, l)
	return &l, nil
}

func (f *fakeSyncLogRepo) GetByID(_ context.Context, id int) (*models.SyncLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, l := range f.logs {
		if l.ID == id {
			return &l, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeSyncLogRepo) List(_ context.Context, limit int) ([]models.SyncLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	logs := make([]models.SyncLog, 0, limit)
	for i := len(f.logs) - 1; i >= 0 && len(logs) < limit; i-- {
		logs = append(logs, f.logs[i])
	}
	return logs, nil
}

type fakeRawStudentRepo struct {
	mu       sync.Mutex
	students []models.RawStudent
	failIDs  map[string]bool
}

func (f *fakeRawStudentRepo) Create(_ context.Context, studentID, lmsSource string, payload interface{}) (*models.RawStudent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failIDs[studentID] {
		return nil, errStorage
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	s := models.RawStudent{ID: len(f.students) + 1, StudentID: studentID, LMSSource: lmsSource, RawData: raw, SyncedAt: time.Now()}
	f.students = append(f.students, s)
	return &s, nil
}

func (f *fakeRawStudentRepo) Count(context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.students), nil
}

type fakeRawGradeRepo struct {
	mu     sync.Mutex
	grades []models.RawGrade
	fail   bool
}

func (f *fakeRawGradeRepo) Create(_ context.Context, g *models.RawGrade) (*models.RawGrade, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return nil, errStorage
	}
	saved := *g
	saved.ID = len(f.grades) + 1
	saved.SyncedAt = time.Now()
	f.grades = append(f.grades, saved)
	return &saved, nil
}

func (f *fakeRawGradeRepo) Count(context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.grades), nil
}

type fakeRawConnectionRepo struct {
	connections []models.RawConnection
	fail        bool
}

func (f *fakeRawConnectionRepo) Create(_ context.Context, c *models.RawConnection) (*models.RawConnection, error) {
	if f.fail {
		return nil, errStorage
	}
	saved := *c
	saved.ID = len(f.connections) + 1
	saved.SyncedAt = time.Now()
	f.connections = append(f.connections, saved)
	return &saved, nil
}

func (f *fakeRawConnectionRepo) Count(context.Context) (int, error) {
	return len(f.connections), nil
}
