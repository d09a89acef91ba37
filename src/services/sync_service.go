package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"lmsconnector/src/models"
	"lmsconnector/src/repositories"
	"lmsconnector/src/schemas"
	"lmsconnector/src/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	StudentsFile  = "students.csv"
	ModulesFile   = "modules.csv"
	ResourcesFile = "resources.csv"
)

var (
	ErrInvalidScore     = errors.New("invalid score")
	ErrMissingStudentID = errors.New("missing student_id")
)

// RecordReader loads the rows of a named CSV export.
type RecordReader interface {
	ReadRecords(filename string) ([]map[string]string, error)
}

type SyncServiceI interface {
	Sync(ctx context.Context) (*schemas.SyncResult, error)
}

type SyncService struct {
	reader      RecordReader
	syncLogs    repositories.SyncLogRepository
	rawStudents repositories.RawStudentRepository
	rawGrades   repositories.RawGradeRepository
	source      string
	now         func() time.Time
}

func NewSyncService(reader RecordReader, syncLogs repositories.SyncLogRepository, rawStudents repositories.RawStudentRepository, rawGrades repositories.RawGradeRepository, source string) *SyncService {
	return &SyncService{
		reader:      reader,
		syncLogs:    syncLogs,
		rawStudents: rawStudents,
		rawGrades:   rawGrades,
		source:      source,
		now:         time.Now,
	}
}

// Sync runs one pass over the CSV exports. Student rows and their grades are
// written one by one without a surrounding transaction; a row that fails to
// persist is counted in FailedRecords and excluded from RecordsSynced. When
// the pass fails before its success log is written, an error log entry is
// recorded instead.
func (s *SyncService) Sync(ctx context.Context) (*schemas.SyncResult, error) {
	logger := utils.LoggerFromContext(ctx).WithFields(logrus.Fields{
		"run_id": uuid.NewString(),
		"source": s.source,
	})
	ctx = utils.WithLogger(ctx, logger)
	logger.Info("synchronizing LMS data")

	var syncLog *models.SyncLog
	result, err := s.run(ctx, &syncLog)
	if err != nil {
		logger.WithError(err).Error("synchronization failed")
		if syncLog == nil {
			zero := 0
			message := err.Error()
			if _, logErr := s.syncLogs.Create(ctx, s.source, models.SyncStatusError, &zero, &message); logErr != nil {
				logger.WithError(logErr).Error("error log entry not recorded")
			}
		}
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"students":       result.Data.Students,
		"modules":        result.Data.Modules,
		"resources":      result.Data.Resources,
		"records_synced": result.RecordsSynced,
		"failed_records": result.FailedRecords,
		"sync_log_id":    result.SyncLogID,
	}).Info("synchronization succeeded")
	return result, nil
}

func (s *SyncService) run(ctx context.Context, syncLog **models.SyncLog) (*schemas.SyncResult, error) {
	students, err := s.reader.ReadRecords(StudentsFile)
	if err != nil {
		return nil, err
	}
	modules, err := s.reader.ReadRecords(ModulesFile)
	if err != nil {
		return nil, err
	}
	resources, err := s.reader.ReadRecords(ResourcesFile)
	if err != nil {
		return nil, err
	}

	failed := 0
	for _, student := range students {
		if err := s.saveStudent(ctx, student); err != nil {
			utils.LoggerFromContext(ctx).WithError(err).WithField("student_id", student["student_id"]).Warn("student record not synced")
			failed++
		}
	}

	total := len(students) + len(modules) + len(resources)
	recordsSynced := total - failed

	created, err := s.syncLogs.Create(ctx, s.source, models.SyncStatusSuccess, &recordsSynced, nil)
	if err != nil {
		return nil, err
	}
	*syncLog = created

	return &schemas.SyncResult{
		Status:        string(models.SyncStatusSuccess),
		Timestamp:     s.now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		SyncLogID:     created.ID,
		RecordsSynced: recordsSynced,
		FailedRecords: failed,
		Data: schemas.SyncData{
			Students:  len(students),
			Modules:   len(modules),
			Resources: len(resources),
			Records: schemas.SyncRecords{
				Students:  students,
				Modules:   modules,
				Resources: resources,
			},
		},
	}, nil
}

// saveStudent stores the raw row and, when it carries a score, a grade
// scored out of DefaultMaxGrade.
func (s *SyncService) saveStudent(ctx context.Context, student map[string]string) error {
	studentID := student["student_id"]
	if studentID == "" {
		return ErrMissingStudentID
	}

	if _, err := s.rawStudents.Create(ctx, studentID, s.source, student); err != nil {
		return err
	}

	score := strings.TrimSpace(student["score"])
	if score == "" {
		return nil
	}
	grade, err := strconv.ParseFloat(score, 64)
	if err != nil || math.IsNaN(grade) || math.IsInf(grade, 0) {
		return fmt.Errorf("%w %q for student %s", ErrInvalidScore, score, studentID)
	}

	moduleID := student["module_id"]
	if moduleID == "" {
		moduleID = models.DefaultModuleID
	}

	_, err = s.rawGrades.Create(ctx, &models.RawGrade{
		StudentID:      studentID,
		ModuleID:       moduleID,
		Grade:          grade,
		MaxGrade:       models.DefaultMaxGrade,
		SubmissionDate: s.now(),
	})
	return err
}
