package services

import (
	"context"
	"time"

	"lmsconnector/src/schemas"
	"lmsconnector/src/utils"

	"github.com/go-playground/validator/v10"
)

const (
	MissingStudentFieldsMessage = "The following fields are required: student_id, email, firstName, lastName"
	InvalidStudentBodyMessage   = "Invalid request body: student_id, email, firstName, lastName and class must be JSON strings"
)

type StudentServiceI interface {
	CreateStudent(ctx context.Context, req schemas.CreateStudentRequest) (*schemas.CreateStudentResponse, error)
}

// StudentService acknowledges student registrations. Nothing is persisted:
// the response only echoes the accepted fields.
type StudentService struct {
	validate *validator.Validate
	now      func() time.Time
}

func NewStudentService(validate *validator.Validate) *StudentService {
	return &StudentService{validate: validate, now: time.Now}
}

func (s *StudentService) CreateStudent(ctx context.Context, req schemas.CreateStudentRequest) (*schemas.CreateStudentResponse, error) {
	if err := s.validate.StructCtx(ctx, req); err != nil {
		utils.LoggerFromContext(ctx).WithField("fields", utils.InvalidFields(err)).Debug("rejected student creation")
		return nil, utils.BadRequest(MissingStudentFieldsMessage)
	}

	return &schemas.CreateStudentResponse{
		Message: "Student added successfully",
		Student: schemas.Student{
			StudentID: req.StudentID,
			Email:     req.Email,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Class:     req.Class,
			CreatedAt: s.now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		},
	}, nil
}
