package services

import (
	"context"
	"fmt"
	"strings"

	"lmsconnector/src/models"
	"lmsconnector/src/repositories"
	"lmsconnector/src/schemas"
	"lmsconnector/src/utils"

	"github.com/go-playground/validator/v10"
)

type ConnectionServiceI interface {
	RecordConnection(ctx context.Context, req schemas.CreateConnectionRequest) (*models.RawConnection, error)
}

type ConnectionService struct {
	validate    *validator.Validate
	connections repositories.RawConnectionRepository
}

func NewConnectionService(validate *validator.Validate, connections repositories.RawConnectionRepository) *ConnectionService {
	return &ConnectionService{validate: validate, connections: connections}
}

func (s *ConnectionService) RecordConnection(ctx context.Context, req schemas.CreateConnectionRequest) (*models.RawConnection, error) {
	if err := s.validate.StructCtx(ctx, req); err != nil {
		return nil, utils.BadRequest(fmt.Sprintf("invalid fields: %s", strings.Join(utils.InvalidFields(err), ", ")))
	}

	return s.connections.Create(ctx, &models.RawConnection{
		StudentID:       req.StudentID,
		ConnectionTime:  *req.ConnectionTime,
		SessionDuration: req.SessionDuration,
		PagesVisited:    req.PagesVisited,
	})
}
