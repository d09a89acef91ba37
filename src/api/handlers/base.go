package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"lmsconnector/src/repositories"
	"lmsconnector/src/schemas"
	"lmsconnector/src/services"
	"lmsconnector/src/utils"
)

type Handler struct {
	SyncService       services.SyncServiceI
	StudentService    services.StudentServiceI
	ConnectionService services.ConnectionServiceI
	SyncLogs          repositories.SyncLogRepository
	ServiceName       string
}

func NewHandler(
	syncService services.SyncServiceI,
	studentService services.StudentServiceI,
	connectionService services.ConnectionServiceI,
	syncLogs repositories.SyncLogRepository,
	serviceName string,
) *Handler {
	return &Handler{
		SyncService:       syncService,
		StudentService:    studentService,
		ConnectionService: connectionService,
		SyncLogs:          syncLogs,
		ServiceName:       serviceName,
	}
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, data interface{}, status int) {
	res, err := json.Marshal(data)
	if err != nil {
		utils.LoggerFromContext(r.Context()).WithError(err).Error("failed to encode response")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write(res)
}

func (h *Handler) HandleErrors(w http.ResponseWriter, r *http.Request, err error) {
	var httpErr *utils.HTTPError
	switch {
	case errors.As(err, &httpErr):
		h.respond(w, r, schemas.ErrorResponse{Message: httpErr.Message}, httpErr.Code)
	case errors.Is(err, repositories.ErrNotFound):
		h.respond(w, r, schemas.ErrorResponse{Message: err.Error()}, http.StatusNotFound)
	case errors.Is(err, context.DeadlineExceeded):
		h.respond(w, r, schemas.ErrorResponse{Message: "Request timed out"}, http.StatusGatewayTimeout)
	case err != nil:
		utils.LoggerFromContext(r.Context()).WithError(err).Error("request failed")
		h.respond(w, r, schemas.ErrorResponse{Message: "Internal Server Error", Error: err.Error()}, http.StatusInternalServerError)
	default:
		h.respond(w, r, schemas.ErrorResponse{Message: "Unhandled error"}, http.StatusInternalServerError)
	}
}
