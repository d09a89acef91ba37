package handlers

import (
	"context"
	"net/http"
	"strconv"

	"lmsconnector/src/schemas"
	"lmsconnector/src/utils"

	"github.com/go-chi/chi/v5"
)

const (
	defaultSyncLogLimit = 20
	maxSyncLogLimit     = 100
)

// Sync runs a synchronization pass. The pass is detached from the client
// connection so that a disconnect does not interrupt it halfway.
func (h *Handler) Sync(w http.ResponseWriter, r *http.Request) {
	ctx := context.WithoutCancel(r.Context())

	result, err := h.SyncService.Sync(ctx)
	if err != nil {
		h.respond(w, r, schemas.SyncErrorResponse{
			Status:  "error",
			Message: "Error while synchronizing LMS data",
			Error:   err.Error(),
		}, http.StatusInternalServerError)
		return
	}

	h.respond(w, r, result, http.StatusOK)
}

func (h *Handler) GetSyncLogs(w http.ResponseWriter, r *http.Request) {
	limit := defaultSyncLogLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 || parsed > maxSyncLogLimit {
			h.HandleErrors(w, r, utils.BadRequest("limit must be an integer between 1 and 100"))
			return
		}
		limit = parsed
	}

	logs, err := h.SyncLogs.List(r.Context(), limit)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	h.respond(w, r, logs, http.StatusOK)
}

func (h *Handler) GetSyncLogByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.HandleErrors(w, r, utils.BadRequest("sync log id must be an integer"))
		return
	}

	syncLog, err := h.SyncLogs.GetByID(r.Context(), id)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	h.respond(w, r, syncLog, http.StatusOK)
}
