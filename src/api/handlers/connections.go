package handlers

import (
	"encoding/json"
	"net/http"

	"lmsconnector/src/schemas"
	"lmsconnector/src/utils"
)

func (h *Handler) CreateConnection(w http.ResponseWriter, r *http.Request) {
	var req schemas.CreateConnectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.HandleErrors(w, r, utils.BadRequest("invalid request body: "+err.Error()))
		return
	}

	connection, err := h.ConnectionService.RecordConnection(r.Context(), req)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	h.respond(w, r, connection, http.StatusCreated)
}
