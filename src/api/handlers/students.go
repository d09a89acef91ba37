package handlers

import (
	"encoding/json"
	"net/http"

	"lmsconnector/src/schemas"
	"lmsconnector/src/services"
	"lmsconnector/src/utils"
)

func (h *Handler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	var req schemas.CreateStudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.LoggerFromContext(r.Context()).WithError(err).Debug("undecodable student body")
		h.HandleErrors(w, r, utils.BadRequest(services.InvalidStudentBodyMessage))
		return
	}

	student, err := h.StudentService.CreateStudent(r.Context(), req)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	h.respond(w, r, student, http.StatusCreated)
}
