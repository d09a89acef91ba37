package handlers

import (
	"net/http"

	"lmsconnector/src/schemas"
)

func (h *Handler) Healthcheck(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, schemas.HealthResponse{Status: "ok", Service: h.ServiceName}, http.StatusOK)
}
