package httpadapter

import (
	"encoding/json"
	"net/http"
)

// handleReport processes a position report from a display unit. The body
// is decoded into a reportRequest. On success it returns the selected
// campaign, or a fallback selection when none is eligible. Malformed JSON
// or coordinates produce HTTP 400; store failures HTTP 500.
func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	var req reportRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.maxBodyBytes)).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	report, err := req.toDomain()
	if err != nil {
		h.writeError(w, r, "report", err)
		return
	}
	res, err := h.svc.HandleReport(r.Context(), report)
	if err != nil {
		h.writeError(w, r, "report", err)
		return
	}
	h.writeJSON(w, http.StatusOK, newSelectionResponse(res))
}
