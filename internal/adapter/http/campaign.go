package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// handleSaveCampaign upserts a campaign submitted by an advertiser and
// returns its id. Re-submitting the same owner, center and creative ref
// updates the supplied windows, radius and run time of the existing record.
func (h *Handler) handleSaveCampaign(w http.ResponseWriter, r *http.Request) {
	var req campaignRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.maxBodyBytes)).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	upsert, err := req.toDomain()
	if err != nil {
		h.writeError(w, r, "save campaign", err)
		return
	}
	id, err := h.svc.SaveCampaign(r.Context(), upsert)
	if err != nil {
		h.writeError(w, r, "save campaign", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]int64{"id": id})
}

// handleGetCampaign returns one campaign by its {id} path parameter.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	c, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "get campaign", err)
		return
	}
	h.writeJSON(w, http.StatusOK, newCampaignResponse(c))
}
