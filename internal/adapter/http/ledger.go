package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// handleCampaignLedger returns the route ledger of the campaign {id}.
func (h *Handler) handleCampaignLedger(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	ledger, err := h.svc.LedgerByCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "campaign ledger", err)
		return
	}
	h.writeJSON(w, http.StatusOK, NewLedgerResponse(ledger))
}

// handleUnitLedger returns the route ledger of the reporting unit {unitID}.
func (h *Handler) handleUnitLedger(w http.ResponseWriter, r *http.Request) {
	unitID := chi.URLParam(r, "unitID")
	if unitID == "" {
		http.Error(w, "missing unit id", http.StatusBadRequest)
		return
	}
	ledger, err := h.svc.LedgerByUnit(r.Context(), unitID)
	if err != nil {
		h.writeError(w, r, "unit ledger", err)
		return
	}
	h.writeJSON(w, http.StatusOK, NewLedgerResponse(ledger))
}
