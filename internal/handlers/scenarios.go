// ABOUTME: HTTP handler for the preset scenario comparison endpoint
// ABOUTME: Runs the standard three-way sweep at a caller-chosen token count

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/inferlab/inference-cost-analyzer/internal/engine"
	"github.com/inferlab/inference-cost-analyzer/internal/models"
)

type compareRequest struct {
	Tokens int `json:"tokens"`
}

// CompareScenarios runs the preset scenario sweep.
func (h *Handler) CompareScenarios(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestBody())

	var in compareRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		if err.Error() == "http: request body too large" {
			h.writeError(w, "Request body too large", http.StatusBadRequest)
			return
		}
		h.writeError(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	tokens := in.Tokens
	if tokens == 0 {
		tokens = h.cfg.CompareTokens
	}
	if tokens < 0 {
		h.writeEngineError(w, &models.InvalidParameterError{
			Param: "tokens", Value: tokens, Reason: "must be a positive integer",
		})
		return
	}

	comparison, err := h.calc.CompareScenarios(r.Context(), engine.Presets(tokens))
	if err != nil {
		h.writeEngineError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, comparison)
}
