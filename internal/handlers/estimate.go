// ABOUTME: HTTP handler for the estimate endpoint
// ABOUTME: Decodes a calculation request and returns the computed estimate

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/inferlab/inference-cost-analyzer/internal/models"
)

// estimateRequest mirrors the engine request with string identifiers so
// unknown values surface as engine validation errors, not decode errors.
type estimateRequest struct {
	Model        string `json:"model"`
	Tokens       int    `json:"tokens"`
	BatchSize    int    `json:"batch_size"`
	Hardware     string `json:"hardware"`
	Deployment   string `json:"deployment"`
	InputTokens  int    `json:"input_tokens"`
	OutputTokens int    `json:"output_tokens"`
}

// toEngineRequest passes identifiers through unparsed; the engine owns
// validation and its typed errors carry the offending values.
func (in estimateRequest) toEngineRequest() models.CalculationRequest {
	return models.CalculationRequest{
		Model:        models.ModelClass(in.Model),
		Tokens:       in.Tokens,
		BatchSize:    in.BatchSize,
		Hardware:     models.HardwareType(in.Hardware),
		Deployment:   models.DeploymentMode(in.Deployment),
		InputTokens:  in.InputTokens,
		OutputTokens: in.OutputTokens,
	}
}

// Estimate computes a single inference estimate.
func (h *Handler) Estimate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestBody())

	var in estimateRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		if err.Error() == "http: request body too large" {
			h.writeError(w, "Request body too large", http.StatusBadRequest)
			return
		}
		h.writeError(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if in.BatchSize == 0 {
		in.BatchSize = 1
	}

	result, err := h.calc.Calculate(in.toEngineRequest())
	if err != nil {
		h.writeEngineError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}
