// ABOUTME: HTTP handlers for the inference cost analyzer API
// ABOUTME: Health, catalog, estimate, and scenario comparison endpoints

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/inferlab/inference-cost-analyzer/internal/config"
	"github.com/inferlab/inference-cost-analyzer/internal/engine"
	"github.com/inferlab/inference-cost-analyzer/internal/models"
)

type Handler struct {
	cfg  *config.Config
	calc *engine.Calculator
}

func NewHandler(cfg *config.Config) *Handler {
	return &Handler{
		cfg:  cfg,
		calc: engine.NewCalculator(),
	}
}

// maxRequestBody returns the configured POST body limit in bytes.
func (h *Handler) maxRequestBody() int64 {
	return int64(h.cfg.MaxRequestBodyKB) * 1024
}

// errorResponse is the JSON shape of every error reply.
type errorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	h.writeJSON(w, code, errorResponse{Error: message, Code: code})
}

// writeEngineError maps engine validation failures to 400 responses and
// anything unexpected to 500.
func (h *Handler) writeEngineError(w http.ResponseWriter, err error) {
	var (
		modelErr *models.UnknownModelError
		hwErr    *models.UnknownHardwareError
		modeErr  *models.InvalidModeError
		paramErr *models.InvalidParameterError
	)
	if errors.As(err, &modelErr) || errors.As(err, &hwErr) ||
		errors.As(err, &modeErr) || errors.As(err, &paramErr) {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.writeError(w, "internal error", http.StatusInternalServerError)
}
