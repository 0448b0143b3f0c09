// ABOUTME: Health check endpoint
// ABOUTME: Reports process liveness and catalog sizes

package handlers

import (
	"net/http"

	"github.com/inferlab/inference-cost-analyzer/internal/catalog"
)

// Health reports service status. The engine has no dependencies, so
// liveness plus catalog integrity is the whole story.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{
		"status":            "ok",
		"models":            len(catalog.Models()),
		"hardware_profiles": len(catalog.HardwareList()),
	})
}
