// ABOUTME: HTTP handlers exposing the fixed model and hardware catalogs
// ABOUTME: Read-only views over the process-wide constant tables

package handlers

import (
	"net/http"

	"github.com/inferlab/inference-cost-analyzer/internal/catalog"
)

// CatalogModels lists the supported model profiles with their pricing.
func (h *Handler) CatalogModels(w http.ResponseWriter, r *http.Request) {
	type entry struct {
		Profile catalog.ModelProfile   `json:"profile"`
		Pricing catalog.PricingProfile `json:"pricing"`
	}

	modelList := catalog.Models()
	out := make([]entry, 0, len(modelList))
	for _, m := range modelList {
		pricing, _ := catalog.Pricing(m.Name)
		out = append(out, entry{Profile: m, Pricing: pricing})
	}

	h.writeJSON(w, http.StatusOK, out)
}

// CatalogHardware lists the supported hardware profiles.
func (h *Handler) CatalogHardware(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, catalog.HardwareList())
}
