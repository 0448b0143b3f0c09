// ABOUTME: Declarative route table for API endpoints
// ABOUTME: Defines all routes with their HTTP methods and handlers

package handlers

import "net/http"

// Route defines an API endpoint with its HTTP method and handler.
type Route struct {
	Method  string           // HTTP method (GET, POST, etc.)
	Path    string           // URL path (e.g., "/api/v1/health")
	Handler http.HandlerFunc // Handler function
}

// Routes returns all API routes for registration.
func (h *Handler) Routes() []Route {
	return []Route{
		// Health
		{Method: http.MethodGet, Path: "/api/v1/health", Handler: h.Health},

		// Catalog
		{Method: http.MethodGet, Path: "/api/v1/catalog/models", Handler: h.CatalogModels},
		{Method: http.MethodGet, Path: "/api/v1/catalog/hardware", Handler: h.CatalogHardware},

		// Estimation
		{Method: http.MethodPost, Path: "/api/v1/estimate", Handler: h.Estimate},
		{Method: http.MethodPost, Path: "/api/v1/scenarios/compare", Handler: h.CompareScenarios},
	}
}
