// ABOUTME: Tests for the HTTP handlers
// ABOUTME: Exercises estimate, compare, catalog, and health endpoints over httptest

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/inferlab/inference-cost-analyzer/internal/config"
	"github.com/inferlab/inference-cost-analyzer/internal/models"
)

func testHandler() *Handler {
	return NewHandler(&config.Config{
		Port:             "8080",
		MaxRequestBodyKB: 64,
		CompareTokens:    1000,
	})
}

func postJSON(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestEstimate_API13B(t *testing.T) {
	h := testHandler()
	rec := postJSON(t, h.Estimate, `{"model":"13B","tokens":500,"deployment":"api"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var result models.CalculationResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	// 2.0s network overhead + 500/50 tok/s server decode = 12.0s.
	if result.LatencySeconds != 12.0 {
		t.Errorf("LatencySeconds = %v, want 12.0", result.LatencySeconds)
	}
	// 250 in * 0.0002/1K + 250 out * 0.0004/1K = 0.000150.
	if result.CostPerRequestUSD != 0.000150 {
		t.Errorf("CostPerRequestUSD = %v, want 0.000150", result.CostPerRequestUSD)
	}
	if result.MemoryUsageGB != 0 {
		t.Errorf("MemoryUsageGB = %v, want 0 for API deployment", result.MemoryUsageGB)
	}
	if !result.HardwareCompatible {
		t.Error("HardwareCompatible = false, want true for API deployment")
	}
}

func TestEstimate_DefaultsBatchSizeToOne(t *testing.T) {
	h := testHandler()

	withDefault := postJSON(t, h.Estimate, `{"model":"7B","tokens":100,"hardware":"GPU_16GB","deployment":"local"}`)
	explicit := postJSON(t, h.Estimate, `{"model":"7B","tokens":100,"batch_size":1,"hardware":"GPU_16GB","deployment":"local"}`)

	if withDefault.Code != http.StatusOK || explicit.Code != http.StatusOK {
		t.Fatalf("statuses = %d, %d, want 200, 200", withDefault.Code, explicit.Code)
	}
	if withDefault.Body.String() != explicit.Body.String() {
		t.Errorf("omitted batch_size produced %s, explicit 1 produced %s",
			withDefault.Body.String(), explicit.Body.String())
	}
}

func TestEstimate_ValidationErrors(t *testing.T) {
	h := testHandler()

	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{
			name:    "unknown model",
			body:    `{"model":"70B","tokens":100,"deployment":"api"}`,
			wantMsg: "70B",
		},
		{
			name:    "unknown hardware",
			body:    `{"model":"7B","tokens":100,"hardware":"GPU_6GB","deployment":"local"}`,
			wantMsg: "GPU_6GB",
		},
		{
			name:    "invalid deployment mode",
			body:    `{"model":"7B","tokens":100,"deployment":"cloud"}`,
			wantMsg: "cloud",
		},
		{
			name:    "non-positive tokens",
			body:    `{"model":"7B","tokens":0,"deployment":"api"}`,
			wantMsg: "tokens",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, h.Estimate, tt.body)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400; body: %s", rec.Code, rec.Body.String())
			}

			var errResp errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &errResp); err != nil {
				t.Fatalf("decode error response: %v", err)
			}
			if errResp.Code != http.StatusBadRequest {
				t.Errorf("error code = %d, want 400", errResp.Code)
			}
			if !strings.Contains(errResp.Error, tt.wantMsg) {
				t.Errorf("error %q does not mention %q", errResp.Error, tt.wantMsg)
			}
		})
	}
}

func TestEstimate_InvalidJSON(t *testing.T) {
	h := testHandler()
	rec := postJSON(t, h.Estimate, `{not json`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestEstimate_BodyTooLarge(t *testing.T) {
	h := NewHandler(&config.Config{MaxRequestBodyKB: 1, CompareTokens: 1000})

	padding := bytes.Repeat([]byte("x"), 2048)
	body := `{"model":"7B","tokens":100,"deployment":"api","pad":"` + string(padding) + `"}`
	rec := postJSON(t, h.Estimate, body)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "too large") {
		t.Errorf("body %q does not mention size limit", rec.Body.String())
	}
}

func TestCompareScenarios_ReturnsThreePresets(t *testing.T) {
	h := testHandler()
	rec := postJSON(t, h.CompareScenarios, `{}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var comparison models.ScenarioComparison
	if err := json.Unmarshal(rec.Body.Bytes(), &comparison); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(comparison.Scenarios) != 3 {
		t.Fatalf("got %d scenarios, want 3", len(comparison.Scenarios))
	}

	wantNames := []string{"Development (7B local)", "Production (13B API)", "Enterprise (GPT-4 API)"}
	for i, want := range wantNames {
		if comparison.Scenarios[i].Name != want {
			t.Errorf("scenario %d name = %q, want %q", i, comparison.Scenarios[i].Name, want)
		}
	}

	// Empty body falls back to the configured token count.
	for _, s := range comparison.Scenarios {
		if s.Request.Tokens != 1000 {
			t.Errorf("scenario %s tokens = %d, want configured default 1000", s.Name, s.Request.Tokens)
		}
	}
}

func TestCompareScenarios_RejectsNegativeTokens(t *testing.T) {
	h := testHandler()
	rec := postJSON(t, h.CompareScenarios, `{"tokens":-5}`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400; body: %s", rec.Code, rec.Body.String())
	}
}

func TestCatalogEndpoints(t *testing.T) {
	h := testHandler()

	rec := httptest.NewRecorder()
	h.CatalogModels(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/models", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("models status = %d, want 200", rec.Code)
	}
	var modelEntries []json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &modelEntries); err != nil {
		t.Fatalf("decode models: %v", err)
	}
	if len(modelEntries) != 3 {
		t.Errorf("got %d model entries, want 3", len(modelEntries))
	}

	rec = httptest.NewRecorder()
	h.CatalogHardware(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/hardware", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("hardware status = %d, want 200", rec.Code)
	}
	var hwEntries []json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &hwEntries); err != nil {
		t.Fatalf("decode hardware: %v", err)
	}
	if len(hwEntries) != 7 {
		t.Errorf("got %d hardware entries, want 7", len(hwEntries))
	}
}

func TestHealth(t *testing.T) {
	h := testHandler()
	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %v, want ok", body["status"])
	}
}

func TestRoutes_AllRoutesHaveRequiredFields(t *testing.T) {
	h := testHandler()
	routes := h.Routes()

	if len(routes) == 0 {
		t.Fatal("Routes() returned empty slice")
	}

	seen := make(map[string]bool)
	for i, route := range routes {
		if route.Method == "" {
			t.Errorf("Route %d: Method is empty", i)
		}
		if route.Handler == nil {
			t.Errorf("Route %d: Handler is nil", i)
		}
		if !strings.HasPrefix(route.Path, "/api/v1/") {
			t.Errorf("Route %d: Path %q must start with /api/v1/", i, route.Path)
		}
		key := route.Method + " " + route.Path
		if seen[key] {
			t.Errorf("duplicate route %s", key)
		}
		seen[key] = true
	}
}
