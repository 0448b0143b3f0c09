// ABOUTME: Tests for the compare and catalog commands
// ABOUTME: Validates preset sweep output and catalog listings

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/inferlab/inference-cost-analyzer/internal/models"
)

func TestRunCompare_JSONOutput(t *testing.T) {
	var buf bytes.Buffer

	if err := runCompare(context.Background(), &buf, 1000, true); err != nil {
		t.Fatalf("runCompare: %v", err)
	}

	var comparison models.ScenarioComparison
	if err := json.Unmarshal(buf.Bytes(), &comparison); err != nil {
		t.Fatalf("decode JSON output: %v", err)
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
}

func TestRunCompare_HumanOutput(t *testing.T) {
	var buf bytes.Buffer

	if err := runCompare(context.Background(), &buf, 1000, false); err != nil {
		t.Fatalf("runCompare: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Scenario Comparison", "Development", "Production", "Enterprise", "GPU_16GB"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunCompare_InvalidTokens(t *testing.T) {
	var buf bytes.Buffer

	if err := runCompare(context.Background(), &buf, 0, false); err == nil {
		t.Fatal("expected error for zero tokens")
	}
}

func TestRunCatalog_HumanOutput(t *testing.T) {
	var buf bytes.Buffer

	if err := runCatalog(&buf, false); err != nil {
		t.Fatalf("runCatalog: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Models", "Hardware", "API Pricing", "7B", "13B", "GPT-4", "CPU", "GPU_32GB"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunCatalog_JSONOutput(t *testing.T) {
	var buf bytes.Buffer

	if err := runCatalog(&buf, true); err != nil {
		t.Fatalf("runCatalog: %v", err)
	}

	var out struct {
		Models   []json.RawMessage `json:"models"`
		Hardware []json.RawMessage `json:"hardware"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("decode JSON output: %v", err)
	}
	if len(out.Models) != 3 {
		t.Errorf("got %d models, want 3", len(out.Models))
	}
	if len(out.Hardware) != 7 {
		t.Errorf("got %d hardware profiles, want 7", len(out.Hardware))
	}
}
