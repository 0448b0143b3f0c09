// ABOUTME: Tests for the action selection menu
// ABOUTME: Validates navigation and selection messages

package menu

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestMenuNavigation(t *testing.T) {
	m := New()

	if m.Selected() != ActionEstimate {
		t.Errorf("initial selection = %v, want ActionEstimate", m.Selected())
	}

	m.Update(keyMsg("down"))
	if m.Selected() != ActionCompare {
		t.Errorf("after down, selection = %v, want ActionCompare", m.Selected())
	}

	m.Update(keyMsg("down"))
	if m.Selected() != ActionRecommendations {
		t.Errorf("after two downs, selection = %v, want ActionRecommendations", m.Selected())
	}

	m.Update(keyMsg("down"))
	if m.Selected() != ActionQuit {
		t.Errorf("after three downs, selection = %v, want ActionQuit", m.Selected())
	}

	// Cursor stops at the last entry
	m.Update(keyMsg("down"))
	if m.Selected() != ActionQuit {
		t.Errorf("cursor moved past last entry: %v", m.Selected())
	}

	m.Update(keyMsg("up"))
	if m.Selected() != ActionRecommendations {
		t.Errorf("after up, selection = %v, want ActionRecommendations", m.Selected())
	}
}

func TestMenuEnterEmitsSelection(t *testing.T) {
	m := New()
	m.Update(keyMsg("down"))

	_, cmd := m.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("enter did not produce a command")
	}

	msg, ok := cmd().(ActionSelectedMsg)
	if !ok {
		t.Fatalf("command produced %T, want ActionSelectedMsg", cmd())
	}
	if msg.Action != ActionCompare {
		t.Errorf("selected action = %v, want ActionCompare", msg.Action)
	}
}

func TestMenuQShortcutQuits(t *testing.T) {
	m := New()

	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q did not produce a command")
	}

	msg, ok := cmd().(ActionSelectedMsg)
	if !ok {
		t.Fatalf("command produced %T, want ActionSelectedMsg", cmd())
	}
	if msg.Action != ActionQuit {
		t.Errorf("selected action = %v, want ActionQuit", msg.Action)
	}
}

func TestMenuView(t *testing.T) {
	m := New()
	view := m.View()

	for _, want := range []string{"Inference Cost Analyzer", "Estimate a request", "Compare scenarios", "Recommendations", "Quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
