// ABOUTME: Tests for the card detail panel and its glamour rules rendering.
// ABOUTME: Covers set/clear, live-card sourcing, and fallback for empty rules.
package tui

import (
	"strings"
	"testing"

	"github.com/2389-research/cardtable/engine"
)

func TestDetailPanelEmpty(t *testing.T) {
	m := NewDetailPanelModel()
	if !strings.Contains(m.View(), "No card selected") {
		t.Errorf("expected placeholder, got %q", m.View())
	}
}

func TestDetailPanelSetActiveCard(t *testing.T) {
	m := NewDetailPanelModel()
	m.SetSize(60, 20)
	m.SetActiveCard(CardDetail{
		Name:      "Ember Imp",
		Container: "hand",
		Held:      true,
		Rules:     "Deal **2 damage** when played.",
	})

	view := m.View()
	for _, want := range []string{"Ember Imp", "hand", "held"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	// Glamour strips the markdown emphasis markers
	if strings.Contains(view, "**2 damage**") {
		t.Error("rules markdown should be rendered, not shown raw")
	}
	if !strings.Contains(view, "2 damage") {
		t.Error("rendered rules should keep the text content")
	}
}

func TestDetailPanelSetActiveFromCard(t *testing.T) {
	m := NewDetailPanelModel()
	card := engine.NewCard("Tide Caller")
	card.Rules = "Draw a card."

	m.SetActiveFromCard(card, "deck")
	if m.active == nil || m.active.Name != "Tide Caller" {
		t.Fatal("expected active card from live card")
	}
	if m.active.Held {
		t.Error("idle card should not show as held")
	}
	if !strings.Contains(m.View(), "idle") {
		t.Error("expected idle state line")
	}
}

func TestDetailPanelSetActiveFromNilClears(t *testing.T) {
	m := NewDetailPanelModel()
	m.SetActiveCard(CardDetail{Name: "Something"})

	m.SetActiveFromCard(nil, "deck")
	if m.active != nil {
		t.Error("expected panel cleared for nil card")
	}
}

func TestDetailPanelEmptyRules(t *testing.T) {
	m := NewDetailPanelModel()
	m.SetActiveCard(CardDetail{Name: "Plain", Container: "deck"})

	if m.rendered != "" {
		t.Errorf("expected no rendered rules, got %q", m.rendered)
	}
	if !strings.Contains(m.View(), "Plain") {
		t.Error("view should still show the card name")
	}
}
