// ABOUTME: Tests for the inspector HTTP server and chi router.
// ABOUTME: Covers snapshot JSON, container lookup, rules rendering, and the index page.
package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/2389-research/cardtable/engine"
)

// newTestServer builds a server over a small live table: a deck with one
// rules-bearing card and a hand with one plain card.
func newTestServer(t *testing.T) (*Server, *engine.Table) {
	t.Helper()

	table := engine.NewTable(engine.TableConfig{})
	deck := engine.NewContainer(engine.ContainerConfig{})
	hand := engine.NewContainer(engine.ContainerConfig{})
	table.RegisterContainer(deck)
	table.RegisterContainer(hand)

	ace := engine.NewCard("Ace of Spades")
	ace.Rules = "Play this to **win** the trick."
	deck.Add(ace)
	hand.Add(engine.NewCard("Two of Hearts"))

	srv, err := NewServer(ServerConfig{
		Snapshot: table.Snapshot,
		Rules:    TableRules(table),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return srv, table
}

func TestServerHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status %q, got %q", "ok", body["status"])
	}
}

func TestServerTableSnapshot(t *testing.T) {
	srv, table := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/table", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type application/json, got %q", ct)
	}

	var snap engine.TableSnapshot
	if err := json.NewDecoder(rec.Body).Decode(&snap); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if snap.TableID != table.ID().String() {
		t.Errorf("expected table ID %q, got %q", table.ID().String(), snap.TableID)
	}
	if len(snap.Containers) != 2 {
		t.Fatalf("expected 2 containers, got %d", len(snap.Containers))
	}
	if snap.Containers[0].Cards[0].Name != "Ace of Spades" {
		t.Errorf("expected first card %q, got %q", "Ace of Spades", snap.Containers[0].Cards[0].Name)
	}
}

func TestServerContainerByID(t *testing.T) {
	srv, table := newTestServer(t)
	deck := table.Containers()[0]

	req := httptest.NewRequest(http.MethodGet, "/api/containers/"+strconv.Itoa(deck.ID()), nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var cs engine.ContainerSnapshot
	if err := json.NewDecoder(rec.Body).Decode(&cs); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if cs.ID != deck.ID() {
		t.Errorf("expected container ID %d, got %d", deck.ID(), cs.ID)
	}
	if cs.Count != 1 {
		t.Errorf("expected count 1, got %d", cs.Count)
	}
}

func TestServerContainerNotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/containers/999999", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestServerContainerBadID(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/containers/deck", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestServerCardRules(t *testing.T) {
	srv, table := newTestServer(t)
	ace := table.Containers()[0].Cards()[0]

	req := httptest.NewRequest(http.MethodGet, "/api/cards/"+ace.ID.String()+"/rules", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "Ace of Spades") {
		t.Errorf("expected body to contain card name, got %q", body)
	}
	if !strings.Contains(body, "<strong>win</strong>") {
		t.Errorf("expected markdown-rendered rules, got %q", body)
	}
}

func TestServerCardRulesNotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/cards/not-a-ulid/rules", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestServerCardRulesWithoutLookup(t *testing.T) {
	table := engine.NewTable(engine.TableConfig{})
	srv, err := NewServer(ServerConfig{Snapshot: table.Snapshot})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/cards/01ARZ3NDEKTSV4RRFFQ69G5FAV/rules", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestServerIndexPage(t *testing.T) {
	srv, table := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, table.ID().String()) {
		t.Errorf("expected body to contain table ID %q", table.ID().String())
	}
	if !strings.Contains(body, "/api/table") {
		t.Errorf("expected body to reference the snapshot endpoint")
	}
}

func TestNewServerRequiresSnapshot(t *testing.T) {
	if _, err := NewServer(ServerConfig{}); err == nil {
		t.Fatal("expected error for missing snapshot provider")
	}
}

func TestNewServerDefaultsAddr(t *testing.T) {
	table := engine.NewTable(engine.TableConfig{})
	srv, err := NewServer(ServerConfig{Snapshot: table.Snapshot})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if srv.Addr() != "127.0.0.1:7780" {
		t.Errorf("expected default addr 127.0.0.1:7780, got %q", srv.Addr())
	}
}
