// ABOUTME: Read-only HTTP inspector for a live card table behind a chi router.
// ABOUTME: Serves table snapshots as JSON and per-card rules rendered from markdown.
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/oklog/ulid/v2"
	"github.com/yuin/goldmark"

	"github.com/2389-research/cardtable/engine"
)

// SnapshotFunc returns a point-in-time copy of the table state. The owner
// goroutine decides when and how the copy is taken; the server never touches
// live engine state.
type SnapshotFunc func() engine.TableSnapshot

// CardRules is the rules text for one card, looked up on demand.
type CardRules struct {
	ID    string
	Name  string
	Rules string
}

// RulesFunc looks up a card's rules text by card ID. The second return value
// reports whether the card exists.
type RulesFunc func(id string) (CardRules, bool)

// ServerConfig holds the configuration for the inspector server.
type ServerConfig struct {
	Addr     string       // listen address (default: "127.0.0.1:7780")
	Snapshot SnapshotFunc // table state provider, required
	Rules    RulesFunc    // card rules lookup, optional
}

// Server is the read-only table inspector. It exposes snapshot JSON endpoints,
// a rules renderer, and a single polling HTML page. There are no mutation
// endpoints.
type Server struct {
	router   chi.Router
	addr     string
	snapshot SnapshotFunc
	rules    RulesFunc

	indexTmpl *template.Template
	rulesTmpl *template.Template
}

// NewServer creates a Server with all routes configured and templates parsed.
func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:7780"
	}
	if cfg.Snapshot == nil {
		return nil, fmt.Errorf("Snapshot must not be nil")
	}

	indexTmpl, err := template.ParseFS(ContentFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parse index template: %w", err)
	}
	rulesTmpl, err := template.ParseFS(ContentFS, "templates/rules.html")
	if err != nil {
		return nil, fmt.Errorf("parse rules template: %w", err)
	}

	s := &Server{
		addr:      cfg.Addr,
		snapshot:  cfg.Snapshot,
		rules:     cfg.Rules,
		indexTmpl: indexTmpl,
		rulesTmpl: rulesTmpl,
	}
	s.router = s.buildRouter()
	return s, nil
}

// ServeHTTP delegates to the chi router, satisfying http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server on the configured address with
// timeouts to prevent resource exhaustion from slow clients.
func (s *Server) ListenAndServe() error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}
	return srv.ListenAndServe()
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.addr
}

// buildRouter constructs the chi router with all routes and middleware.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/table", s.handleTable)
		r.Get("/containers/{id}", s.handleContainer)
		r.Get("/cards/{id}/rules", s.handleCardRules)
	})

	return r
}

// handleIndex renders the inspector page that polls the snapshot endpoint.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	snap := s.snapshot()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.indexTmpl.Execute(w, snap); err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// handleHealth returns a JSON health check response.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleTable returns the full table snapshot as JSON.
func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.snapshot())
}

// handleContainer returns a single container's snapshot as JSON.
func (s *Server) handleContainer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "container id must be an integer")
		return
	}

	snap := s.snapshot()
	for _, c := range snap.Containers {
		if c.ID == id {
			writeJSON(w, http.StatusOK, c)
			return
		}
	}
	writeJSONError(w, http.StatusNotFound, "container not found")
}

// rulesPageData is the view-model for the rules page template.
type rulesPageData struct {
	Name string
	Body template.HTML
}

// handleCardRules renders a card's rules markdown as an HTML page.
func (s *Server) handleCardRules(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if s.rules == nil {
		writeJSONError(w, http.StatusNotFound, "card not found")
		return
	}
	card, ok := s.rules(id)
	if !ok {
		writeJSONError(w, http.StatusNotFound, "card not found")
		return
	}

	data := rulesPageData{
		Name: card.Name,
		Body: markdownToHTML(card.Rules),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.rulesTmpl.Execute(w, data); err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// markdownToHTML converts a markdown string to HTML using goldmark. Goldmark
// escapes raw HTML in the input by default, so the result is safe to embed.
func markdownToHTML(input string) template.HTML {
	var buf bytes.Buffer
	md := goldmark.New()
	if err := md.Convert([]byte(input), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(input))
	}
	return template.HTML(buf.String())
}

// TableRules builds a RulesFunc that resolves card IDs against a table. Like
// SnapshotFunc, the caller is responsible for serializing access with the
// goroutine that owns the table.
func TableRules(table *engine.Table) RulesFunc {
	return func(id string) (CardRules, bool) {
		uid, err := ulid.Parse(id)
		if err != nil {
			return CardRules{}, false
		}
		card, ok := table.FindCard(uid)
		if !ok {
			return CardRules{}, false
		}
		return CardRules{ID: id, Name: card.Name, Rules: card.Rules}, true
	}
}
