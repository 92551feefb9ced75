// ABOUTME: Entry point for the cardtable CLI: demo table TUI, headless inspector, decklist tools.
// ABOUTME: Subcommands: play (default), serve, decks, version, help.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/2389-research/cardtable/tui"
	"github.com/2389-research/cardtable/web"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

func main() {
	loadDotEnvAuto()
	os.Exit(run(os.Args[1:]))
}

// run dispatches the subcommand and returns the process exit code.
func run(args []string) int {
	cmd := "play"
	if len(args) > 0 {
		switch args[0] {
		case "-h", "-help", "--help":
			cmd, args = "help", args[1:]
		case "-version", "--version":
			cmd, args = "version", args[1:]
		default:
			if !strings.HasPrefix(args[0], "-") {
				cmd, args = args[0], args[1:]
			}
		}
	}

	switch cmd {
	case "play":
		return runPlay(args)
	case "serve":
		return runServe(args)
	case "decks":
		cfg, err := configFromEnv()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		return runDecks(cfg, args)
	case "version":
		fmt.Printf("cardtable %s\n", version)
		return 0
	case "help":
		printHelp(os.Stdout, version)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmd)
		printHelp(os.Stderr, version)
		return 2
	}
}

// runPlay deals the demo table and runs the TUI. With --serve the HTTP
// inspector runs alongside, fed snapshots published from the TUI loop.
func runPlay(args []string) int {
	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() { printHelp(os.Stderr, version) }
	serve := fs.Bool("serve", false, "also start the HTTP inspector")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := configFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	if cfg.NoColor {
		os.Setenv("NO_COLOR", "1")
	}

	game, err := buildDemoGame(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	model := tui.NewAppModel(game.table, game.views, game.events)

	if *serve {
		holder := web.NewSnapshotHolder(game.table.Snapshot())
		model.OnChange = holder.Publish

		srv, err := web.NewServer(web.ServerConfig{
			Addr:     cfg.Bind,
			Snapshot: holder.Current,
			Rules:    game.rulesFunc(),
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				fmt.Fprintf(os.Stderr, "inspector error: %v\n", err)
			}
		}()
		fmt.Fprintf(os.Stderr, "inspector listening on http://%s\n", cfg.Bind)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		return 1
	}
	return 0
}

// runServe builds the demo table and serves the inspector without the TUI.
func runServe(args []string) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() { printHelp(os.Stderr, version) }
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := configFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	srv, err := buildInspector(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	// Set up context with signal handling for graceful shutdown.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nInterrupted, shutting down...")
		cancel()
	}()

	httpServer := &http.Server{
		Addr:              cfg.Bind,
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		httpServer.Close()
	}()

	fmt.Fprintf(os.Stderr, "inspector listening on http://%s\n", cfg.Bind)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// buildInspector deals a demo table and wraps it in the inspector server. The
// table is never mutated after setup, so handlers read it directly.
func buildInspector(cfg *appConfig) (*web.Server, error) {
	game, err := buildDemoGame(cfg)
	if err != nil {
		return nil, err
	}
	return web.NewServer(web.ServerConfig{
		Addr:     cfg.Bind,
		Snapshot: game.table.Snapshot,
		Rules:    web.TableRules(game.table),
	})
}
