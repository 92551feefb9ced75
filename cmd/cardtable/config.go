// ABOUTME: CLI configuration loaded from CARDTABLE_* environment variables.
// ABOUTME: The inspector refuses non-loopback binds unless remote access is explicitly enabled.
package main

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
)

// ErrNonLoopbackBind means CARDTABLE_BIND was set to a non-loopback address
// while remote access is disabled.
var ErrNonLoopbackBind = errors.New(
	"CARDTABLE_BIND is a non-loopback address but CARDTABLE_ALLOW_REMOTE is not true; set CARDTABLE_ALLOW_REMOTE=true to allow remote access",
)

// appConfig holds CLI configuration loaded from environment variables.
type appConfig struct {
	Bind        string // Inspector socket address (CARDTABLE_BIND, default: 127.0.0.1:7780)
	AllowRemote bool   // Allow non-loopback binds (CARDTABLE_ALLOW_REMOTE, default: false)
	CardsDir    string // Card definition directory (CARDTABLE_CARDS, default: built-in standard deck)
	Seed        uint64 // Shuffle seed (CARDTABLE_SEED, default: unseeded)
	NoColor     bool   // Disable styled terminal output (CARDTABLE_NO_COLOR, default: false)
}

// configFromEnv loads configuration from CARDTABLE_* environment variables
// with sensible defaults.
func configFromEnv() (*appConfig, error) {
	bind := envOrDefault("CARDTABLE_BIND", "127.0.0.1:7780")
	allowRemote := boolEnv("CARDTABLE_ALLOW_REMOTE")

	var seed uint64
	if raw := os.Getenv("CARDTABLE_SEED"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("CARDTABLE_SEED=%q is not an unsigned integer", raw)
		}
		seed = parsed
	}

	// Refuse non-loopback binds unless explicitly opting into remote access.
	if !allowRemote {
		if host, _, err := net.SplitHostPort(bind); err == nil && host != "" && !isLoopbackHost(host) {
			return nil, fmt.Errorf("%w: CARDTABLE_BIND=%s", ErrNonLoopbackBind, bind)
		}
	}

	return &appConfig{
		Bind:        bind,
		AllowRemote: allowRemote,
		CardsDir:    os.Getenv("CARDTABLE_CARDS"),
		Seed:        seed,
		NoColor:     boolEnv("CARDTABLE_NO_COLOR"),
	}, nil
}

// isLoopbackHost reports whether a bind host stays on the local machine. Only
// 127.0.0.0/8, ::1, and the literal "localhost" qualify.
func isLoopbackHost(host string) bool {
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func boolEnv(key string) bool {
	v := os.Getenv(key)
	return v == "true" || v == "1" || v == "yes"
}
