// ABOUTME: Tests for CARDTABLE_* environment configuration loading.
// ABOUTME: Covers defaults, seed parsing, and the loopback bind guard.
package main

import (
	"errors"
	"os"
	"testing"
)

// clearCardtableEnv unsets every CARDTABLE_* variable for the test, restoring
// prior values afterward.
func clearCardtableEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CARDTABLE_BIND",
		"CARDTABLE_ALLOW_REMOTE",
		"CARDTABLE_CARDS",
		"CARDTABLE_SEED",
		"CARDTABLE_NO_COLOR",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestConfigFromEnvDefaults(t *testing.T) {
	clearCardtableEnv(t)

	cfg, err := configFromEnv()
	if err != nil {
		t.Fatalf("configFromEnv: %v", err)
	}
	if cfg.Bind != "127.0.0.1:7780" {
		t.Errorf("Bind = %q, want %q", cfg.Bind, "127.0.0.1:7780")
	}
	if cfg.AllowRemote {
		t.Error("expected AllowRemote=false by default")
	}
	if cfg.CardsDir != "" {
		t.Errorf("CardsDir = %q, want empty", cfg.CardsDir)
	}
	if cfg.Seed != 0 {
		t.Errorf("Seed = %d, want 0", cfg.Seed)
	}
	if cfg.NoColor {
		t.Error("expected NoColor=false by default")
	}
}

func TestConfigFromEnvCustomBind(t *testing.T) {
	clearCardtableEnv(t)
	t.Setenv("CARDTABLE_BIND", "127.0.0.1:9999")

	cfg, err := configFromEnv()
	if err != nil {
		t.Fatalf("configFromEnv: %v", err)
	}
	if cfg.Bind != "127.0.0.1:9999" {
		t.Errorf("Bind = %q, want %q", cfg.Bind, "127.0.0.1:9999")
	}
}

func TestConfigFromEnvLocalhostBindAllowed(t *testing.T) {
	clearCardtableEnv(t)
	t.Setenv("CARDTABLE_BIND", "localhost:7780")

	if _, err := configFromEnv(); err != nil {
		t.Errorf("expected localhost bind to be accepted, got %v", err)
	}
}

func TestConfigFromEnvRejectsNonLoopbackBind(t *testing.T) {
	clearCardtableEnv(t)
	t.Setenv("CARDTABLE_BIND", "0.0.0.0:7780")

	_, err := configFromEnv()
	if !errors.Is(err, ErrNonLoopbackBind) {
		t.Errorf("expected ErrNonLoopbackBind, got %v", err)
	}
}

func TestConfigFromEnvRejectsNonLocalHostname(t *testing.T) {
	clearCardtableEnv(t)
	t.Setenv("CARDTABLE_BIND", "example.com:7780")

	_, err := configFromEnv()
	if !errors.Is(err, ErrNonLoopbackBind) {
		t.Errorf("expected ErrNonLoopbackBind, got %v", err)
	}
}

func TestConfigFromEnvAllowRemoteBind(t *testing.T) {
	clearCardtableEnv(t)
	t.Setenv("CARDTABLE_BIND", "0.0.0.0:7780")
	t.Setenv("CARDTABLE_ALLOW_REMOTE", "true")

	cfg, err := configFromEnv()
	if err != nil {
		t.Fatalf("configFromEnv: %v", err)
	}
	if !cfg.AllowRemote {
		t.Error("expected AllowRemote=true")
	}
	if cfg.Bind != "0.0.0.0:7780" {
		t.Errorf("Bind = %q, want %q", cfg.Bind, "0.0.0.0:7780")
	}
}

func TestConfigFromEnvSeed(t *testing.T) {
	clearCardtableEnv(t)
	t.Setenv("CARDTABLE_SEED", "42")

	cfg, err := configFromEnv()
	if err != nil {
		t.Fatalf("configFromEnv: %v", err)
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
}

func TestConfigFromEnvBadSeed(t *testing.T) {
	clearCardtableEnv(t)
	t.Setenv("CARDTABLE_SEED", "not-a-number")

	if _, err := configFromEnv(); err == nil {
		t.Error("expected error for non-numeric CARDTABLE_SEED")
	}
}

func TestConfigFromEnvCardsDir(t *testing.T) {
	clearCardtableEnv(t)
	t.Setenv("CARDTABLE_CARDS", "/tmp/cards")

	cfg, err := configFromEnv()
	if err != nil {
		t.Fatalf("configFromEnv: %v", err)
	}
	if cfg.CardsDir != "/tmp/cards" {
		t.Errorf("CardsDir = %q, want %q", cfg.CardsDir, "/tmp/cards")
	}
}

func TestBoolEnvForms(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"0", false},
		{"", false},
		{"TRUE", false},
	}
	for _, tc := range tests {
		t.Run("value="+tc.value, func(t *testing.T) {
			t.Setenv("CARDTABLE_TEST_BOOL", tc.value)
			if got := boolEnv("CARDTABLE_TEST_BOOL"); got != tc.want {
				t.Errorf("boolEnv(%q) = %v, want %v", tc.value, got, tc.want)
			}
		})
	}
}

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("CARDTABLE_TEST_VAL", "")
	os.Unsetenv("CARDTABLE_TEST_VAL")
	if got := envOrDefault("CARDTABLE_TEST_VAL", "fallback"); got != "fallback" {
		t.Errorf("envOrDefault for unset key = %q, want %q", got, "fallback")
	}

	t.Setenv("CARDTABLE_TEST_VAL", "explicit")
	if got := envOrDefault("CARDTABLE_TEST_VAL", "fallback"); got != "explicit" {
		t.Errorf("envOrDefault for set key = %q, want %q", got, "explicit")
	}
}
