package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.App.IsDev() {
		t.Fatalf("expected dev env by default, got %q", cfg.App.Env)
	}
	if cfg.DB.Path != "solar_calculator.db" {
		t.Fatalf("unexpected db path: %q", cfg.DB.Path)
	}
	if cfg.Engine.Timeout != 120*time.Second {
		t.Fatalf("unexpected engine timeout: %v", cfg.Engine.Timeout)
	}
}

func TestLoadRejectsEmptyDBPath(t *testing.T) {
	t.Setenv("PVOFFER_DB_PATH", "   ")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for empty db path")
	}
}

func TestDSNEnablesForeignKeys(t *testing.T) {
	d := DBConfig{Path: "offer.db", BusyTimeout: 5 * time.Second}
	dsn := d.DSN()
	if dsn != "file:offer.db?_busy_timeout=5000&_foreign_keys=on" {
		t.Fatalf("unexpected dsn: %q", dsn)
	}
}

func TestEngineArgs(t *testing.T) {
	e := EngineConfig{Command: "python", Script: "python_bridge.py"}
	args := e.Args()
	if len(args) != 1 || args[0] != "python_bridge.py" {
		t.Fatalf("unexpected args: %v", args)
	}
	e.Script = ""
	if got := e.Args(); got != nil {
		t.Fatalf("expected nil args, got %v", got)
	}
}
