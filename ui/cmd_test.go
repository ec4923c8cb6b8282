package ui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir string) string {
	t.Helper()
	file := filepath.Join(dir, "duelchess.json")
	body := `{"log_file": "` + filepath.ToSlash(filepath.Join(dir, "duel.log")) + `", "log_level": "debug"}`
	if err := os.WriteFile(file, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return file
}

func TestCLIBadFEN(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir)

	err := NewCommand().Run(context.Background(), []string{"duelchess", "--config", cfg, "cli", "--fen", "not a fen"})
	if err == nil || !strings.Contains(err.Error(), "load position") {
		t.Fatalf("err = %v", err)
	}

	logged, rerr := os.ReadFile(filepath.Join(dir, "duel.log"))
	if rerr != nil {
		t.Fatalf("log file: %v", rerr)
	}
	if !strings.Contains(string(logged), "load FEN") {
		t.Fatalf("rejected FEN not logged: %q", logged)
	}
}

func TestBrokenConfig(t *testing.T) {
	file := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(file, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	err := NewCommand().Run(context.Background(), []string{"duelchess", "--config", file, "cli"})
	if err == nil || !strings.Contains(err.Error(), "error read config") {
		t.Fatalf("err = %v", err)
	}
}
