package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultGameIsValid(t *testing.T) {
	if err := DefaultGame().Validate(); err != nil {
		t.Fatalf("Default game config rejected: %v", err)
	}
}

func TestValidateRejectsBadSettings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Game)
		want   string
	}{
		{"zero win score", func(g *Game) { g.WinScore = 0 }, "win score"},
		{"paddle taller than field", func(g *Game) { g.PaddleHeight = g.FieldHeight }, "paddle height"},
		{"empty ball speed range", func(g *Game) { g.BallSpeedMax = g.BallSpeedMin }, "ball speed range"},
		{"empty serve range", func(g *Game) { g.ServeSpeedYMax = g.ServeSpeedYMin }, "serve vertical speed range"},
		{"tunnelling speed", func(g *Game) { g.BallSpeedMax = g.PaddleWidth + g.BallSize + 1 }, "exceeds paddle width"},
		{"negative dead zone", func(g *Game) { g.AIDeadZone = -1 }, "dead zone"},
		{"zero tick rate", func(g *Game) { g.TickRate = 0 }, "tick rate"},
		{"narrow field", func(g *Game) { g.FieldWidth = 80 }, "no room for the ball"},
	}

	for _, tt := range tests {
		g := DefaultGame()
		tt.mutate(&g)
		err := g.Validate()
		if err == nil {
			t.Errorf("%s: expected an error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: expected error mentioning %q, got %v", tt.name, tt.want, err)
		}
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	g := DefaultGame()
	g.WinScore = 0
	g.TickRate = -1

	err := g.Validate()
	if err == nil {
		t.Fatal("Expected an error")
	}
	for _, want := range []string{"win score", "tick rate"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Expected %q in %v", want, err)
		}
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PONG_CONFIG_FILE", "")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("WIN_SCORE", "11")
	t.Setenv("GAME_SEED", "1234")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("Expected port 9090, got %s", cfg.Port)
	}
	if cfg.Game.WinScore != 11 {
		t.Errorf("Expected win score 11, got %d", cfg.Game.WinScore)
	}
	if cfg.Game.Seed != 1234 {
		t.Errorf("Expected seed 1234, got %d", cfg.Game.Seed)
	}
}

func TestLoadRejectsNonNumericOverrides(t *testing.T) {
	t.Setenv("PONG_CONFIG_FILE", "")
	t.Setenv("WIN_SCORE", "five")
	t.Setenv("FIELD_HEIGHT", "6OO")
	t.Setenv("GAME_SEED", "0x10")

	cfg, err := Load()
	if err == nil {
		t.Fatalf("Expected Load to fail, got %+v", cfg.Game)
	}
	for _, key := range []string{"WIN_SCORE", "FIELD_HEIGHT", "GAME_SEED"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("Expected error to mention %s, got %v", key, err)
		}
	}
}

func TestLoadRejectsInvalidGame(t *testing.T) {
	t.Setenv("PONG_CONFIG_FILE", "")
	t.Setenv("PADDLE_HEIGHT", "900")

	if _, err := Load(); err == nil {
		t.Error("Expected Load to reject a paddle taller than the field")
	}
}

func TestLoadGameFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.toml")
	data := "win_score = 3\nfield_width = 1024\nball_speed_max = 9\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	g := DefaultGame()
	if err := LoadGameFile(path, &g); err != nil {
		t.Fatalf("LoadGameFile failed: %v", err)
	}
	if g.WinScore != 3 || g.FieldWidth != 1024 || g.BallSpeedMax != 9 {
		t.Errorf("File values not applied: %+v", g)
	}
	if g.FieldHeight != 600 {
		t.Errorf("Missing key overwrote default height: %d", g.FieldHeight)
	}

	t.Setenv("PONG_CONFIG_FILE", path)
	t.Setenv("WIN_SCORE", "")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Game.WinScore != 3 {
		t.Errorf("Expected win score from file, got %d", cfg.Game.WinScore)
	}
}

func TestLoadGameFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("win_score = [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	g := DefaultGame()
	if err := LoadGameFile(path, &g); err == nil {
		t.Error("Expected a decode error")
	}
}
