package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadPuzzlesConfig_Success(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "puzzles.yaml")

	configContent := `day01:
  teen_words: true
day02:
  bag:
    red: 1
    green: 2
    blue: 3
day03:
  blank: "_"
  gear: "@"
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	t.Setenv("PUZZLES_CONFIG_PATH", configPath)

	cfg, err := LoadPuzzlesConfig()
	if err != nil {
		t.Fatalf("LoadPuzzlesConfig() failed: %v", err)
	}

	if !cfg.Day01.TeenWords {
		t.Error("Expected teen_words=true")
	}
	if cfg.Day02.Bag != (BagConfig{Red: 1, Green: 2, Blue: 3}) {
		t.Errorf("Expected bag 1/2/3, got %+v", cfg.Day02.Bag)
	}
	if cfg.Day03.BlankRune() != '_' {
		t.Errorf("Expected blank '_', got %q", cfg.Day03.BlankRune())
	}
	if cfg.Day03.GearRune() != '@' {
		t.Errorf("Expected gear '@', got %q", cfg.Day03.GearRune())
	}
}

func TestLoadPuzzlesConfig_AppliesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "puzzles.yaml")

	if err := os.WriteFile(configPath, []byte("day01:\n  teen_words: false\n"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	t.Setenv("PUZZLES_CONFIG_PATH", configPath)

	cfg, err := LoadPuzzlesConfig()
	if err != nil {
		t.Fatalf("LoadPuzzlesConfig() failed: %v", err)
	}

	if cfg.Day02.Bag != (BagConfig{Red: 12, Green: 13, Blue: 14}) {
		t.Errorf("Expected default bag 12/13/14, got %+v", cfg.Day02.Bag)
	}
	if cfg.Day03.Blank != "." || cfg.Day03.Gear != "*" {
		t.Errorf("Expected default markers '.' and '*', got %q and %q", cfg.Day03.Blank, cfg.Day03.Gear)
	}
}

func TestLoadPuzzlesConfig_FileNotFound(t *testing.T) {
	t.Setenv("PUZZLES_CONFIG_PATH", "/nonexistent/path/puzzles.yaml")

	_, err := LoadPuzzlesConfig()
	if err == nil {
		t.Fatal("Expected error for nonexistent config file")
	}
	if !strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("Expected 'failed to read config file' error, got: %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected fs.ErrNotExist to be wrapped, got: %v", err)
	}
}

func TestLoadPuzzlesConfig_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidContent := `day03:
  blank: [".", "*"
  gear: "*"
`

	if err := os.WriteFile(configPath, []byte(invalidContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	t.Setenv("PUZZLES_CONFIG_PATH", configPath)

	_, err := LoadPuzzlesConfig()
	if err == nil {
		t.Fatal("Expected error for invalid YAML")
	}
	if !strings.Contains(err.Error(), "failed to parse YAML") {
		t.Errorf("Expected 'failed to parse YAML' error, got: %v", err)
	}
}

func TestLoadPuzzlesConfig_RepositoryDefault(t *testing.T) {
	t.Setenv("PUZZLES_CONFIG_PATH", filepath.Join("..", "..", "configs", "puzzles.yaml"))

	cfg, err := LoadPuzzlesConfig()
	if err != nil {
		t.Fatalf("LoadPuzzlesConfig() failed: %v", err)
	}
	if cfg.Day03.Gear != "*" {
		t.Errorf("Expected gear '*', got %q", cfg.Day03.Gear)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *PuzzlesConfig)
		wantErr string
	}{
		{name: "defaults are valid"},
		{name: "negative bag", mutate: func(cfg *PuzzlesConfig) { cfg.Day02.Bag.Red = -1 }, wantErr: "negative cube count"},
		{name: "multi character blank", mutate: func(cfg *PuzzlesConfig) { cfg.Day03.Blank = ".." }, wantErr: "single character"},
		{name: "digit gear", mutate: func(cfg *PuzzlesConfig) { cfg.Day03.Gear = "7" }, wantErr: "cannot be a digit"},
		{name: "same markers", mutate: func(cfg *PuzzlesConfig) { cfg.Day03.Gear = "." }, wantErr: "must differ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			if tt.mutate != nil {
				tt.mutate(cfg)
			}

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Expected no error, got: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got: %v", tt.wantErr, err)
			}
		})
	}
}
