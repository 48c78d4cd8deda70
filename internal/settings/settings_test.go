package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.WPM() != DefaultWPM {
		t.Errorf("wpm = %d, want default %d", s.WPM(), DefaultWPM)
	}
	if s.Language() != DefaultLanguage {
		t.Errorf("language = %q, want %q", s.Language(), DefaultLanguage)
	}
	if s.Name() != "" {
		t.Errorf("name = %q, want empty", s.Name())
	}
	if len(s.Themes()) != 0 || len(s.Interests()) != 0 {
		t.Error("expected no themes or interests")
	}
}

func TestLoadFullFile(t *testing.T) {
	path := writeSettings(t, `
[reader]
name = "Maya"
wpm = 160
language = "en"
themes = ["forest animals", "space"]
interests = ["dinosaurs"]
`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Name() != "Maya" {
		t.Errorf("name = %q, want Maya", s.Name())
	}
	if s.WPM() != 160 {
		t.Errorf("wpm = %d, want 160", s.WPM())
	}
	if got := s.Themes(); len(got) != 2 || got[0] != "forest animals" {
		t.Errorf("themes = %v", got)
	}
	if got := s.Interests(); len(got) != 1 || got[0] != "dinosaurs" {
		t.Errorf("interests = %v", got)
	}
}

func TestWPMBounds(t *testing.T) {
	tests := []struct {
		name string
		wpm  int
		want int
	}{
		{"too slow clamps up", 5, 30},
		{"too fast clamps down", 2000, 600},
		{"in range kept", 200, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Settings{Reader: ReaderSettings{WPM: &tt.wpm}}
			if got := s.WPM(); got != tt.want {
				t.Errorf("wpm = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeSettings(t, `[reader`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed TOML")
	}
}

func TestDefaultPathEnvOverride(t *testing.T) {
	t.Setenv("STORYFOX_CONFIG", "/tmp/custom.toml")
	if got := DefaultPath(); got != "/tmp/custom.toml" {
		t.Errorf("path = %q, want env override", got)
	}
}
