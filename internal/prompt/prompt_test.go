package prompt

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRenderUser(t *testing.T) {
	got := RenderUser("Build a URL shortener")

	if !strings.Contains(got, "Build a URL shortener") {
		t.Errorf("RenderUser() missing requirement, got %q", got)
	}
	if strings.Contains(got, "{{requirement}}") {
		t.Errorf("RenderUser() left placeholder unreplaced: %q", got)
	}
	if strings.HasSuffix(got, "\n") {
		t.Errorf("RenderUser() should trim trailing whitespace, got %q", got)
	}
}

func TestLoadFile(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		got, err := LoadFile("")
		if err != nil {
			t.Fatalf("LoadFile(\"\") error = %v", err)
		}
		if got != "" {
			t.Errorf("LoadFile(\"\") = %q, want empty", got)
		}
	})

	t.Run("existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "prompt.txt")
		if err := os.WriteFile(path, []byte("custom instructions"), 0644); err != nil {
			t.Fatalf("writing fixture: %v", err)
		}

		got, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile() error = %v", err)
		}
		if got != "custom instructions" {
			t.Errorf("LoadFile() = %q, want %q", got, "custom instructions")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.txt"))
		if err == nil {
			t.Fatal("LoadFile() on missing file should error")
		}
	})
}

func TestResolveSystem(t *testing.T) {
	promptPath := filepath.Join(t.TempDir(), "override.txt")
	if err := os.WriteFile(promptPath, []byte("from file\n"), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	tests := []struct {
		name       string
		promptFile string
		override   string
		want       string
	}{
		{"file wins over override", promptPath, "from flag", "from file"},
		{"override wins over default", "", "from flag", "from flag"},
		{"default when nothing set", "", "", strings.TrimSpace(DefaultSystemPrompt)},
		{"blank override falls through", "", "   ", strings.TrimSpace(DefaultSystemPrompt)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveSystem(tt.promptFile, tt.override, DefaultSystemPrompt)
			if err != nil {
				t.Fatalf("ResolveSystem() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolveSystem() = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("unreadable file surfaces error", func(t *testing.T) {
		_, err := ResolveSystem(filepath.Join(t.TempDir(), "missing.txt"), "flag", DefaultSystemPrompt)
		if err == nil {
			t.Fatal("ResolveSystem() should surface prompt file read errors")
		}
	})
}
