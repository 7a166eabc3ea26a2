package tui

import (
	"strings"
	"testing"
)

func TestRenderMarkdown(t *testing.T) {
	out := RenderMarkdown("# Heading\n\nSome body text.", 80)

	if out == "" {
		t.Fatal("RenderMarkdown() returned empty output")
	}
	if !strings.Contains(out, "Heading") {
		t.Errorf("rendered output missing heading text: %q", out)
	}
	if strings.HasSuffix(out, "\n") {
		t.Error("rendered output should not end with a trailing newline")
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{
			name:  "no wrapping needed",
			text:  "short line",
			width: 40,
			want:  "short line",
		},
		{
			name:  "breaks at last space",
			text:  "aaa bbb ccc",
			width: 7,
			want:  "aaa bbb\nccc",
		},
		{
			name:  "zero width passes through",
			text:  "anything at all",
			width: 0,
			want:  "anything at all",
		},
		{
			name:  "preserves existing newlines",
			text:  "one\ntwo",
			width: 40,
			want:  "one\ntwo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wrapText(tt.text, tt.width); got != tt.want {
				t.Errorf("wrapText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPanel(t *testing.T) {
	out := Panel("Implementation Plan", "content")
	if !strings.Contains(out, "Implementation Plan") {
		t.Error("panel missing title")
	}
	if !strings.Contains(out, "content") {
		t.Error("panel missing content")
	}
}
