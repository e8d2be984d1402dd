package capability

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantLen int
	}{
		{"short text passes through", "mulțumit de produs", len("mulțumit de produs")},
		{"ascii cuts at the limit", strings.Repeat("a", 600), MAX_INPUT_CHARS},
		{"multi-byte rune is never split", strings.Repeat("a", MAX_INPUT_CHARS-1) + "țțț", MAX_INPUT_CHARS - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.text)
			if len(got) != tt.wantLen {
				t.Errorf("truncated length = %d, want %d", len(got), tt.wantLen)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncation produced invalid UTF-8: %q", got[len(got)-4:])
			}
			if !strings.HasPrefix(tt.text, got) {
				t.Errorf("truncation changed content")
			}
		})
	}
}
