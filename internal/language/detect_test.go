package language

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"diacritics mean romanian", "Sunt mulțumit de achiziție", Romanian},
		{"common word means romanian", "Produs de calitate, recomand", Romanian},
		{"plain english", "Sturdy hinge, crisp display, happy with it", English},
		{"empty defaults to english", "", English},
		{"mixed case romanian word", "FOARTE multumit", Romanian},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.text); got != tt.want {
				t.Errorf("Detect(%q) = %s, want %s", tt.text, got, tt.want)
			}
		})
	}
}
