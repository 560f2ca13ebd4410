package theme

import (
	"strings"
	"testing"
)

func TestGradient_RendersEveryCharacter(t *testing.T) {
	out := defaultTheme.Gradient("abc")
	for _, want := range []string{"a", "b", "c"} {
		if !strings.Contains(out, want) {
			t.Errorf("Gradient output missing character %q: %q", want, out)
		}
	}
}

func TestGradient_EmptyInput(t *testing.T) {
	if got := defaultTheme.Gradient(""); got != "" {
		t.Errorf("Gradient(\"\") = %q, want empty string", got)
	}
}

func TestParseColor_ANSI256AndHex(t *testing.T) {
	if _, err := parseColor("99"); err != nil {
		t.Errorf("parseColor(ANSI code) failed: %v", err)
	}
	if _, err := parseColor("#ff00ff"); err != nil {
		t.Errorf("parseColor(hex) failed: %v", err)
	}
	if _, err := parseColor("not-a-color"); err == nil {
		t.Error("expected error for invalid color")
	}
}
