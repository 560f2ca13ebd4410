package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/arcflow-go/richtext/ast"
)

// TestGet verifies the Get function retrieves themes correctly.
func TestGet(t *testing.T) {
	tests := []struct {
		name      string
		themeName string
		wantTheme *Theme
		wantError bool
	}{
		{
			name:      "get default theme",
			themeName: "default",
			wantTheme: defaultTheme,
			wantError: false,
		},
		{
			name:      "get dark theme",
			themeName: "dark",
			wantTheme: darkTheme,
			wantError: false,
		},
		{
			name:      "get light theme",
			themeName: "light",
			wantTheme: lightTheme,
			wantError: false,
		},
		{
			name:      "get solarized theme",
			themeName: "solarized",
			wantTheme: solarizedTheme,
			wantError: false,
		},
		{
			name:      "get monokai theme",
			themeName: "monokai",
			wantTheme: monokaiTheme,
			wantError: false,
		},
		{
			name:      "get nonexistent theme",
			themeName: "nonexistent",
			wantTheme: nil,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Get(tt.themeName)
			if (err != nil) != tt.wantError {
				t.Errorf("Get(%q) error = %v, wantError %v", tt.themeName, err, tt.wantError)

				return
			}
			if got != tt.wantTheme {
				t.Errorf("Get(%q) = %v, want %v", tt.themeName, got, tt.wantTheme)
			}
		})
	}
}

// TestDefaultThemeColors verifies the default theme has expected color values.
func TestDefaultThemeColors(t *testing.T) {
	tests := []struct {
		name  string
		got   lipgloss.Color
		want  lipgloss.Color
		field string
	}{
		{
			name:  "Primary color",
			got:   defaultTheme.Primary,
			want:  lipgloss.Color("99"),
			field: "Primary",
		},
		{
			name:  "Header color",
			got:   defaultTheme.Header,
			want:  lipgloss.Color("99"),
			field: "Header",
		},
		{
			name:  "Border color",
			got:   defaultTheme.Border,
			want:  lipgloss.Color("240"),
			field: "Border",
		},
		{
			name:  "Secondary color",
			got:   defaultTheme.Secondary,
			want:  lipgloss.Color("170"),
			field: "Secondary",
		},
		{
			name:  "Warning color",
			got:   defaultTheme.Warning,
			want:  lipgloss.Color("3"),
			field: "Warning",
		},
		{
			name:  "Muted color",
			got:   defaultTheme.Muted,
			want:  lipgloss.Color("240"),
			field: "Muted",
		},
		{
			name:  "Selected color",
			got:   defaultTheme.Selected,
			want:  lipgloss.Color("229"),
			field: "Selected",
		},
		{
			name:  "Highlight color",
			got:   defaultTheme.Highlight,
			want:  lipgloss.Color("57"),
			field: "Highlight",
		},
		{
			name:  "GradientStart color",
			got:   defaultTheme.GradientStart,
			want:  lipgloss.Color("99"),
			field: "GradientStart",
		},
		{
			name:  "GradientEnd color",
			got:   defaultTheme.GradientEnd,
			want:  lipgloss.Color("205"),
			field: "GradientEnd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("defaultTheme.%s = %q, want %q", tt.field, tt.got, tt.want)
			}
		})
	}
}

// TestStyleFor verifies StyleFor maps inline kinds to non-zero styles and
// leaves block kinds with no particular inline styling at the zero style.
func TestStyleFor(t *testing.T) {
	styled := []ast.Kind{
		ast.KindBold, ast.KindItalic, ast.KindStrikethrough,
		ast.KindCode, ast.KindCodeBlock, ast.KindLink,
		ast.KindUserMention, ast.KindChannelMention, ast.KindUsergroupMention,
		ast.KindBroadcast, ast.KindEmoji, ast.KindDateTimestamp,
	}
	zero := lipgloss.NewStyle().String()
	for _, kind := range styled {
		if defaultTheme.StyleFor(kind).String() == zero {
			t.Errorf("StyleFor(%v) returned the zero style, want a themed style", kind)
		}
	}

	if got := defaultTheme.StyleFor(ast.KindParagraph); got.String() != zero {
		t.Errorf("StyleFor(KindParagraph) = %v, want the zero style", got)
	}
}
