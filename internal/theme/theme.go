// Package theme provides the color palettes richtextctl's view command
// selects between, plus the span styles it uses to highlight Bold, Italic,
// Code, Link, and Mention nodes when rendering a parsed document.
package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/arcflow-go/richtext/ast"
)

// Theme defines the palette richtextctl's view command renders with.
type Theme struct {
	Primary       lipgloss.Color // Main accent - bold and link spans
	Secondary     lipgloss.Color // Secondary accent - italic spans
	Warning       lipgloss.Color // Emoji spans
	Muted         lipgloss.Color // Dim/subtle text, strikethrough, timestamps
	Border        lipgloss.Color // Pane borders
	Header        lipgloss.Color // Pane titles, code spans
	Selected      lipgloss.Color // Mention span foreground
	Highlight     lipgloss.Color // Code/mention span background
	GradientStart lipgloss.Color // Banner gradient start
	GradientEnd   lipgloss.Color // Banner gradient end
}

// Default theme matching current hardcoded colors in the codebase
var defaultTheme = &Theme{
	Primary:       lipgloss.Color("99"),  // Purple/violet
	Secondary:     lipgloss.Color("170"), // Pink
	Warning:       lipgloss.Color("3"),   // Yellow
	Muted:         lipgloss.Color("240"), // Dim gray
	Border:        lipgloss.Color("240"), // Dim gray
	Header:        lipgloss.Color("99"),  // Purple
	Selected:      lipgloss.Color("229"), // Light yellow foreground
	Highlight:     lipgloss.Color("57"),  // Purple background
	GradientStart: lipgloss.Color("99"),  // Purple
	GradientEnd:   lipgloss.Color("205"), // Pink
}

// Dark theme: high contrast on dark backgrounds, brighter colors
var darkTheme = &Theme{
	Primary:       lipgloss.Color("141"), // Bright purple
	Secondary:     lipgloss.Color("213"), // Bright pink
	Warning:       lipgloss.Color("226"), // Bright yellow
	Muted:         lipgloss.Color("243"), // Medium gray
	Border:        lipgloss.Color("238"), // Dark gray border
	Header:        lipgloss.Color("141"), // Bright purple
	Selected:      lipgloss.Color("231"), // White foreground
	Highlight:     lipgloss.Color("61"),  // Bright purple background
	GradientStart: lipgloss.Color("141"), // Bright purple
	GradientEnd:   lipgloss.Color("213"), // Bright pink
}

// Light theme: optimized for light terminal backgrounds, darker accents
var lightTheme = &Theme{
	Primary:       lipgloss.Color("55"),  // Dark purple
	Secondary:     lipgloss.Color("125"), // Dark pink
	Warning:       lipgloss.Color("136"), // Dark yellow/orange
	Muted:         lipgloss.Color("246"), // Light gray
	Border:        lipgloss.Color("250"), // Very light gray border
	Header:        lipgloss.Color("55"),  // Dark purple
	Selected:      lipgloss.Color("16"),  // Black foreground
	Highlight:     lipgloss.Color("189"), // Light purple background
	GradientStart: lipgloss.Color("55"),  // Dark purple
	GradientEnd:   lipgloss.Color("125"), // Dark pink
}

// Solarized theme: Solarized Dark palette colors
var solarizedTheme = &Theme{
	Primary:       lipgloss.Color("33"),  // Blue (base0)
	Secondary:     lipgloss.Color("125"), // Magenta
	Warning:       lipgloss.Color("136"), // Yellow
	Muted:         lipgloss.Color("240"), // Base01
	Border:        lipgloss.Color("235"), // Base02
	Header:        lipgloss.Color("37"),  // Cyan
	Selected:      lipgloss.Color("230"), // Base3 (light)
	Highlight:     lipgloss.Color("235"), // Base02 (dark)
	GradientStart: lipgloss.Color("33"),  // Blue
	GradientEnd:   lipgloss.Color("125"), // Magenta
}

// Monokai theme: Monokai palette colors
var monokaiTheme = &Theme{
	Primary:       lipgloss.Color("141"), // Purple
	Secondary:     lipgloss.Color("197"), // Pink
	Warning:       lipgloss.Color("208"), // Orange
	Muted:         lipgloss.Color("243"), // Gray
	Border:        lipgloss.Color("237"), // Dark gray
	Header:        lipgloss.Color("81"),  // Cyan/blue
	Selected:      lipgloss.Color("231"), // White
	Highlight:     lipgloss.Color("237"), // Dark gray background
	GradientStart: lipgloss.Color("141"), // Purple
	GradientEnd:   lipgloss.Color("197"), // Pink
}

// themes is the registry of all available themes
var themes = map[string]*Theme{
	"default":   defaultTheme,
	"dark":      darkTheme,
	"light":     lightTheme,
	"solarized": solarizedTheme,
	"monokai":   monokaiTheme,
}

// Get returns the theme with the given name.
// Returns an error if the theme does not exist.
func Get(name string) (*Theme, error) {
	theme, ok := themes[name]
	if !ok {
		return nil, fmt.Errorf("theme not found: %s", name)
	}

	return theme, nil
}

// StyleFor returns the lipgloss style the view command uses to render an
// inline span of the given kind. Block kinds and kinds with no particular
// inline styling (Text, Document, Paragraph, ...) get the zero style.
func (t *Theme) StyleFor(kind ast.Kind) lipgloss.Style {
	switch kind {
	case ast.KindBold:
		return lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	case ast.KindItalic:
		return lipgloss.NewStyle().Foreground(t.Secondary).Italic(true)
	case ast.KindStrikethrough:
		return lipgloss.NewStyle().Foreground(t.Muted).Strikethrough(true)
	case ast.KindCode, ast.KindCodeBlock:
		return lipgloss.NewStyle().Foreground(t.Header).Background(t.Highlight)
	case ast.KindLink:
		return lipgloss.NewStyle().Foreground(t.Primary).Underline(true)
	case ast.KindUserMention, ast.KindChannelMention, ast.KindUsergroupMention, ast.KindBroadcast:
		return lipgloss.NewStyle().Foreground(t.Selected).Background(t.Highlight)
	case ast.KindEmoji:
		return lipgloss.NewStyle().Foreground(t.Warning)
	case ast.KindDateTimestamp:
		return lipgloss.NewStyle().Foreground(t.Muted)
	default:
		return lipgloss.NewStyle()
	}
}
