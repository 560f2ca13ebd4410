package theme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	ansiMaxColorCode    = 255
	ansiStandardMax     = 16
	ansiCubeStart       = 16
	ansiCubeEnd         = 231
	ansiGrayscaleStart  = 232
	ansiGrayscaleEnd    = 255
	ansiCubeSize        = 6
	ansiCubePlaneSize   = 36
	ansiGrayscaleSteps  = 23.0
	ansiColorSteps      = 5.0
	standardColorDim    = 0.5
	standardColorBright = 0.75
	fullBrightness      = 1.0
	zeroBrightness      = 0.0
)

// Gradient renders text with a smooth color interpolation from
// t.GradientStart to t.GradientEnd, character by character. Used for the
// richtextctl view command's banner. Falls back to unstyled text if either
// endpoint color cannot be parsed.
func (t *Theme) Gradient(text string) string {
	start, err := parseColor(string(t.GradientStart))
	if err != nil {
		return text
	}
	end, err := parseColor(string(t.GradientEnd))
	if err != nil {
		return text
	}

	runes := []rune(text)
	if len(runes) == 0 {
		return text
	}

	var out strings.Builder
	for i, r := range runes {
		ratio := 0.0
		if len(runes) > 1 {
			ratio = float64(i) / float64(len(runes)-1)
		}
		blended := start.BlendLab(end, ratio)
		out.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(blended.Hex())).
			Render(string(r)))
	}
	return out.String()
}

func parseColor(color string) (colorful.Color, error) {
	if strings.HasPrefix(color, "#") {
		return colorful.Hex(color)
	}

	code, err := strconv.Atoi(color)
	if err == nil && code >= 0 && code <= ansiMaxColorCode {
		return ansi256ToRGB(code), nil
	}

	return colorful.Color{}, fmt.Errorf("invalid color format: %s", color)
}

func ansi256ToRGB(code int) colorful.Color {
	switch {
	case code < ansiStandardMax:
		return standardColor(code)
	case code >= ansiCubeStart && code <= ansiCubeEnd:
		return cubeColor(code)
	case code >= ansiGrayscaleStart && code <= ansiGrayscaleEnd:
		return grayscaleColor(code)
	default:
		return colorful.Color{R: fullBrightness, G: fullBrightness, B: fullBrightness}
	}
}

func standardColor(code int) colorful.Color {
	colors := [ansiStandardMax]colorful.Color{
		{R: zeroBrightness, G: zeroBrightness, B: zeroBrightness},
		{R: standardColorDim, G: zeroBrightness, B: zeroBrightness},
		{R: zeroBrightness, G: standardColorDim, B: zeroBrightness},
		{R: standardColorDim, G: standardColorDim, B: zeroBrightness},
		{R: zeroBrightness, G: zeroBrightness, B: standardColorDim},
		{R: standardColorDim, G: zeroBrightness, B: standardColorDim},
		{R: zeroBrightness, G: standardColorDim, B: standardColorDim},
		{R: standardColorBright, G: standardColorBright, B: standardColorBright},
		{R: standardColorDim, G: standardColorDim, B: standardColorDim},
		{R: fullBrightness, G: zeroBrightness, B: zeroBrightness},
		{R: zeroBrightness, G: fullBrightness, B: zeroBrightness},
		{R: fullBrightness, G: fullBrightness, B: zeroBrightness},
		{R: zeroBrightness, G: zeroBrightness, B: fullBrightness},
		{R: fullBrightness, G: zeroBrightness, B: fullBrightness},
		{R: zeroBrightness, G: fullBrightness, B: fullBrightness},
		{R: fullBrightness, G: fullBrightness, B: fullBrightness},
	}
	return colors[code]
}

func cubeColor(code int) colorful.Color {
	index := code - ansiCubeStart
	r := index / ansiCubePlaneSize
	g := (index % ansiCubePlaneSize) / ansiCubeSize
	b := index % ansiCubeSize

	return colorful.Color{
		R: float64(r) / ansiColorSteps,
		G: float64(g) / ansiColorSteps,
		B: float64(b) / ansiColorSteps,
	}
}

func grayscaleColor(code int) colorful.Color {
	gray := float64(code-ansiGrayscaleStart) / ansiGrayscaleSteps
	return colorful.Color{R: gray, G: gray, B: gray}
}
