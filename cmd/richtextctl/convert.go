package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"

	"github.com/arcflow-go/richtext"
	"github.com/arcflow-go/richtext/ast"
	"github.com/arcflow-go/richtext/internal/rtconfig"
)

// diagnosticStyle renders the "converting ..." status lines that logf
// writes to stderr. logf prints nothing when stderr is not a terminal.
var diagnosticStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

// ConvertCmd converts a document between RT JSON, Mrkdwn, and GFM.
type ConvertCmd struct {
	From string `required:"" enum:"rtjson,mrkdwn,gfm" help:"Source format"`
	To   string `required:"" enum:"rtjson,gfm"         help:"Destination format (rtjson is write-only for mrkdwn/gfm input)"` //nolint:lll // Kong struct tag with alignment

	Input  string `arg:"" optional:"" type:"existingfile" help:"Input file; reads stdin when omitted"`
	Output string `name:"output" short:"o" help:"Output file; writes stdout when omitted"`

	Strict bool   `help:"Fail on the first unrepresentable construct instead of degrading it"`
	TeamID string `name:"team-id" help:"Team ID stamped onto GFM mention deep links"`
}

// Run executes the convert command.
func (c *ConvertCmd) Run(fs afero.Fs) error {
	cfg, err := rtconfig.Load()
	if err != nil {
		cfg = &rtconfig.Config{}
	}

	opts := richtext.Options{
		Strict: c.Strict || cfg.RaiseOnError,
		TeamID: firstNonEmpty(c.TeamID, cfg.TeamID),
	}

	raw, err := c.readInput(fs)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	c.logf("converting %s -> %s", c.From, c.To)

	out, err := c.convert(raw, opts)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	return c.writeOutput(fs, out)
}

func (c *ConvertCmd) convert(raw []byte, opts richtext.Options) ([]byte, error) {
	doc, err := c.decode(raw, opts)
	if err != nil {
		return nil, err
	}

	switch c.To {
	case "rtjson":
		return richtext.RenderRTJSON(doc, opts)
	case "gfm":
		out, err := richtext.RenderGFM(doc, opts)
		return []byte(out), err
	default:
		return nil, fmt.Errorf("unsupported destination format %q", c.To)
	}
}

func (c *ConvertCmd) decode(raw []byte, opts richtext.Options) (*ast.Document, error) {
	switch c.From {
	case "rtjson":
		return richtext.ParseRTJSON(raw, opts)
	case "mrkdwn":
		return richtext.ParseMrkdwn(string(raw), opts)
	case "gfm":
		return richtext.ParseGFM(string(raw), opts)
	default:
		return nil, fmt.Errorf("unsupported source format %q", c.From)
	}
}

func (c *ConvertCmd) readInput(fs afero.Fs) ([]byte, error) {
	if c.Input == "" {
		return io.ReadAll(os.Stdin)
	}
	return afero.ReadFile(fs, c.Input)
}

func (c *ConvertCmd) writeOutput(fs afero.Fs, data []byte) error {
	if c.Output == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return afero.WriteFile(fs, c.Output, data, 0o644)
}

func (c *ConvertCmd) logf(format string, args ...any) {
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		return
	}
	fmt.Fprintln(os.Stderr, diagnosticStyle.Render(strings.TrimSpace(fmt.Sprintf(format, args...))))
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
