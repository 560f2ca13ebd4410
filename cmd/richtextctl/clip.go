package main

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/arcflow-go/richtext"
	"github.com/arcflow-go/richtext/internal/rtconfig"
)

// ClipCmd converts the current clipboard contents and writes the result
// back to the clipboard, so a user can paste a Slack message, run
// `richtextctl clip`, and paste the converted form somewhere else.
type ClipCmd struct {
	From string `required:"" enum:"rtjson,mrkdwn,gfm" help:"Source format"`
	To   string `required:"" enum:"rtjson,gfm"         help:"Destination format"` //nolint:lll // Kong struct tag with alignment

	TeamID string `name:"team-id" help:"Team ID stamped onto GFM mention deep links"`
}

// Run executes the clip command.
func (c *ClipCmd) Run() error {
	cfg, err := rtconfig.Load()
	if err != nil {
		cfg = &rtconfig.Config{}
	}

	opts := richtext.Options{
		TeamID: firstNonEmpty(c.TeamID, cfg.TeamID),
	}

	in, err := clipboard.ReadAll()
	if err != nil {
		return fmt.Errorf("failed to read clipboard: %w", err)
	}

	var out string
	switch {
	case c.From == "gfm" && c.To == "rtjson":
		doc, decErr := richtext.ParseGFM(in, opts)
		if decErr != nil {
			return fmt.Errorf("failed to parse clipboard contents: %w", decErr)
		}
		data, encErr := richtext.RenderRTJSON(doc, opts)
		if encErr != nil {
			return fmt.Errorf("failed to render output: %w", encErr)
		}
		out = string(data)
	case c.From == "mrkdwn" && c.To == "gfm":
		out, err = richtext.ConvertMrkdwnToGFM(in, opts)
		if err != nil {
			return fmt.Errorf("failed to convert clipboard contents: %w", err)
		}
	case c.From == "rtjson" && c.To == "gfm":
		out, err = richtext.ConvertRTJSONToGFM([]byte(in), opts)
		if err != nil {
			return fmt.Errorf("failed to convert clipboard contents: %w", err)
		}
	default:
		return fmt.Errorf("unsupported conversion %s -> %s", c.From, c.To)
	}

	if err := clipboard.WriteAll(out); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}

	fmt.Println("clipboard updated")
	return nil
}
