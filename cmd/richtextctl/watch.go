package main

import (
	"fmt"
	"os"

	"github.com/arcflow-go/richtext"
	"github.com/arcflow-go/richtext/internal/rtconfig"
	"github.com/arcflow-go/richtext/internal/rtwatch"
)

// WatchCmd re-runs a conversion every time the input file changes on
// disk, writing the result to Output (or stdout) on each pass.
type WatchCmd struct {
	From string `required:"" enum:"rtjson,mrkdwn,gfm" help:"Source format"`
	To   string `required:"" enum:"rtjson,gfm"         help:"Destination format"` //nolint:lll // Kong struct tag with alignment

	Input  string `arg:"" required:"" type:"existingfile" help:"File to watch"`
	Output string `name:"output" short:"o" help:"Output file; writes stdout when omitted"`

	TeamID string `name:"team-id" help:"Team ID stamped onto GFM mention deep links"`
}

// Run executes the watch command. It blocks until an unrecoverable
// watcher error occurs or the process is interrupted.
func (c *WatchCmd) Run() error {
	cfg, err := rtconfig.Load()
	if err != nil {
		cfg = &rtconfig.Config{}
	}
	opts := richtext.Options{TeamID: firstNonEmpty(c.TeamID, cfg.TeamID)}

	w, err := rtwatch.New(c.Input)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", c.Input, err)
	}
	defer w.Close()

	if err := c.runOnce(opts); err != nil {
		fmt.Fprintf(os.Stderr, "convert: %v\n", err)
	}

	for {
		select {
		case <-w.Events():
			if err := c.runOnce(opts); err != nil {
				fmt.Fprintf(os.Stderr, "convert: %v\n", err)
			}
		case err := <-w.Errors():
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}

func (c *WatchCmd) runOnce(opts richtext.Options) error {
	raw, err := os.ReadFile(c.Input)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", c.Input, err)
	}

	conv := &ConvertCmd{From: c.From, To: c.To}
	out, err := conv.convert(raw, opts)
	if err != nil {
		return err
	}

	if c.Output == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	return os.WriteFile(c.Output, out, 0o644)
}
