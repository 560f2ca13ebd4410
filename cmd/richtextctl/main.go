// Command richtextctl is a thin CLI wrapper around the richtext library:
// one-shot conversion, watching a file for changes, clipboard round-trips,
// and an interactive side-by-side preview. It exists to exercise the
// library end to end, not as part of its public contract.
package main

import (
	"github.com/alecthomas/kong"
	"github.com/spf13/afero"
)

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("richtextctl"),
		kong.Description("Convert between Slack RT JSON, Mrkdwn, and GitHub-flavored Markdown"),
		kong.UsageOnError(),
		kong.Bind(afero.Fs(afero.NewOsFs())),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
