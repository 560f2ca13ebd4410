package main

import (
	kongcompletion "github.com/jotaen/kong-completion"
)

// CLI is the root command structure for richtextctl, a thin Kong CLI
// exercising the richtext library end to end. It is not part of the
// library's external interface.
type CLI struct {
	Convert    ConvertCmd                `cmd:"" help:"Convert a document between RT JSON, Mrkdwn, and GFM"`
	Watch      WatchCmd                  `cmd:"" help:"Re-convert a file every time it changes on disk"`
	Clip       ClipCmd                   `cmd:"" help:"Convert the clipboard contents in place"`
	View       ViewCmd                   `cmd:"" help:"Interactively preview source next to its converted form"`
	Completion kongcompletion.Completion `cmd:"" help:"Generate shell completion scripts"`
}
