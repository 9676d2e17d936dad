package main

import (
	"fmt"

	"github.com/fwojciec/splice"
	"github.com/fwojciec/splice/session"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	progress := func(event session.ProgressEvent) {
		switch event.Type {
		case session.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Found %d document(s)\n", event.Total)
		case session.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "[%d/%d] %s (%s): %s -> %s\n",
				event.Completed, event.Total, event.Document, formatName(event.Format), event.Kind, event.State)
		case session.ProgressFailed:
			fmt.Fprintf(deps.Stdout, "[%d/%d] %s: failed\n", event.Completed, event.Total, event.Document)
		}
	}

	result, err := deps.Runner.Run(deps.Ctx, session.Request{
		Input:          c.Input,
		Output:         c.Output,
		MarkdownOutput: c.Markdown,
		Markers:        c.Config.Markers,
		Title:          c.Config.Title,
	}, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(deps.Stderr, "warning: %s\n", w)
	}
	fmt.Fprintf(deps.Stdout, "Wrote %s (%s, digest %016x)\n", c.Output, result.Summary(), result.Digest)
	if c.Markdown != "" {
		fmt.Fprintf(deps.Stdout, "Wrote %s\n", c.Markdown)
	}

	return nil
}

func formatName(f splice.Format) string {
	if f == splice.FormatUnknown {
		return "unknown"
	}
	return string(f)
}

// errorText prefers the message of application errors and falls back to
// the full error text for everything else.
func errorText(err error) string {
	if splice.ErrorCode(err) == splice.EINTERNAL && splice.ErrorMessage(err) == "Internal error" {
		return err.Error()
	}
	return splice.ErrorMessage(err)
}
