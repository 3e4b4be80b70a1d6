package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"jsonlens/internal/jsondoc"
	"jsonlens/internal/tree"
	"jsonlens/internal/tui"
)

type App struct {
	TruncateLimit int
	Web           bool
	Addr          string
	Open          bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "jsonlens [file]",
		Short:        "Inspect JSON or JSONL data as a collapsible tree",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Browse a file in the terminal UI
  jsonlens events.jsonl

  # Pipe data in
  kubectl get pods -o json | jsonlens

  # Open the web view instead
  jsonlens --web events.jsonl
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.TruncateLimit < 1 {
				return errors.New("truncate-limit must be >= 1")
			}
			raw, source, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			if app.Web {
				// The web path consumes the raw text, not the parsed set.
				return runWeb(cmd, app, raw, source)
			}
			docs := jsondoc.Parse(raw)
			root := tree.Project(docs, app.TruncateLimit)
			return tui.Run(root, source)
		},
	}

	cmd.Flags().IntVar(&app.TruncateLimit, "truncate-limit", tree.DefaultTruncateLimit, "Max characters of a string preview before it is shortened")
	cmd.Flags().BoolVar(&app.Web, "web", false, "Render in a browser instead of the terminal UI")
	cmd.Flags().StringVar(&app.Addr, "addr", "127.0.0.1:0", "Bind address for the web view (host:port or :port)")
	cmd.Flags().BoolVar(&app.Open, "open", true, "Open the web view in your default browser")

	return cmd
}
