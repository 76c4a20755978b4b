package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/citation-panel/internal/citation"
	"github.com/pdiddy/citation-panel/internal/tui"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Open the interactive citation panel",
	Long: `Watch opens a terminal panel with a DOI input field. Each edit looks the
field's value up on CrossRef; clearing the field hides the panel. Results of
superseded edits are discarded.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(cmd.Context(), watchResolver())
	},
}

// watchResolver writes neither traces nor retry progress: any output would
// corrupt the full-screen view.
func watchResolver() *citation.Resolver {
	return citation.NewResolver(newClient(nil), nil)
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
