package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/citation-panel/internal/citation"
	"github.com/pdiddy/citation-panel/internal/view"
	"github.com/pdiddy/citation-panel/pkg/types"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [doi...]",
	Short: "Show the citation panel for DOIs",
	Long: `Resolve looks up each DOI on CrossRef and prints the citation panel as it
changes: "Fetching..." while the request is in flight, then the title and
reference count, or an error line when the DOI cannot be found. An empty
argument hides the panel.

With --format json or yaml the decoded CrossRef records are printed instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().String("format", "text", "output format: text, json, or yaml")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "text":
		return resolvePanel(cmd, args)
	case "json", "yaml":
		return resolveRecords(cmd, args, format)
	default:
		return fmt.Errorf("unknown format %q (want text, json, or yaml)", format)
	}
}

func resolvePanel(cmd *cobra.Command, dois []string) error {
	ctx := cmd.Context()
	resolver := citation.NewResolver(newClient(cmd.ErrOrStderr()), cmd.ErrOrStderr())
	session := citation.NewSession(resolver, view.NewLinePanel(cmd.OutOrStdout()))
	defer session.Close()

	failed := 0
	for _, doi := range dois {
		res, err := session.Resolve(ctx, doi).Wait(ctx)
		if err != nil {
			return err
		}
		if res.State.Phase == types.PhaseFailed {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d DOI(s) could not be resolved", failed)
	}
	return nil
}

// record is one entry of structured resolve output.
type record struct {
	DOI   string      `json:"doi" yaml:"doi"`
	Work  *types.Work `json:"work,omitempty" yaml:"work,omitempty"`
	Error string      `json:"error,omitempty" yaml:"error,omitempty"`
}

func resolveRecords(cmd *cobra.Command, dois []string, format string) error {
	ctx := cmd.Context()
	client := newClient(cmd.ErrOrStderr())

	records := make([]record, 0, len(dois))
	failed := 0
	for _, doi := range dois {
		if doi == "" {
			continue
		}
		r := record{DOI: doi}
		work, err := client.Work(ctx, doi)
		if err != nil {
			r.Error = err.Error()
			failed++
		} else {
			r.Work = work
		}
		records = append(records, r)
	}

	if err := writeRecords(cmd.OutOrStdout(), records, format); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d DOI(s) could not be resolved", failed)
	}
	return nil
}

func writeRecords(w io.Writer, records []record, format string) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}
