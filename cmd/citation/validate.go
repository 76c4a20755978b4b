package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/citation-panel/internal/crossref"
)

var validateCmd = &cobra.Command{
	Use:   "validate <doi>",
	Short: "Check that a DOI names a CrossRef work",
	Long: `Validate normalizes the DOI (stripping doi: and doi.org prefixes), checks its
syntax, and confirms CrossRef returns a titled work for it. The exit status is
non-zero for invalid DOIs.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doi := crossref.Normalize(args[0])
		if !crossref.IsDOI(doi) {
			return fmt.Errorf("invalid DOI %q: not of the form 10.NNNN/suffix", args[0])
		}
		if err := newClient(cmd.ErrOrStderr()).Validate(cmd.Context(), doi); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "valid: %s\n", doi)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
