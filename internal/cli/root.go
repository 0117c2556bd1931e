// Package cli defines the cobra command tree. Commands only parse and
// validate settings; the work is done by the Handlers the app passes in.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"microtpct/internal/config"
	"microtpct/internal/version"
)

// Handlers run the commands once their settings are loaded and valid.
type Handlers struct {
	Match    func(cmd *cobra.Command, c config.Config) error
	Validate func(cmd *cobra.Command, c config.Config) error
	Info     func(cmd *cobra.Command) error
}

// NewRootCommand builds the command tree. Errors are returned, never
// printed; the caller maps them to exit codes.
func NewRootCommand(h Handlers) *cobra.Command {
	root := &cobra.Command{
		Use:   "microtpct",
		Short: "Match peptides against proteins",
		Long: `microtpct reports, for every query peptide, each target protein that contains
it and the zero-based offset of the leftmost occurrence.

Strict mode compares residues literally. Wildcard mode (--wildcard) lets the
ambiguous residues of a target (--wildcards, default X) match any single
query residue. A query found nowhere yields one row with empty target and
position.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate("microtpct version {{.Version}}\n")
	root.CompletionOptions.DisableDefaultCmd = true
	RegisterGlobalFlags(root.PersistentFlags())

	root.AddCommand(newMatchCommand(h.Match))
	root.AddCommand(newValidateCommand(h.Validate))
	root.AddCommand(newInfoCommand(h.Info))
	root.AddCommand(newVersionCommand())
	return root
}

func newMatchCommand(run func(*cobra.Command, config.Config) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "match",
		Aliases: []string{"run"},
		Short:   "Match query peptides against target proteins",
		Example: `  microtpct match -q peptides.fa -t proteome.fa
  microtpct match -q peptides.fa -t proteome.fa.gz --wildcard --wildcards XB -d , -o hits.csv
  microtpct match -q - -t proteome.fa --strategy aho --threads 8 --stats run.yaml < peptides.fa`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := LoadConfig(cmd)
			if err != nil {
				return err
			}
			if err := c.RequireInputs(true); err != nil {
				return err
			}
			return run(cmd, c)
		},
	}
	RegisterMatchFlags(cmd.Flags())
	return cmd
}

func newValidateCommand(run func(*cobra.Command, config.Config) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Parse query and/or target FASTA and report record counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := LoadConfig(cmd)
			if err != nil {
				return err
			}
			if err := c.RequireInputs(false); err != nil {
				return err
			}
			return run(cmd, c)
		},
	}
	RegisterInputFlags(cmd.Flags())
	return cmd
}

func newInfoCommand(run func(*cobra.Command) error) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "List matching modes, strategies and output formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd)
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "microtpct version %s\n", version.Version)
		},
	}
}
