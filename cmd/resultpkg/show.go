package main

import (
	"github.com/spf13/cobra"

	"github.com/ib-77/result/internal/manifest"
)

// createShowCommand creates the show subcommand
func createShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [flags] MANIFEST",
		Short: "Print a manifest in normalised form",
		Long: `Load a manifest, check it against the manifest schema and print it
back as YAML with the canonical key order. Rule checks are not applied; use
validate for that.`,
		Args: cobra.ExactArgs(1),
		RunE: executeShow,
	}
}

func executeShow(cmd *cobra.Command, args []string) error {
	m, err := manifest.Load(args[0]).Get()
	if err != nil {
		return err
	}

	out, err := manifest.Marshal(m)
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(out)
	return err
}
