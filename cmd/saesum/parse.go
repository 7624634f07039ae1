package main

import (
	"encoding/json"
	"fmt"

	"github.com/dgallion1/saesum/internal/sae"
	"github.com/spf13/cobra"
)

func newParseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse FILE...",
		Short: "Summarize SAE tables in local documents and print JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runParse,
	}
	cmd.Flags().Bool("indent", false, "Indent JSON output")
	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	indent, _ := cmd.Flags().GetBool("indent")

	enc := json.NewEncoder(cmd.OutOrStdout())
	if indent {
		enc.SetIndent("", "  ")
	}
	for _, path := range args {
		results, err := sae.ExtractFile(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if err := enc.Encode(sae.Report{Results: results}); err != nil {
			return err
		}
	}
	return nil
}
