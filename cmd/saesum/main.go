package main

import (
	"fmt"
	"os"

	_ "go.uber.org/automaxprocs"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "saesum",
		Short:         "Summarize Serious Adverse Event tables in study reports",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringP("config", "c", "", "Path to config file")

	root.AddCommand(newServeCommand(), newParseCommand())
	return root
}
