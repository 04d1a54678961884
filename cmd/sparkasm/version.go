package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zlovro/sparkAssembler/version"
)

var versionCommand = &cobra.Command{
	Use:   "version",
	Short: "Print the sparkasm version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), "sparkasm version", version.Version)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCommand)
}
