// Package main provides the CLI entry point for sheetserve.
package main

import (
	"os"

	"github.com/spf13/cobra"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sheetserve",
		Short: "Extract tables from spreadsheet workbooks and query row sums",
		Long: `sheetserve reads a workbook, carves each sheet into logically distinct
tables, and answers table listing and row-sum queries from the command line
or over HTTP.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newTablesCmd())
	rootCmd.AddCommand(newRowsCmd())
	rootCmd.AddCommand(newSumCmd())

	return rootCmd
}
