package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/ukaji3/sheetserve/pkg/sheetserve"
)

func newTablesCmd() *cobra.Command {
	var (
		jsonOut bool
		pretty  bool
		sheet   string
	)

	cmd := &cobra.Command{
		Use:   "tables <workbook>",
		Short: "List the tables found in a workbook",
		Example: `  sheetserve tables capbudg.xlsx
  sheetserve tables --json --pretty capbudg.xlsx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := sheetserve.Load(args[0], sheetserve.Options{Sheet: sheet})
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(cmd, map[string]any{"tables": cat.TableNames()}, pretty)
			}
			for _, name := range cat.TableNames() {
				cmd.Println(name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output JSON")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVar(&sheet, "sheet", "", "Load only the named sheet")

	return cmd
}

func newRowsCmd() *cobra.Command {
	var (
		jsonOut bool
		pretty  bool
		sheet   string
	)

	cmd := &cobra.Command{
		Use:     "rows <workbook> <table>",
		Short:   "List the row labels of one table",
		Example: `  sheetserve rows capbudg.xlsx "Initial Investment"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := sheetserve.Load(args[0], sheetserve.Options{Sheet: sheet})
			if err != nil {
				return err
			}
			labels, err := cat.RowLabels(args[1])
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(cmd, map[string]any{
					"table_name": args[1],
					"row_names":  labels,
				}, pretty)
			}
			for _, label := range labels {
				cmd.Println(label)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output JSON")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVar(&sheet, "sheet", "", "Load only the named sheet")

	return cmd
}

func newSumCmd() *cobra.Command {
	var (
		jsonOut bool
		pretty  bool
		sheet   string
	)

	cmd := &cobra.Command{
		Use:     "sum <workbook> <table> <row>",
		Short:   "Sum the numeric cells of one row",
		Example: `  sheetserve sum capbudg.xlsx "Initial Investment" "Tax Credit (if any)="`,
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := sheetserve.Load(args[0], sheetserve.Options{Sheet: sheet})
			if err != nil {
				return err
			}
			sum, err := cat.SumRow(args[1], args[2])
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(cmd, map[string]any{
					"table_name": args[1],
					"row_name":   args[2],
					"sum":        sum,
				}, pretty)
			}
			cmd.Printf("%g\n", sum)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output JSON")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVar(&sheet, "sheet", "", "Load only the named sheet")

	return cmd
}

func printJSON(cmd *cobra.Command, v any, pretty bool) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
