package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"banktui/history"
)

// transactionsCmd represents the transactions command.
var transactionsCmd = &cobra.Command{
	Use:   "transactions",
	Short: "Transaction history commands",
}

// transactionsListCmd represents the transactions list command.
var transactionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the account's transaction history",
	RunE:  transactionsListRun,
}

func init() {
	transactionsCmd.AddCommand(transactionsListCmd)

	transactionsListCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")
}

func transactionsListRun(cmd *cobra.Command, _ []string) error {
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	creds, err := credentialsFromFlags()
	if err != nil {
		return err
	}

	ts, err := client.Transactions(cmd.Context(), creds)
	if err != nil {
		return fmt.Errorf("failed to fetch transactions: %w", err)
	}

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(ts)
	case tableOutputFormat:
		t := createStyledTable("TYPE", "DATE", "AMOUNT")
		for row := range history.All(ts) {
			t.Row(row.Label, row.When, row.Amount)
		}
		fmt.Fprintln(cmd.OutOrStdout(), t)
		return nil
	default:
		return errors.New("unsupported output format")
	}
}
