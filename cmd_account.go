package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// accountCmd represents the account command.
var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Account operations",
	Long:  `Commands for checking the balance and moving money in and out of the account.`,
}

// accountBalanceCmd represents the account balance command.
var accountBalanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show the current balance",
	RunE:  accountBalanceRun,
}

// accountDepositCmd represents the account deposit command.
var accountDepositCmd = &cobra.Command{
	Use:   "deposit",
	Short: "Deposit money into the account",
	RunE:  accountDepositRun,
}

// accountWithdrawCmd represents the account withdraw command.
var accountWithdrawCmd = &cobra.Command{
	Use:   "withdraw",
	Short: "Withdraw money from the account",
	RunE:  accountWithdrawRun,
}

func init() {
	accountCmd.AddCommand(accountBalanceCmd)
	accountCmd.AddCommand(accountDepositCmd)
	accountCmd.AddCommand(accountWithdrawCmd)

	accountBalanceCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")
	accountDepositCmd.Flags().String("amount", "", "amount to deposit")
	accountWithdrawCmd.Flags().String("amount", "", "amount to withdraw")

	_ = accountDepositCmd.MarkFlagRequired("amount")
	_ = accountWithdrawCmd.MarkFlagRequired("amount")
}

// validateOutputFormat gets and validates the output flag of a command.
func validateOutputFormat(cmd *cobra.Command) (string, error) {
	outputFormat, err := cmd.Flags().GetString("output")
	if err != nil {
		return "", fmt.Errorf("failed to read output flag: %w", err)
	}

	if outputFormat != tableOutputFormat && outputFormat != jsonOutputFormat {
		return "", fmt.Errorf("invalid output format: %s (must be 'table' or 'json')", outputFormat)
	}

	return outputFormat, nil
}

// parseAmountFlag validates the amount flag before any network call is made.
func parseAmountFlag(cmd *cobra.Command) (float64, error) {
	amountStr, err := cmd.Flags().GetString("amount")
	if err != nil {
		return 0, fmt.Errorf("failed to read amount flag: %w", err)
	}

	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount: %s", amountStr)
	}

	if amount <= 0 {
		return 0, fmt.Errorf("invalid amount: %s (must be greater than zero)", amountStr)
	}

	return amount, nil
}

func accountBalanceRun(cmd *cobra.Command, _ []string) error {
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	creds, err := credentialsFromFlags()
	if err != nil {
		return err
	}

	balance, err := client.Balance(cmd.Context(), creds)
	if err != nil {
		return fmt.Errorf("failed to fetch balance: %w", err)
	}

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(map[string]float64{"balance": balance})
	case tableOutputFormat:
		t := createStyledTable("FIELD", "VALUE")
		t.Row("Username", creds.Username)
		t.Row("Balance", money.NewFromFloat(balance, money.USD).Display())
		fmt.Fprintln(cmd.OutOrStdout(), t)
		return nil
	default:
		return errors.New("unsupported output format")
	}
}

func accountDepositRun(cmd *cobra.Command, _ []string) error {
	amount, err := parseAmountFlag(cmd)
	if err != nil {
		return err
	}

	creds, err := credentialsFromFlags()
	if err != nil {
		return err
	}

	newBalance, err := client.Deposit(cmd.Context(), creds, amount)
	if err != nil {
		return fmt.Errorf("deposit failed: %w", err)
	}

	log.Info("Deposit successful",
		"amount", money.NewFromFloat(amount, money.USD).Display(),
		"new_balance", money.NewFromFloat(newBalance, money.USD).Display(),
	)
	return nil
}

func accountWithdrawRun(cmd *cobra.Command, _ []string) error {
	amount, err := parseAmountFlag(cmd)
	if err != nil {
		return err
	}

	creds, err := credentialsFromFlags()
	if err != nil {
		return err
	}

	newBalance, err := client.Withdraw(cmd.Context(), creds, amount)
	if err != nil {
		return fmt.Errorf("withdrawal failed: %w", err)
	}

	log.Info("Withdrawal successful",
		"amount", money.NewFromFloat(amount, money.USD).Display(),
		"new_balance", money.NewFromFloat(newBalance, money.USD).Display(),
	)
	return nil
}
