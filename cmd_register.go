package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// registerCmd represents the register command.
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new account",
	Long:  `Register a new user account with the banking API.`,
	RunE:  registerRun,
}

func registerRun(cmd *cobra.Command, _ []string) error {
	creds, err := credentialsFromFlags()
	if err != nil {
		return err
	}

	if err := client.Register(cmd.Context(), creds); err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	log.Info("Registration successful! You can now login.", "username", creds.Username)
	return nil
}
