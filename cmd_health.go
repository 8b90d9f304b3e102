package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// healthCmd represents the health command.
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check whether the banking API is reachable",
	RunE:  healthRun,
}

func healthRun(cmd *cobra.Command, _ []string) error {
	if err := client.Health(cmd.Context()); err != nil {
		log.Debug("health check failed", "error", err)
		fmt.Fprintln(cmd.OutOrStdout(), "Offline")
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Online")
	return nil
}
