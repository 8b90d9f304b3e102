package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"banktui/bankclient"
)

const (
	jsonOutputFormat  = "json"
	tableOutputFormat = "table"
)

// Global variables for configuration.
var (
	cfgFile  string
	debug    bool
	apiURL   string
	username string
	password string
	cfg      Config
	client   *bankclient.Client
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "banktui",
	Short: "A terminal UI and CLI for the banking API",
	Long:  `A terminal-based interface and CLI for a stateless banking REST service.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		// Setup logging
		log.SetLevel(log.InfoLevel)
		if debug {
			log.SetLevel(log.DebugLevel)
		}

		cfg = Config{
			Debug:      debug,
			APIBaseURL: apiURL,
			Colors:     cfg.Colors,
		}

		// Create the banking API client with a logging transport
		hc := &http.Client{
			Transport: newLoggingTransport(http.DefaultTransport, log.Default()),
		}

		var err error
		client, err = bankclient.New(cfg.APIBaseURL, bankclient.WithHTTPClient(hc))
		if err != nil {
			return fmt.Errorf("failed to create banking client: %w", err)
		}

		log.Debug("banking client created", "base_url", client.BaseURL())

		return nil
	},
	RunE: func(c *cobra.Command, _ []string) error {
		// Start TUI when no subcommands are provided
		return rootAction(c.Context(), cfg, client)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.banktui.toml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", bankclient.DefaultBaseURL,
		"base URL of the banking API")
	rootCmd.PersistentFlags().StringVar(&username, "username", "", "username for one-shot commands")
	rootCmd.PersistentFlags().StringVar(&password, "password", "", "password for one-shot commands")

	// Bind flags to viper
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("api_base_url", rootCmd.PersistentFlags().Lookup("api-url"))
	_ = viper.BindPFlag("username", rootCmd.PersistentFlags().Lookup("username"))
	_ = viper.BindPFlag("password", rootCmd.PersistentFlags().Lookup("password"))

	// Bind environment variables
	_ = viper.BindEnv("api_base_url", "API_BASE_URL")
	_ = viper.BindEnv("username", "BANKTUI_USERNAME")
	_ = viper.BindEnv("password", "BANKTUI_PASSWORD")

	// Add subcommands
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(accountCmd)
	rootCmd.AddCommand(transactionsCmd)
	rootCmd.AddCommand(healthCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("banktui")
		viper.SetConfigType("toml")

		if configDir, err := os.UserConfigDir(); err == nil {
			viper.AddConfigPath(configDir + "/banktui")
		}

		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(home + "/.config/banktui")
		}

		viper.AddConfigPath("/etc/banktui")
	}

	viper.AutomaticEnv() // read in environment variables that match

	if err := viper.ReadInConfig(); err == nil {
		log.Debug("Using config file", "file", viper.ConfigFileUsed())

		if fileCfg, loadErr := loadConfigFromFile(viper.ConfigFileUsed()); loadErr == nil {
			cfg.Colors = fileCfg.Colors
		}
	}

	// Update global variables from viper
	if !rootCmd.PersistentFlags().Changed("debug") {
		debug = viper.GetBool("debug")
	}
	if !rootCmd.PersistentFlags().Changed("api-url") && viper.GetString("api_base_url") != "" {
		apiURL = viper.GetString("api_base_url")
	}
	if !rootCmd.PersistentFlags().Changed("username") {
		username = viper.GetString("username")
	}
	if !rootCmd.PersistentFlags().Changed("password") {
		password = viper.GetString("password")
	}
}

// credentialsFromFlags builds the credential for one-shot commands, failing
// before any network call when either half is missing.
func credentialsFromFlags() (bankclient.Credentials, error) {
	if username == "" || password == "" {
		return bankclient.Credentials{}, errors.New("username and password are required " +
			"(set via --username/--password flags or BANKTUI_USERNAME/BANKTUI_PASSWORD environment variables)")
	}

	return bankclient.Credentials{Username: username, Password: password}, nil
}

// Utility functions for output formatting.
func outputJSON(data any) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	fmt.Println(string(jsonData))
	return nil
}

func createStyledTable(headers ...string) *table.Table {
	var (
		purple    = lipgloss.Color("99")
		gray      = lipgloss.Color("245")
		lightGray = lipgloss.Color("241")

		headerStyle  = lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
		cellStyle    = lipgloss.NewStyle().Padding(0, 1)
		oddRowStyle  = cellStyle.Foreground(gray)
		evenRowStyle = cellStyle.Foreground(lightGray)
	)

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(purple)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row%2 == 0:
				return evenRowStyle
			default:
				return oddRowStyle
			}
		}).
		Headers(headers...)
}
