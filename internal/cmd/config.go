package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/orgchart/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View orgchart configuration",
	Long: `View orgchart configuration.

Without arguments, displays the current configuration.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out)

	// Show where config is being read from
	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Config file: (none - using defaults)\n")
	}
	fmt.Fprintln(out)

	// Org settings
	fmt.Fprintln(out, "org:")
	fmt.Fprintf(out, "  technical_base_salary: %s\n", cfg.Org.TechnicalBaseSalary)
	fmt.Fprintf(out, "  business_base_salary: %s\n", cfg.Org.BusinessBaseSalary)
	fmt.Fprintf(out, "  technical_lead_head_count: %d\n", cfg.Org.TechnicalLeadHeadCount)
	fmt.Fprintf(out, "  business_lead_head_count: %d\n", cfg.Org.BusinessLeadHeadCount)
	fmt.Fprintf(out, "  budget_margin: %s\n", cfg.Org.BudgetMargin)

	// Logging settings
	fmt.Fprintln(out, "logging:")
	fmt.Fprintf(out, "  enabled: %v\n", cfg.Logging.Enabled)
	fmt.Fprintf(out, "  level: %s\n", cfg.Logging.Level)

	// Display settings
	fmt.Fprintln(out, "display:")
	fmt.Fprintf(out, "  color: %v\n", cfg.Display.Color)
	fmt.Fprintf(out, "  width: %d\n", cfg.Display.Width)

	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), config.ConfigFile())
	return nil
}
