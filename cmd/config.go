package cmd

import (
	"fmt"
	"os"

	"github.com/nris-hpc/jobcost/internal/config"
	"github.com/nris-hpc/jobcost/internal/cost"
	"github.com/nris-hpc/jobcost/internal/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	showPath  bool
	initForce bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage jobcost configuration",
	Long: `Manage jobcost configuration settings.

Configuration priority (highest to lowest):
  1. Command-line flags
  2. Environment variables (JOBCOST_*)
  3. User config file (~/.config/jobcost/config.yaml)
  4. System config file (/etc/jobcost/config.yaml)
  5. Defaults`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long: `Display current configuration values and their sources.

Shows:
  - The config file in use (if any)
  - Report and cost model settings
  - Per-queue memory factor overrides
  - Environment variable overrides`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showPath {
			configPath, err := config.GetUserConfigPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), configPath)
			return nil
		}

		out := cmd.OutOrStdout()

		fmt.Fprintln(out, utils.StyleTitle("Config File:"))
		if used := viper.ConfigFileUsed(); used != "" {
			fmt.Fprintf(out, "  %s\n", used)
		} else {
			fmt.Fprintf(out, "  %s\n", utils.StyleWarning("none found"))
			utils.PrintHint("Run 'jobcost config init' to create one")
		}
		fmt.Fprintln(out)

		fmt.Fprintln(out, utils.StyleTitle("Report:"))
		fmt.Fprintf(out, "  %s: %s\n",
			utils.StyleName("report.color"), utils.StyleValue(config.Global.Color))
		fmt.Fprintln(out)

		fmt.Fprintln(out, utils.StyleTitle("Cost Model:"))
		fmt.Fprintf(out, "  %s: %s\n",
			utils.StyleName("cost.warn_threshold"), utils.StyleValue(config.Global.WarnThreshold))
		fmt.Fprintf(out, "  %s: %s\n",
			utils.StyleName("cost.market_price_nok"), utils.StyleValue(config.Global.MarketPriceNOK))
		fmt.Fprintln(out)

		fmt.Fprintln(out, utils.StyleTitle("Queue Memory Factors:"))
		model := cost.NewModel(queueOverrides())
		for _, q := range cost.Queues {
			marker := ""
			if _, ok := config.Global.QueueFactors[string(q)]; ok {
				marker = " (override)"
			}
			fmt.Fprintf(out, "  %s: %s%s\n", utils.StyleName(string(q)),
				utils.StyleValue(fmt.Sprintf("%.7g", model.Factor(q))), marker)
		}
		fmt.Fprintln(out)

		fmt.Fprintln(out, utils.StyleTitle("Environment Variable Overrides:"))
		envVars := []string{
			"JOBCOST_REPORT_COLOR",
			"JOBCOST_COST_WARN_THRESHOLD",
			"JOBCOST_COST_MARKET_PRICE_NOK",
		}
		hasEnvOverrides := false
		for _, envVar := range envVars {
			if val := os.Getenv(envVar); val != "" {
				fmt.Fprintf(out, "  %s=%s\n", envVar, val)
				hasEnvOverrides = true
			}
		}
		if !hasEnvOverrides {
			fmt.Fprintf(out, "  %s\n", utils.StyleNote("none"))
		}
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a user config file with the current defaults",
	Long: `Create a configuration file in the user config directory
(~/.config/jobcost/config.yaml) seeded with the resolved default values.
Edit it to change the warning threshold, market price, or per-queue
memory cost factors.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := config.GetUserConfigPath()
		if err != nil {
			return err
		}

		if _, err := os.Stat(configPath); err == nil && !initForce {
			utils.PrintWarning("Config file already exists: %s", configPath)
			utils.PrintHint("Pass --force to overwrite it")
			return nil
		}

		utils.PrintMessage("Writing configuration to %s", utils.StyleName(configPath))
		if err := config.WriteDefaultConfig(configPath); err != nil {
			return err
		}
		utils.PrintSuccess("Config file created")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configInitCmd)
	configShowCmd.Flags().BoolVar(&showPath, "path", false, "Print the user config file path and exit")
	configInitCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config file")
}
