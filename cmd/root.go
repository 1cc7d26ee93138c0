package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/nris-hpc/jobcost/internal/config"
	"github.com/nris-hpc/jobcost/internal/resources"
	"github.com/nris-hpc/jobcost/internal/utils"
	"github.com/spf13/cobra"
)

var (
	debugMode bool
	quietMode bool
	noColor   bool
)

var rootCmd = &cobra.Command{
	Use:           "jobcost",
	Short:         "Estimate the charged cost of a Slurm batch script on each scheduling queue.",
	Version:       config.VERSION,
	SilenceErrors: true,

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Step 1: Load defaults
		config.LoadDefaults()

		// Step 2: Initialize Viper (read config file, env vars)
		if err := config.InitViper(); err != nil {
			utils.PrintDebug("Error reading config file: %v", err)
		}

		// Step 3: Load resolved values from Viper into Global config
		config.LoadFromViper()

		// Step 4: Apply command-line flags (highest priority)
		if debugMode {
			utils.DebugMode = true
			config.Global.Debug = true
			utils.PrintDebug("Debug mode enabled")
			utils.PrintDebug("jobcost Version: %s", utils.StyleNote(config.VERSION))
			utils.PrintDebug("Warning threshold: %v CPU-hours", config.Global.WarnThreshold)
			utils.PrintDebug("Market price: %v NOK per CPU-hour", config.Global.MarketPriceNOK)
		}
		if quietMode {
			utils.QuietMode = true
			config.Global.Quiet = true
		}
		if noColor || !config.Global.Color || !utils.IsInteractiveShell() {
			color.NoColor = true
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		utils.PrintError("%v", err)
		if errors.Is(err, resources.ErrMissingResource) {
			utils.PrintHint("Add #SBATCH --time=... and --mem=... (or --mem-per-cpu=...) directives to the script header")
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug mode with verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colorized output")
	rootCmd.SetVersionTemplate(fmt.Sprintf("jobcost %s\n", config.VERSION))
}
