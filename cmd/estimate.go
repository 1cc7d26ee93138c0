package cmd

import (
	"github.com/nris-hpc/jobcost/internal/config"
	"github.com/nris-hpc/jobcost/internal/cost"
	"github.com/nris-hpc/jobcost/internal/report"
	"github.com/nris-hpc/jobcost/internal/resources"
	"github.com/nris-hpc/jobcost/internal/sbatch"
	"github.com/nris-hpc/jobcost/internal/utils"
	"github.com/spf13/cobra"
)

var (
	estimateThreshold float64
	estimatePrice     float64
)

var estimateCmd = &cobra.Command{
	Use:   "estimate [script]",
	Short: "Estimate per-queue cost for a Slurm batch script",
	Long: `Estimate what a Slurm batch script will cost in CPU-hours on each
scheduling queue (normal, bigmem, hugemem) before submitting it.

The script's #SBATCH header is parsed for walltime, CPU layout, memory and
array size. The charged cost on a queue is the greater of CPU-hours and
memory-hours scaled by the queue's memory cost factor; the cheapest queue is
recommended. Walltime and memory are mandatory; a missing array spec or CPU
layout defaults to a single task on a single CPU.`,
	Example: `  jobcost estimate job.sh                 # Estimate cost for job.sh
  jobcost estimate job.sh --threshold 500 # Warn above 500 CPU-hours
  jobcost estimate job.sh --no-color      # Plain output for piping`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true, // Runtime errors should not show usage
	RunE:         runEstimate,
}

func init() {
	rootCmd.AddCommand(estimateCmd)
	estimateCmd.Flags().Float64VarP(&estimateThreshold, "threshold", "T", 0,
		"Warning threshold in CPU-hours (overrides config)")
	estimateCmd.Flags().Float64Var(&estimatePrice, "price", 0,
		"Market price per CPU-hour in NOK (overrides config)")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	scriptPath := args[0]

	header, err := sbatch.ExtractFile(scriptPath)
	if err != nil {
		return err
	}
	utils.PrintDebug("Extracted %d directives from %s", len(header), scriptPath)

	if spec := header["array"]; spec != "" {
		if _, ok := resources.ParseArrayCount(spec); !ok {
			utils.PrintWarning("Unparsable array spec %q; costing the job as a single task", spec)
		}
	}

	req, err := resources.Normalize(header)
	if err != nil {
		return err
	}
	utils.PrintDebug("Normalized request: %.4f hrs, %d cpus, %.4f GiB, %d tasks",
		req.Hours, req.CPUs, req.MemoryGiB, req.ArrayCount)

	details := cost.NewModel(queueOverrides()).Calculate(req)

	opts := report.Options{
		WarnThreshold:  config.Global.WarnThreshold,
		MarketPriceNOK: config.Global.MarketPriceNOK,
	}
	if cmd.Flags().Changed("threshold") {
		opts.WarnThreshold = estimateThreshold
	}
	if cmd.Flags().Changed("price") {
		opts.MarketPriceNOK = estimatePrice
	}

	report.Render(cmd.OutOrStdout(), details, opts)
	return nil
}

// queueOverrides converts configured factor overrides to cost model keys.
func queueOverrides() map[cost.Queue]float64 {
	overrides := make(map[cost.Queue]float64, len(config.Global.QueueFactors))
	for name, factor := range config.Global.QueueFactors {
		overrides[cost.Queue(name)] = factor
	}
	return overrides
}
