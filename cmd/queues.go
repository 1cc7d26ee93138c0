package cmd

import (
	"fmt"

	"github.com/nris-hpc/jobcost/internal/cost"
	"github.com/nris-hpc/jobcost/internal/utils"
	"github.com/spf13/cobra"
)

var queuesCmd = &cobra.Command{
	Use:   "queues",
	Short: "List the scheduling queues and their memory cost factors",
	Long: `List every queue the cost model knows about together with its memory
cost factor. The factor converts requested memory (GiB) held for one hour
into CPU-hour equivalents; configured overrides are shown in place of the
built-in values.`,
	Example: `  jobcost queues`,
	Args:    cobra.NoArgs,
	RunE:    runQueues,
}

func init() {
	rootCmd.AddCommand(queuesCmd)
}

func runQueues(cmd *cobra.Command, args []string) error {
	model := cost.NewModel(queueOverrides())

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, utils.StyleTitle("Queues"))
	for _, q := range cost.Queues {
		name := fmt.Sprintf("%-8s", string(q))
		fmt.Fprintf(out, "  %s memory factor: %s\n",
			utils.StyleQueue(name), utils.StyleValue(fmt.Sprintf("%.7g", model.Factor(q))))
	}
	return nil
}
