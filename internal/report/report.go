// Package report renders a cost breakdown as a colorized terminal report
// with a cheapest-queue recommendation and a warning banner for jobs whose
// charged cost crosses the configured threshold.
package report

import (
	"fmt"
	"io"

	"github.com/nris-hpc/jobcost/internal/cost"
	"github.com/nris-hpc/jobcost/internal/utils"
)

// Options controls report thresholds and pricing.
type Options struct {
	// WarnThreshold is the charged cost (CPU-hours) at or above which the
	// warning banner is printed.
	WarnThreshold float64

	// MarketPriceNOK converts CPU-hours into an approximate expense.
	MarketPriceNOK float64
}

// Render writes the full cost report for d to w.
func Render(w io.Writer, d *cost.Details, opts Options) {
	cheapest := d.CheapestQueue()
	mostExpensive := d.MostExpensiveQueue()
	cheapestCost := d.ChargedOn(cheapest)
	mostExpensiveCost := d.ChargedOn(mostExpensive)

	fmt.Fprintln(w)
	fmt.Fprintln(w, utils.StyleTitle("================= Job Cost Report =========================="))
	fmt.Fprintln(w)

	if mostExpensiveCost >= opts.WarnThreshold {
		warning := fmt.Sprintf(
			"\nThis job can be expensive!\n\n"+
				"Highest possible cost: %s CPU-hours\n"+
				"On queue: %s\n"+
				"Expense: %s NOK at market price\n\n"+
				"Consider reducing walltime, CPUs, or requested memory, or "+
				"choosing a different queue. Carefully inspect the calculated "+
				"cost also on the cheapest queue. It could be unacceptably "+
				"high as well.\n",
			utils.FormatNumber(mostExpensiveCost),
			mostExpensive,
			utils.FormatNumber(mostExpensiveCost*opts.MarketPriceNOK))
		printBanner(w, warning, "WARNING", utils.StyleAlert)
		fmt.Fprintln(w)
	}

	recommendation := fmt.Sprintf(
		"\nCheapest cost: %s CPU-hours\nOn queue: %s\nExpense: %s NOK at market price\n",
		utils.FormatNumber(cheapestCost),
		cheapest,
		utils.FormatNumber(cheapestCost*opts.MarketPriceNOK))
	printBanner(w, recommendation, "CHEAPEST QUEUE", utils.StyleGood)
	fmt.Fprintln(w)

	fmt.Fprintln(w, utils.StyleTitle("================= Basic ===================================="))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "- Your requested resource allocation")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "    • time per task (hrs)  : %s\n", utils.StyleValue(int(d.Hours)))
	fmt.Fprintf(w, "    • cpus per task        : %s\n", utils.StyleValue(d.CPUs))
	fmt.Fprintf(w, "    • memory per task (gb) : %s\n", utils.StyleValue(int(d.MemoryGiB)))
	fmt.Fprintf(w, "    • array size (tasks)   : %s\n", utils.StyleValue(d.ArrayCount))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "- Cost in CPU-hours on each queue")
	fmt.Fprintln(w)
	writeQueueFigures(w, d, d.PerTask.Charged, d.Total.Charged)

	fmt.Fprintf(w, "- NB: These are the costs of submitting your script %s.\n",
		utils.StyleAlert("once"))
	fmt.Fprintln(w)

	fmt.Fprintln(w, utils.StyleTitle("================= Advanced ================================="))
	fmt.Fprintln(w)

	if d.ArrayCount > 1 {
		fmt.Fprintln(w, "- CPU-hours occupied by requested CPUs:")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "    • per task : %s\n", utils.StyleValue(utils.FormatNumber(d.PerTask.CPUHours)))
		fmt.Fprintf(w, "    • total    : %s\n", utils.StyleValue(utils.FormatNumber(d.Total.CPUHours)))
	} else {
		fmt.Fprintf(w, "- CPU-hours occupied by requested CPUs: %s\n",
			utils.StyleValue(utils.FormatNumber(d.PerTask.CPUHours)))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "- CPU-hours occupied by requested memory (per queue)")
	fmt.Fprintln(w)
	writeQueueFigures(w, d, d.PerTask.MemHours, d.Total.MemHours)

	fmt.Fprintln(w, utils.StyleTitle("================= End of Cost Report ======================="))
	fmt.Fprintln(w)
}

// writeQueueFigures prints one figure per queue; array jobs get a
// per-task/total pair instead of a single line.
func writeQueueFigures(w io.Writer, d *cost.Details, perTask, total map[cost.Queue]float64) {
	if d.ArrayCount > 1 {
		for _, q := range cost.Queues {
			fmt.Fprintf(w, "    • %s\n", utils.StyleQueue(string(q)))
			fmt.Fprintf(w, "      per task : %s\n", utils.StyleValue(utils.FormatNumber(perTask[q])))
			fmt.Fprintf(w, "      total    : %s\n", utils.StyleValue(utils.FormatNumber(total[q])))
		}
	} else {
		for _, q := range cost.Queues {
			// Pad before styling; ANSI codes would skew printf widths
			name := fmt.Sprintf("%-8s", string(q))
			fmt.Fprintf(w, "    • %s: %s\n", utils.StyleQueue(name),
				utils.StyleValue(utils.FormatNumber(perTask[q])))
		}
	}
	fmt.Fprintln(w)
}
