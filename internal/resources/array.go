package resources

import (
	"strconv"
	"strings"
)

// ParseArrayCount returns the total number of tasks described by a Slurm
// --array specification. Supported syntax:
//
//	1,3,5        comma-separated indices
//	0-9          ranges
//	1-10:2       ranges with a step
//	0-99%10      throttle suffix, bounds concurrency only, never the count
//
// An empty spec counts as a single task. A reversed range (end < start)
// contributes exactly 1, and a non-positive step is coerced to 1. Any
// malformed token yields ok=false; the caller collapses that to a count of 1.
// Array parsing is never a hard failure.
func ParseArrayCount(spec string) (int, bool) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return 1, true
	}

	total := 0
	for _, item := range strings.Split(spec, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		// Strip the throttle suffix (e.g. "%10")
		item, _, _ = strings.Cut(item, "%")

		if !strings.Contains(item, "-") {
			if _, err := strconv.Atoi(item); err != nil {
				return 0, false
			}
			total++
			continue
		}

		rng, stepStr, hasStep := strings.Cut(item, ":")
		if !hasStep {
			stepStr = "1"
		}
		startStr, endStr, _ := strings.Cut(rng, "-")

		start, err := strconv.Atoi(startStr)
		if err != nil {
			return 0, false
		}
		end, err := strconv.Atoi(endStr)
		if err != nil {
			return 0, false
		}
		step, err := strconv.Atoi(stepStr)
		if err != nil {
			return 0, false
		}
		if step <= 0 {
			step = 1
		}

		if end < start {
			// Slurm expects increasing ranges; a reversed range counts as 1
			total++
		} else {
			total += (end-start)/step + 1
		}
	}

	if total <= 0 {
		return 1, true
	}
	return total, true
}
