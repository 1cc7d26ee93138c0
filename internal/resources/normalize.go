// Package resources normalizes raw #SBATCH values into canonical units:
// walltime in hours, memory in GiB per task, total CPUs per task and the
// array task count.
package resources

import (
	"strconv"

	"github.com/nris-hpc/jobcost/internal/sbatch"
)

// Request is the canonical resource request derived from a script header.
// Hours is non-negative (a zero walltime is accepted as written); CPUs and
// ArrayCount are at least 1.
type Request struct {
	Hours      float64 // Walltime per task
	CPUs       int     // Total CPUs per task (ntasks × cpus-per-task)
	MemoryGiB  float64 // Memory per task
	ArrayCount int     // Number of array tasks (1 if not an array job)
}

// Normalize converts an extracted header into a Request.
//
// Walltime and memory are mandatory: a missing or unparsable time directive,
// or a memory value that cannot be derived from either --mem or
// --mem-per-cpu × CPUs, returns an error wrapping ErrMissingResource.
// The array spec and the CPU layout are best-effort: every failure there
// collapses to a default of 1. All collapse-to-default decisions live in
// this function so the permissive paths stay auditable.
func Normalize(header sbatch.HeaderMap) (*Request, error) {
	cpus := resolveCPUs(header)

	hours, ok := ParseWalltime(header["time"])
	if !ok {
		return nil, NewMissingResourceError("time", "cannot be unspecified")
	}

	memoryGiB, ok := ParseMemoryGiB(header["mem"])
	if !ok {
		perCPU, ok := ParseMemoryGiB(header["mem-per-cpu"])
		if !ok {
			return nil, NewMissingResourceError("mem", "cannot be unspecified")
		}
		memoryGiB = perCPU * float64(cpus)
	}

	arrayCount, ok := ParseArrayCount(header["array"])
	if !ok {
		arrayCount = 1
	}

	return &Request{
		Hours:      hours,
		CPUs:       cpus,
		MemoryGiB:  memoryGiB,
		ArrayCount: arrayCount,
	}, nil
}

// resolveCPUs computes total CPUs per task as ntasks × cpus-per-task.
// When --ntasks is absent it falls back to --ntasks-per-node × --nodes if
// both are present. Missing or non-integer directives degrade to 1; this
// resolver never fails.
func resolveCPUs(header sbatch.HeaderMap) int {
	ntasks, ok := parseInt(header["ntasks"])
	if !ok {
		tasksPerNode, okTasks := parseInt(header["ntasks-per-node"])
		nodes, okNodes := parseInt(header["nodes"])
		if okTasks && okNodes {
			ntasks = tasksPerNode * nodes
		} else {
			ntasks = 1
		}
	}

	cpusPerTask, ok := parseInt(header["cpus-per-task"])
	if !ok {
		cpusPerTask = 1
	}

	return ntasks * cpusPerTask
}

// parseInt parses a directive value as an integer. Empty or malformed
// values report ok=false; the caller picks the default.
func parseInt(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
