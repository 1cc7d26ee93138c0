// Package cost derives per-queue charged cost from a canonical resource
// request. The charged cost on a queue is the greater of CPU-hours and
// memory-hours scaled by the queue's memory cost factor.
package cost

import (
	"math"

	"github.com/nris-hpc/jobcost/internal/resources"
)

// Breakdown holds the cost figures for one array task or for the whole array.
type Breakdown struct {
	CPUHours float64
	MemHours map[Queue]float64
	Charged  map[Queue]float64
}

// Details is the terminal artifact of the pipeline, consumed by the report
// renderer. PerTask covers a single array element; Total scales it by the
// array task count.
type Details struct {
	Hours      float64
	CPUs       int
	MemoryGiB  float64
	ArrayCount int
	PerTask    Breakdown
	Total      Breakdown
}

// Model computes costs using a fixed set of per-queue memory factors.
type Model struct {
	factors map[Queue]float64
}

// NewModel returns a model using the default queue factors, with any
// overrides applied on top. Overrides for unknown queues are ignored.
func NewModel(overrides map[Queue]float64) *Model {
	factors := make(map[Queue]float64, len(DefaultFactors))
	for q, f := range DefaultFactors {
		factors[q] = f
	}
	for q, f := range overrides {
		if _, ok := factors[q]; ok && f > 0 {
			factors[q] = f
		}
	}
	return &Model{factors: factors}
}

// Factor returns the memory cost factor for a queue.
func (m *Model) Factor(q Queue) float64 {
	return m.factors[q]
}

// Calculate derives the per-task and total cost breakdowns for a request.
// Pure computation: no I/O and no failure modes, since the request fields
// are already validated numeric values.
func (m *Model) Calculate(req *resources.Request) *Details {
	perTask := Breakdown{
		CPUHours: float64(req.CPUs) * req.Hours,
		MemHours: make(map[Queue]float64, len(m.factors)),
		Charged:  make(map[Queue]float64, len(m.factors)),
	}
	for _, q := range Queues {
		perTask.MemHours[q] = req.MemoryGiB * req.Hours * m.factors[q]
		perTask.Charged[q] = math.Max(perTask.CPUHours, perTask.MemHours[q])
	}

	return &Details{
		Hours:      req.Hours,
		CPUs:       req.CPUs,
		MemoryGiB:  req.MemoryGiB,
		ArrayCount: req.ArrayCount,
		PerTask:    perTask,
		Total:      perTask.scale(float64(req.ArrayCount)),
	}
}

// Calculate computes cost details with the default queue factors.
func Calculate(req *resources.Request) *Details {
	return NewModel(nil).Calculate(req)
}

// scale multiplies every figure in the breakdown by n, returning a fresh
// breakdown. Used to derive array totals from per-task costs.
func (b Breakdown) scale(n float64) Breakdown {
	scaled := Breakdown{
		CPUHours: b.CPUHours * n,
		MemHours: make(map[Queue]float64, len(b.MemHours)),
		Charged:  make(map[Queue]float64, len(b.Charged)),
	}
	for q, v := range b.MemHours {
		scaled.MemHours[q] = v * n
	}
	for q, v := range b.Charged {
		scaled.Charged[q] = v * n
	}
	return scaled
}

// CheapestQueue returns the queue with the lowest per-task charged cost.
// Ties resolve to the earlier queue in Queues.
func (d *Details) CheapestQueue() Queue {
	best := Queues[0]
	for _, q := range Queues[1:] {
		if d.PerTask.Charged[q] < d.PerTask.Charged[best] {
			best = q
		}
	}
	return best
}

// MostExpensiveQueue returns the queue with the highest per-task charged cost.
// Ties resolve to the earlier queue in Queues.
func (d *Details) MostExpensiveQueue() Queue {
	worst := Queues[0]
	for _, q := range Queues[1:] {
		if d.PerTask.Charged[q] > d.PerTask.Charged[worst] {
			worst = q
		}
	}
	return worst
}

// ChargedOn returns the charged cost for a queue: the array total when the
// job is an array, otherwise the single-task figure.
func (d *Details) ChargedOn(q Queue) float64 {
	if d.ArrayCount > 1 {
		return d.Total.Charged[q]
	}
	return d.PerTask.Charged[q]
}
