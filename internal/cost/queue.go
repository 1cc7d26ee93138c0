package cost

// Queue is a scheduling class with a distinct memory cost factor.
type Queue string

const (
	Normal  Queue = "normal"
	Bigmem  Queue = "bigmem"
	Hugemem Queue = "hugemem"
)

// Queues lists every known queue in report order. Iteration over this slice
// keeps queue selection deterministic.
var Queues = []Queue{Normal, Bigmem, Hugemem}

// DefaultFactors holds the memory-hours multiplier per queue. Adding a queue
// is one line here plus its entry in Queues.
var DefaultFactors = map[Queue]float64{
	Normal:  0.2577031,
	Bigmem:  0.1104972,
	Hugemem: 0.01059603,
}

// IsKnown reports whether q names a configured queue.
func IsKnown(q Queue) bool {
	_, ok := DefaultFactors[q]
	return ok
}
