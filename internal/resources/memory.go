package resources

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

const bytesInKiB = 1024

// memoryRe matches a number with an optional unit suffix, e.g. "16000",
// "16000M", "16G", "0.5t", "4GiB". The unit is case-insensitive.
var memoryRe = regexp.MustCompile(`(?i)^\s*(\d+(?:\.\d+)?)\s*([kmgt](?:i?b)?|)\s*$`)

// memoryScale maps a lowercased unit suffix to the multiplier that converts
// the amount to GiB. An absent unit means MiB, Slurm's default memory unit.
var memoryScale = map[string]float64{
	"":    bytesInKiB * bytesInKiB / float64(bytesInKiB*bytesInKiB*bytesInKiB),
	"k":   bytesInKiB / float64(bytesInKiB*bytesInKiB*bytesInKiB),
	"kb":  bytesInKiB / float64(bytesInKiB*bytesInKiB*bytesInKiB),
	"kib": bytesInKiB / float64(bytesInKiB*bytesInKiB*bytesInKiB),
	"m":   bytesInKiB * bytesInKiB / float64(bytesInKiB*bytesInKiB*bytesInKiB),
	"mb":  bytesInKiB * bytesInKiB / float64(bytesInKiB*bytesInKiB*bytesInKiB),
	"mib": bytesInKiB * bytesInKiB / float64(bytesInKiB*bytesInKiB*bytesInKiB),
	"g":   1,
	"gb":  1,
	"gib": 1,
	"t":   bytesInKiB,
	"tb":  bytesInKiB,
	"tib": bytesInKiB,
}

// ParseMemoryGiB converts a Slurm memory string to GiB, rounded to 4 decimal
// places. Returns ok=false if the string does not match the numeric+unit
// grammar. The caller decides whether a missing value is fatal.
func ParseMemoryGiB(s string) (float64, bool) {
	m := memoryRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, false
	}

	amount, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}

	scale, ok := memoryScale[strings.ToLower(m[2])]
	if !ok {
		return 0, false
	}

	return math.Round(amount*scale*10000) / 10000, true
}
