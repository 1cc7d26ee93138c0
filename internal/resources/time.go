package resources

import (
	"regexp"
	"strconv"
	"strings"
)

// Walltime grammars, tried in order. First full match wins.
var (
	timeDaysRe    = regexp.MustCompile(`^(\d+)-(\d{1,2}):(\d{1,2}):(\d{1,2})$`)
	timeHMSRe     = regexp.MustCompile(`^(\d+):(\d{1,2}):(\d{1,2})$`)
	timeMSRe      = regexp.MustCompile(`^(\d+):(\d{1,2})$`)
	timeMinutesRe = regexp.MustCompile(`^\d+$`)
)

// ParseWalltime converts a Slurm time string to hours. Accepted forms are
// D-HH:MM:SS, HH:MM:SS, MM:SS and a bare integer (minutes). Component values
// are not range-capped: 99 minutes is legal and carried as a fraction of an
// hour. Returns ok=false if the string matches none of the grammars.
func ParseWalltime(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	if m := timeDaysRe.FindStringSubmatch(s); m != nil {
		days, hours, minutes, seconds := atoi(m[1]), atoi(m[2]), atoi(m[3]), atoi(m[4])
		return float64(days)*24 + float64(hours) + float64(minutes)/60 + float64(seconds)/3600, true
	}
	if m := timeHMSRe.FindStringSubmatch(s); m != nil {
		hours, minutes, seconds := atoi(m[1]), atoi(m[2]), atoi(m[3])
		return float64(hours) + float64(minutes)/60 + float64(seconds)/3600, true
	}
	if m := timeMSRe.FindStringSubmatch(s); m != nil {
		minutes, seconds := atoi(m[1]), atoi(m[2])
		return float64(minutes)/60 + float64(seconds)/3600, true
	}
	if timeMinutesRe.MatchString(s) {
		return float64(atoi(s)) / 60, true
	}

	return 0, false
}

// atoi converts digit-only strings already validated by a regexp.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
