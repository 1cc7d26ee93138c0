// Package sbatch extracts #SBATCH directives from Slurm batch scripts.
package sbatch

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// HeaderMap maps canonical option names to their raw string values.
// Keys are unique; when a directive appears more than once, the last
// occurrence wins.
type HeaderMap map[string]string

// directiveRe matches a single #SBATCH directive line. Either a long option
// (--name) or a short option (single letter), followed by =value or a
// space-separated value. The value must contain at least one non-space
// character; lines that do not match are not directives and are skipped.
var directiveRe = regexp.MustCompile(
	`^\s*#SBATCH\s+(?:--([A-Za-z0-9_-]+)|-([A-Za-z]))(?:=(.*\S.*)|\s+(.*\S.*))$`)

// aliases normalizes short and long option spellings to canonical names.
// Unknown long options pass through unchanged.
var aliases = map[string]string{
	"c": "cpus-per-task",
	"n": "ntasks",
	"N": "nodes",
	"t": "time",
	"J": "job-name",
	"o": "output",
	"e": "error",
	"A": "account",
	"p": "partition",
	"m": "mail-type",

	"cpus-per-task":   "cpus-per-task",
	"ntasks":          "ntasks",
	"ntasks-per-node": "ntasks-per-node",
	"tasks-per-node":  "ntasks-per-node",
	"nodes":           "nodes",
	"time":            "time",
	"time-min":        "time-min",
	"job-name":        "job-name",
	"output":          "output",
	"error":           "error",
	"account":         "account",
	"partition":       "partition",
	"nodelist":        "nodelist",
	"qos":             "qos",
	"mail-type":       "mail-type",
	"mail-user":       "mail-user",
	"mem":             "mem",
	"mem-per-cpu":     "mem-per-cpu",
	"array":           "array",
}

// Extract scans script text and returns the canonical option → raw value map.
// Lines that do not look like directives are ignored; a '#' inside a captured
// value is a hard error because directive values cannot embed a comment marker.
func Extract(script string) (HeaderMap, error) {
	header := make(HeaderMap)

	scanner := bufio.NewScanner(strings.NewReader(script))
	for scanner.Scan() {
		m := directiveRe.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}

		option := m[1]
		if option == "" {
			option = m[2]
		}
		if canonical, ok := aliases[option]; ok {
			option = canonical
		}

		value := m[3]
		if value == "" {
			value = m[4]
		}
		value = strings.TrimSpace(value)

		if strings.ContainsRune(value, '#') {
			return nil, NewDirectiveError(option, value, "illegal '#' in value")
		}

		header[option] = unquote(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading script: %w", err)
	}

	return header, nil
}

// ExtractFile reads a script file and extracts its directive header.
func ExtractFile(path string) (HeaderMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrScriptNotFound, path)
		}
		return nil, err
	}
	return Extract(string(data))
}

// unquote strips a single matching pair of surrounding quotes and re-trims
// the interior. Values without a matching quote pair are returned unchanged.
func unquote(value string) string {
	if len(value) >= 2 && value[0] == value[len(value)-1] &&
		(value[0] == '\'' || value[0] == '"') {
		return strings.TrimSpace(value[1 : len(value)-1])
	}
	return value
}
