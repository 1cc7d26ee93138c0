package resources

import "testing"

func TestParseArrayCount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
		ok    bool
	}{
		{"empty spec is one task", "", 1, true},
		{"whitespace only", "   ", 1, true},
		{"single index", "7", 1, true},
		{"comma separated indices", "1,3,5", 3, true},
		{"simple range", "0-9", 10, true},
		{"range with step", "1-10:2", 5, true},
		{"step larger than range", "1-3:10", 1, true},
		{"throttle ignored for count", "0-99%10", 100, true},
		{"throttle on single index", "5%2", 1, true},
		{"mixed items", "1,4-8,10-20:5%2", 9, true},
		{"reversed range counts one", "10-1", 1, true},
		{"zero step coerced to one", "1-10:0", 10, true},
		{"negative step coerced to one", "1-10:-2", 10, true},
		{"empty items skipped", "1,,2", 2, true},
		{"only empty items", ",,", 1, true},

		{"malformed range start", "abc-5", 0, false},
		{"malformed range end", "5-abc", 0, false},
		{"malformed step", "1-5:x", 0, false},
		{"malformed single index", "foo", 0, false},
		{"dangling range", "1-", 0, false},
		{"bare throttle", "%5", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseArrayCount(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseArrayCount(%q) ok = %v; want %v", tt.input, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParseArrayCount(%q) = %d; want %d", tt.input, got, tt.want)
			}
		})
	}
}
