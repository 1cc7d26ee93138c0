package sbatch

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExtractDirectiveForms(t *testing.T) {
	tests := []struct {
		name        string
		scriptLines []string
		want        HeaderMap
	}{
		{
			name: "long option with equals",
			scriptLines: []string{
				"#!/bin/bash",
				"#SBATCH --time=01:00:00",
			},
			want: HeaderMap{"time": "01:00:00"},
		},
		{
			name: "long option with space",
			scriptLines: []string{
				"#SBATCH --mem 16G",
			},
			want: HeaderMap{"mem": "16G"},
		},
		{
			name: "short option with space",
			scriptLines: []string{
				"#SBATCH -c 4",
				"#SBATCH -t 90",
			},
			want: HeaderMap{"cpus-per-task": "4", "time": "90"},
		},
		{
			name: "short option with equals",
			scriptLines: []string{
				"#SBATCH -J=myjob",
			},
			want: HeaderMap{"job-name": "myjob"},
		},
		{
			name: "tasks-per-node aliases to ntasks-per-node",
			scriptLines: []string{
				"#SBATCH --tasks-per-node=4",
			},
			want: HeaderMap{"ntasks-per-node": "4"},
		},
		{
			name: "unknown long option passes through",
			scriptLines: []string{
				"#SBATCH --constraint=avx512",
			},
			want: HeaderMap{"constraint": "avx512"},
		},
		{
			name: "leading whitespace before marker",
			scriptLines: []string{
				"   #SBATCH --time=30",
			},
			want: HeaderMap{"time": "30"},
		},
		{
			name: "duplicate directive last wins",
			scriptLines: []string{
				"#SBATCH --time=10",
				"#SBATCH --time=20",
				"#SBATCH -t 30",
			},
			want: HeaderMap{"time": "30"},
		},
		{
			name: "quoted values stripped and re-trimmed",
			scriptLines: []string{
				`#SBATCH --job-name="my job"`,
				`#SBATCH --mail-user=' user@example.com '`,
			},
			want: HeaderMap{"job-name": "my job", "mail-user": "user@example.com"},
		},
		{
			name: "mismatched quotes kept verbatim",
			scriptLines: []string{
				`#SBATCH --job-name="myjob'`,
			},
			want: HeaderMap{"job-name": `"myjob'`},
		},
		{
			name: "non-directive lines ignored",
			scriptLines: []string{
				"#!/bin/bash",
				"# just a comment",
				"#SBATCHX --time=10",
				"#SBATCH --time=",
				"echo hello",
				"#SBATCH --time=15",
				"module load gcc",
			},
			want: HeaderMap{"time": "15"},
		},
		{
			name:        "empty script",
			scriptLines: []string{""},
			want:        HeaderMap{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(strings.Join(tt.scriptLines, "\n"))
			if err != nil {
				t.Fatalf("Extract() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Errorf("Extract() = %v; want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("Extract()[%q] = %q; want %q", k, got[k], v)
				}
			}
		})
	}
}

func TestExtractRejectsHashInValue(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{"hash in long value", "#SBATCH --job-name=run#1"},
		{"hash in short value", "#SBATCH -J run#1"},
		{"trailing comment", "#SBATCH --time=10 # one hour"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(tt.script)
			if err == nil {
				t.Fatal("Extract() expected error, got nil")
			}
			if !errors.Is(err, ErrInvalidHeaderSyntax) {
				t.Errorf("errors.Is(err, ErrInvalidHeaderSyntax) = false; err = %v", err)
			}
			if !IsDirectiveError(err) {
				t.Errorf("IsDirectiveError(err) = false; err = %v", err)
			}
		})
	}
}

func TestExtractIdempotent(t *testing.T) {
	script := strings.Join([]string{
		"#!/bin/bash",
		"#SBATCH --time=1-00:00:00",
		"#SBATCH --mem=32G",
		"#SBATCH --array=0-9",
	}, "\n")

	first, err := Extract(script)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	second, err := Extract(script)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("repeated extraction differs: %v vs %v", first, second)
	}
	for k, v := range first {
		if second[k] != v {
			t.Errorf("repeated extraction differs at %q: %q vs %q", k, v, second[k])
		}
	}
}

func TestExtractFile(t *testing.T) {
	tmpDir := t.TempDir()
	scriptPath := filepath.Join(tmpDir, "job.sh")
	content := "#!/bin/bash\n#SBATCH --time=02:00:00\n#SBATCH --mem=8G\n"
	if err := os.WriteFile(scriptPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test script: %v", err)
	}

	header, err := ExtractFile(scriptPath)
	if err != nil {
		t.Fatalf("ExtractFile() error = %v", err)
	}
	if header["time"] != "02:00:00" {
		t.Errorf("header[time] = %q; want %q", header["time"], "02:00:00")
	}
	if header["mem"] != "8G" {
		t.Errorf("header[mem] = %q; want %q", header["mem"], "8G")
	}
}

func TestExtractFileMissing(t *testing.T) {
	_, err := ExtractFile(filepath.Join(t.TempDir(), "nope.sh"))
	if !errors.Is(err, ErrScriptNotFound) {
		t.Errorf("errors.Is(err, ErrScriptNotFound) = false; err = %v", err)
	}
}
