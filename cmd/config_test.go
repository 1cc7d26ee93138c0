package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigShowPath(t *testing.T) {
	confDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", confDir)
	t.Cleanup(func() { showPath = false })

	out, err := execute(t, "config", "show", "--path")
	if err != nil {
		t.Fatalf("config show --path failed: %v", err)
	}

	want := filepath.Join(confDir, "jobcost", "config.yaml")
	if strings.TrimSpace(out) != want {
		t.Errorf("config path = %q; want %q", strings.TrimSpace(out), want)
	}
}

func TestConfigShow(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	out, err := execute(t, "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}

	for _, want := range []string{
		"cost.warn_threshold",
		"cost.market_price_nok",
		"Queue Memory Factors:",
		"normal",
		"bigmem",
		"hugemem",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestConfigInit(t *testing.T) {
	confDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", confDir)

	if _, err := execute(t, "config", "init"); err != nil {
		t.Fatalf("config init failed: %v", err)
	}

	configPath := filepath.Join(confDir, "jobcost", "config.yaml")
	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("config file not created: %v", err)
	}
	if !strings.Contains(string(data), "warn_threshold") {
		t.Errorf("config file missing defaults:\n%s", data)
	}

	// A second init without --force must leave the file untouched.
	if err := os.WriteFile(configPath, []byte("cost:\n  warn_threshold: 42\n"), 0644); err != nil {
		t.Fatalf("Failed to seed config file: %v", err)
	}
	if _, err := execute(t, "config", "init"); err != nil {
		t.Fatalf("config init re-run failed: %v", err)
	}
	data, err = os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("config file missing after re-run: %v", err)
	}
	if !strings.Contains(string(data), "warn_threshold: 42") {
		t.Errorf("config init overwrote an existing file without --force:\n%s", data)
	}
}
