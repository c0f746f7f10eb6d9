package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	appconfig "github.com/Iron-Ham/compoundword/internal/config"
)

// executeCommand runs the config command tree under a throwaway parent.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)
	appconfig.SetDefaults()

	parent := &cobra.Command{Use: "compoundword"}
	Register(parent)

	buf := new(bytes.Buffer)
	parent.SetOut(buf)
	parent.SetErr(buf)
	parent.SetArgs(args)
	err := parent.Execute()
	return buf.String(), err
}

func TestConfigShow(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	for _, args := range [][]string{{"config"}, {"config", "show"}} {
		out, err := executeCommand(t, args...)
		if err != nil {
			t.Fatalf("%v: error = %v", args, err)
		}
		if !strings.Contains(out, "# Config file: (none - using defaults)") {
			t.Errorf("%v: missing config file line:\n%s", args, out)
		}

		var cfg appconfig.Config
		if err := yaml.Unmarshal([]byte(out), &cfg); err != nil {
			t.Fatalf("%v: output is not YAML: %v", args, err)
		}
		if cfg != *appconfig.Default() {
			t.Errorf("%v: shown config = %+v, want defaults", args, cfg)
		}
	}
}

func TestConfigInit(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	configFile := filepath.Join(xdg, "compoundword", "config.yaml")

	out, err := executeCommand(t, "config", "init")
	if err != nil {
		t.Fatalf("config init error = %v", err)
	}
	if !strings.Contains(out, configFile) {
		t.Errorf("output %q does not name %s", out, configFile)
	}

	data, err := os.ReadFile(configFile)
	if err != nil {
		t.Fatalf("config file not created: %v", err)
	}
	var cfg appconfig.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("config file is not YAML: %v", err)
	}
	if cfg != *appconfig.Default() {
		t.Errorf("written config = %+v, want defaults", cfg)
	}

	if _, err := executeCommand(t, "config", "init"); err == nil {
		t.Error("second config init should fail when the file exists")
	}
}

func TestConfigPath(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	out, err := executeCommand(t, "config", "path")
	if err != nil {
		t.Fatalf("config path error = %v", err)
	}

	for _, want := range []string{
		filepath.Join(xdg, "compoundword", "config.yaml"),
		"Search paths:",
		"COMPOUNDWORD_RESOLVER_WORKERS",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigShow_RejectsArgs(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if _, err := executeCommand(t, "config", "show", "extra"); err == nil {
		t.Error("config show with an argument should fail")
	}
}
