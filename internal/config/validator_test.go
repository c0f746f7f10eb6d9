package config

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		modify     func(*Config)
		wantFields []string
	}{
		{"defaults", func(c *Config) {}, nil},
		{"negative workers", func(c *Config) { c.Resolver.Workers = -1 }, []string{"resolver.workers"}},
		{"too many workers", func(c *Config) { c.Resolver.Workers = 100000 }, []string{"resolver.workers"}},
		{"unknown collect mode", func(c *Config) { c.Resolver.CollectMode = "some" }, []string{"resolver.collect_mode"}},
		{"empty collect mode", func(c *Config) { c.Resolver.CollectMode = "" }, nil},
		{"zero line limit", func(c *Config) { c.Input.MaxLineBytes = 0 }, []string{"input.max_line_bytes"}},
		{"huge line limit", func(c *Config) { c.Input.MaxLineBytes = 1 << 31 }, []string{"input.max_line_bytes"}},
		{"unknown format", func(c *Config) { c.Report.Format = "yaml" }, []string{"report.format"}},
		{"unknown color", func(c *Config) { c.Report.Color = "yes" }, []string{"report.color"}},
		{"negative width", func(c *Config) { c.Report.MaxWidth = -1 }, []string{"report.max_width"}},
		{"zero width", func(c *Config) { c.Report.MaxWidth = 0 }, nil},
		{"unknown level", func(c *Config) { c.Logging.Level = "trace" }, []string{"logging.level"}},
		{"upper-case level", func(c *Config) { c.Logging.Level = "DEBUG" }, nil},
		{"zero log size", func(c *Config) { c.Logging.MaxSizeMB = 0 }, []string{"logging.max_size_mb"}},
		{"huge log size", func(c *Config) { c.Logging.MaxSizeMB = 5000 }, []string{"logging.max_size_mb"}},
		{"negative backups", func(c *Config) { c.Logging.MaxBackups = -1 }, []string{"logging.max_backups"}},
		{"null in log dir", func(c *Config) { c.Logging.Dir = "logs\x00" }, []string{"logging.dir"}},
		{
			"several at once",
			func(c *Config) {
				c.Resolver.Workers = -1
				c.Report.Format = "csv"
				c.Logging.Level = "loud"
			},
			[]string{"resolver.workers", "report.format", "logging.level"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			errs := cfg.Validate()
			if len(errs) != len(tt.wantFields) {
				t.Fatalf("Validate() returned %d errors, want %d: %v", len(errs), len(tt.wantFields), errs)
			}
			for i, field := range tt.wantFields {
				if errs[i].Field != field {
					t.Errorf("errs[%d].Field = %q, want %q", i, errs[i].Field, field)
				}
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	err := ValidationError{Field: "resolver.workers", Value: -1, Message: "must be non-negative"}
	want := "resolver.workers: must be non-negative (got: -1)"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_Error(t *testing.T) {
	if got := ValidationErrors(nil).Error(); got != "" {
		t.Errorf("empty Error() = %q, want empty", got)
	}

	one := ValidationErrors{{Field: "a", Value: 1, Message: "bad"}}
	if got := one.Error(); got != "a: bad (got: 1)" {
		t.Errorf("single Error() = %q", got)
	}

	two := ValidationErrors{
		{Field: "a", Value: 1, Message: "bad"},
		{Field: "b", Value: "x", Message: "worse"},
	}
	got := two.Error()
	if !strings.HasPrefix(got, "2 validation errors:\n") {
		t.Errorf("multi Error() = %q, want count header", got)
	}
	if !strings.Contains(got, "  1. a: bad (got: 1)\n") || !strings.Contains(got, "  2. b: worse (got: x)\n") {
		t.Errorf("multi Error() = %q, want numbered entries", got)
	}
}

func TestValidLists(t *testing.T) {
	if got := strings.Join(ValidReportFormats(), ","); got != "text,json" {
		t.Errorf("ValidReportFormats() = %s", got)
	}
	if got := strings.Join(ValidColorModes(), ","); got != "auto,always,never" {
		t.Errorf("ValidColorModes() = %s", got)
	}
}
