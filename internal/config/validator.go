package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Iron-Ham/compoundword/internal/logging"
	"github.com/Iron-Ham/compoundword/internal/resolver"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "resolver.workers")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Upper bounds that catch typos (an extra zero) rather than real limits.
const (
	maxWorkers      = 1024
	maxLineBytesCap = 1 << 30
	maxLogSizeMB    = 1000
)

// ValidReportFormats returns the list of valid report formats
func ValidReportFormats() []string {
	return []string{"text", "json"}
}

// ValidColorModes returns the list of valid report color settings
func ValidColorModes() []string {
	return []string{"auto", "always", "never"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateResolver()...)
	errors = append(errors, c.validateInput()...)
	errors = append(errors, c.validateReport()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

func oneOf(field string, value string, valid []string) []ValidationError {
	if slices.Contains(valid, value) {
		return nil
	}
	return []ValidationError{{
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf("must be one of: %s", strings.Join(valid, ", ")),
	}}
}

// validateResolver validates the ResolverConfig
func (c *Config) validateResolver() []ValidationError {
	var errors []ValidationError

	if c.Resolver.Workers < 0 {
		errors = append(errors, ValidationError{
			Field:   "resolver.workers",
			Value:   c.Resolver.Workers,
			Message: "must be non-negative (0 uses all CPUs)",
		})
	} else if c.Resolver.Workers > maxWorkers {
		errors = append(errors, ValidationError{
			Field:   "resolver.workers",
			Value:   c.Resolver.Workers,
			Message: fmt.Sprintf("exceeds maximum of %d", maxWorkers),
		})
	}

	if c.Resolver.CollectMode != "" {
		errors = append(errors, oneOf("resolver.collect_mode", c.Resolver.CollectMode, resolver.ValidCollectModes())...)
	}

	return errors
}

// validateInput validates the InputConfig
func (c *Config) validateInput() []ValidationError {
	var errors []ValidationError

	if c.Input.MaxLineBytes <= 0 {
		errors = append(errors, ValidationError{
			Field:   "input.max_line_bytes",
			Value:   c.Input.MaxLineBytes,
			Message: "must be positive",
		})
	} else if c.Input.MaxLineBytes > maxLineBytesCap {
		errors = append(errors, ValidationError{
			Field:   "input.max_line_bytes",
			Value:   c.Input.MaxLineBytes,
			Message: fmt.Sprintf("exceeds maximum of %d", maxLineBytesCap),
		})
	}

	return errors
}

// validateReport validates the ReportConfig
func (c *Config) validateReport() []ValidationError {
	var errors []ValidationError

	errors = append(errors, oneOf("report.format", c.Report.Format, ValidReportFormats())...)
	errors = append(errors, oneOf("report.color", c.Report.Color, ValidColorModes())...)

	if c.Report.MaxWidth < 0 {
		errors = append(errors, ValidationError{
			Field:   "report.max_width",
			Value:   c.Report.MaxWidth,
			Message: "must be non-negative (0 disables wrapping)",
		})
	}

	return errors
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	// levels match case-insensitively, as the logger parses them
	levels := logging.ValidLevels()
	if c.Logging.Level != "" && !slices.Contains(levels, strings.ToUpper(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.ToLower(strings.Join(levels, ", "))),
		})
	}

	if c.Logging.MaxSizeMB <= 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: "must be positive",
		})
	}
	if c.Logging.MaxSizeMB > maxLogSizeMB {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: fmt.Sprintf("exceeds maximum of %dMB", maxLogSizeMB),
		})
	}

	if c.Logging.MaxBackups < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_backups",
			Value:   c.Logging.MaxBackups,
			Message: "must be non-negative",
		})
	}

	if strings.ContainsRune(c.Logging.Dir, '\x00') {
		errors = append(errors, ValidationError{
			Field:   "logging.dir",
			Value:   c.Logging.Dir,
			Message: "path contains invalid null character",
		})
	}

	return errors
}
