package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the configuration for values the engine cannot work with.
// All problems are reported together.
func (c *Config) Validate() error {
	var problems []string

	if c.Limits.MaxTotalChars <= 0 {
		problems = append(problems, "limits.max_total_chars must be positive")
	}
	if c.Limits.MaxLineChars <= 0 {
		problems = append(problems, "limits.max_line_chars must be positive")
	}
	if c.Limits.MaxLineChars > c.Limits.MaxTotalChars {
		problems = append(problems, "limits.max_line_chars cannot exceed limits.max_total_chars")
	}
	if c.Limits.MinDurationSeconds <= 0 {
		problems = append(problems, "limits.min_duration_seconds must be positive")
	}
	if c.Limits.MaxDurationSeconds <= c.Limits.MinDurationSeconds {
		problems = append(problems, "limits.max_duration_seconds must exceed limits.min_duration_seconds")
	}

	switch c.Logging.Format {
	case "", "console", "json":
	default:
		problems = append(problems, fmt.Sprintf("logging.format: unsupported value %q", c.Logging.Format))
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("logging.level: unsupported value %q", c.Logging.Level))
	}

	if strings.TrimSpace(c.Paths.SessionDir) == "" {
		problems = append(problems, "paths.session_dir is required")
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		problems = append(problems, "paths.log_dir is required")
	}

	if len(problems) > 0 {
		return errors.New("invalid configuration: " + strings.Join(problems, "; "))
	}
	return nil
}
