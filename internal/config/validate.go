package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks semantic constraints the TOML decoder cannot express.
// Normalization must run first so defaults are in place.
func (c *Config) Validate() error {
	var problems []string

	if c.Analysis.Precision < 2 || c.Analysis.Precision > 6 {
		problems = append(problems, fmt.Sprintf("analysis.precision must be between 2 and 6, got %d", c.Analysis.Precision))
	}
	if c.API.TimeoutSeconds <= 0 {
		problems = append(problems, fmt.Sprintf("api.timeout_seconds must be positive, got %d", c.API.TimeoutSeconds))
	}
	if c.API.BaseURL == "" {
		problems = append(problems, "api.base_url must not be empty")
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		problems = append(problems, fmt.Sprintf("logging.format must be console or json, got %q", c.Logging.Format))
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level))
	}

	seen := make(map[string]struct{}, len(c.Lineups))
	for i, ref := range c.Lineups {
		if ref.ID == "" {
			problems = append(problems, fmt.Sprintf("lineups[%d].id must not be empty", i))
			continue
		}
		if _, dup := seen[ref.ID]; dup {
			problems = append(problems, fmt.Sprintf("lineups[%d].id %q is configured more than once", i, ref.ID))
		}
		seen[ref.ID] = struct{}{}
	}

	if c.Analysis.BaseLineup != "" {
		if _, ok := seen[c.Analysis.BaseLineup]; !ok {
			problems = append(problems, fmt.Sprintf("analysis.base_lineup %q does not match any configured lineup", c.Analysis.BaseLineup))
		}
	}

	if len(problems) > 0 {
		return errors.New("invalid configuration:\n  - " + strings.Join(problems, "\n  - "))
	}
	return nil
}
