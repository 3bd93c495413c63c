// Package limiter windows ordered records by offset, limit and tail.
package limiter

import (
	"fmt"
)

// Config holds the record-limiting parameters.
type Config struct {
	Limit  int // Show only this many records (0 = unlimited)
	Offset int // Skip the first N records (0 = no skip)
	Tail   int // Show only the last N records (0 = disabled); mutually exclusive with Limit
}

// Validate checks for conflicting flag combinations and returns an error if invalid.
// Rules:
// - Limit and Tail are mutually exclusive
// - If Tail is set, Offset is ignored
// - All numeric values must be non-negative
func (c Config) Validate() error {
	if c.Limit < 0 {
		return fmt.Errorf("--limit must be non-negative, got %d", c.Limit)
	}
	if c.Offset < 0 {
		return fmt.Errorf("--offset must be non-negative, got %d", c.Offset)
	}
	if c.Tail < 0 {
		return fmt.Errorf("--tail must be non-negative, got %d", c.Tail)
	}

	if c.Limit > 0 && c.Tail > 0 {
		return fmt.Errorf("--limit and --tail are mutually exclusive")
	}

	return nil
}

// IsActive returns true if any limiting is configured.
func (c Config) IsActive() bool {
	return c.Limit > 0 || c.Offset > 0 || c.Tail > 0
}

// Bounds returns the half-open window [start, end) selected from a sequence
// of the given length. Negative values are treated as zero, so the window is
// always within [0, length].
func (c Config) Bounds(length int) (start, end int) {
	if length <= 0 {
		return 0, 0
	}

	// --tail wins over --offset
	if c.Tail > 0 {
		start = length - c.Tail
		if start < 0 {
			start = 0
		}
		return start, length
	}

	start = c.Offset
	if start < 0 {
		start = 0
	}
	if start > length {
		start = length
	}

	if c.Limit > 0 && c.Limit < length-start {
		end = start + c.Limit
	} else {
		end = length
	}
	return start, end
}

// Apply returns the window of records selected by the configuration.
// The returned slice shares storage with records.
func Apply[T any](c Config, records []T) []T {
	if !c.IsActive() {
		return records
	}
	start, end := c.Bounds(len(records))
	return records[start:end]
}
