package config

import (
	"time"

	"talent_crm/internal/retry"
)

// SheetsRetryConfig returns the retry settings for spreadsheet calls. The
// default is a single attempt with a per-call timeout; SHEETS_MAX_RETRIES
// opts in to retries.
func (c Config) SheetsRetryConfig() retry.Config {
	return retry.Config{
		MaxRetries: c.SheetsRetries,
		BaseDelay:  2 * time.Second,
		MaxDelay:   30 * time.Second,
		Timeout:    15 * time.Second,
	}
}
