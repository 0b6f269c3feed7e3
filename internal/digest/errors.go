package digest

import (
	"errors"
)

var (
	// ErrNotConfigured is returned when a dispatch is attempted without a
	// complete email configuration. No network call is made in that case.
	ErrNotConfigured = errors.New("email configuration not set up")

	// ErrStore wraps store failures during the report query so callers can
	// tell them apart from transport failures.
	ErrStore = errors.New("failed to query weekly suggestions")
)
