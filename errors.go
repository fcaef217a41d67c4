package pilabels

import (
	"errors"

	"github.com/cybergodev/pilabels/internal"
)

// Error definitions for the `cybergodev/pilabels` package.
var (
	// ErrInputTooLarge is returned when input exceeds MaxInputSize.
	ErrInputTooLarge = errors.New("pilabels: input size exceeds maximum")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("pilabels: invalid config")

	// ErrShortRow is returned under Config.StrictRows when a table row has
	// fewer cells than the label format reads.
	ErrShortRow = internal.ErrShortRow
)
