package ticket

import "taller/internal/core/numerator"

const (
	// NumberPrefix is the document number prefix (TK-2026-00001).
	NumberPrefix = "TK"

	// NumeratorStrategy defines the numbering strategy for tickets.
	// Internal shop-floor documents tolerate gaps.
	NumeratorStrategy = numerator.StrategyCached
)
