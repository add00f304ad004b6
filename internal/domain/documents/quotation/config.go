package quotation

import "taller/internal/core/numerator"

const (
	// NumberPrefix is the document number prefix (COT-2026-00001).
	NumberPrefix = "COT"

	// NumeratorStrategy defines the numbering strategy for quotations.
	// Gaps are acceptable for proposals, so the cached strategy is fine.
	NumeratorStrategy = numerator.StrategyCached
)
