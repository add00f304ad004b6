package invoice

import "taller/internal/core/numerator"

const (
	// NumberPrefix is the document number prefix (FAC-2026-00001).
	NumberPrefix = "FAC"

	// NumeratorStrategy defines the numbering strategy for invoices.
	// Invoices are fiscal-facing documents, so numbers must be gapless.
	NumeratorStrategy = numerator.StrategyStrict
)
