package domain

// ProgressTier classifies a completion percentage.
type ProgressTier string

const (
	TierComplete ProgressTier = "complete"
	TierPartial  ProgressTier = "partial"
	TierAtRisk   ProgressTier = "at_risk"
)

// TierFor maps a percentage to its tier: >=100 complete, >=50 partial,
// anything lower at risk.
func TierFor(percentage int) ProgressTier {
	switch {
	case percentage >= 100:
		return TierComplete
	case percentage >= 50:
		return TierPartial
	default:
		return TierAtRisk
	}
}

// PositiveNoteSlots is the fixed number of positive notes per day.
const PositiveNoteSlots = 5
