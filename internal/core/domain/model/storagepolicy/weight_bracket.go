package storagepolicy

import "math"

// Weight thresholds of the tiered daily rate. A package must exceed a
// threshold to move up a tier, so exactly 1kg is small and exactly 5kg is medium.
const (
	MediumParcelAboveKg = 1.0
	LargeParcelAboveKg  = 5.0
)

// WeightBracket pairs a strict lower weight bound with the daily rate charged
// for packages heavier than that bound.
type WeightBracket struct {
	AboveKg   float64
	DailyRate float64
}

// WeightBrackets returns the tier table ordered heaviest first. The last
// bracket has no lower bound and carries the small rate, so every weight
// matches some bracket.
func (p *StoragePolicy) WeightBrackets() []WeightBracket {
	return []WeightBracket{
		{AboveKg: LargeParcelAboveKg, DailyRate: p.terms.DailyRateLarge},
		{AboveKg: MediumParcelAboveKg, DailyRate: p.terms.DailyRateMedium},
		{AboveKg: math.Inf(-1), DailyRate: p.terms.DailyRateSmall},
	}
}
