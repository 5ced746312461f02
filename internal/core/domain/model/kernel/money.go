package kernel

// NonNegative clamps a computed charge at zero. Negative configured rates
// (discount overrides, credits) can push a sum below zero; a charge never does.
func NonNegative(amount float64) float64 {
	if amount < 0 {
		return 0
	}
	return amount
}
