// Package pricing computes rider earnings.
package pricing

import (
	"math"

	"rider-dispatch/internal/domain"
)

// Linear pays a fixed base fee plus a per-kilometre component.
type Linear struct {
	BaseFee float64
	PerKm   float64
}

// NewLinear returns a Linear policy. Negative coefficients are clamped to zero.
func NewLinear(baseFee, perKm float64) Linear {
	return Linear{BaseFee: math.Max(0, baseFee), PerKm: math.Max(0, perKm)}
}

// ComputeRiderEarnings returns base + perKm*distance rounded to cents.
func (l Linear) ComputeRiderEarnings(distanceKm float64, _ domain.Order) float64 {
	if distanceKm < 0 || math.IsNaN(distanceKm) {
		distanceKm = 0
	}
	return math.Round((l.BaseFee+l.PerKm*distanceKm)*100) / 100
}
