package domain

type (
	// RiderStatus represents the availability status of a rider.
	RiderStatus string
	// VehicleType represents the vehicle a rider delivers with.
	VehicleType string
)

// Rider represents a delivery rider together with the vehicle profile used for matching.
type Rider struct {
	ID                    int64
	Status                RiderStatus
	VehicleType           VehicleType
	VehicleCapacityKg     float64
	MaxDeliveryDistanceKm float64
	CommissionRate        float64
	Rating                float64
	IsVerified            bool
	IsActive              bool
}

// Eligible reports whether the rider may receive a new assignment right now.
func (r Rider) Eligible() bool {
	return r.Status == RiderAvailable && r.IsVerified && r.IsActive
}

// Candidate is an eligible rider together with its current position.
type Candidate struct {
	Rider    Rider
	Position Point
}

// CandidateFilter narrows the set of riders returned by the availability registry.
// Zero values disable the corresponding filter.
type CandidateFilter struct {
	Origin        *Point
	MaxDistanceKm float64
	MinCapacityKg float64
	VehicleTypes  []VehicleType
	ExcludeRiders []int64
}

// Excludes reports whether riderID is filtered out by ExcludeRiders.
func (f CandidateFilter) Excludes(riderID int64) bool {
	for _, id := range f.ExcludeRiders {
		if id == riderID {
			return true
		}
	}
	return false
}
