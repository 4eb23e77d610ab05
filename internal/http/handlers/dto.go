package handlers

import (
	"time"

	"rider-dispatch/internal/domain"
)

type dispatchRequest struct {
	OrderID int64 `json:"order_id"`
}

type orderRiderRequest struct {
	OrderID int64 `json:"order_id"`
	RiderID int64 `json:"rider_id"`
}

type riderActionRequest struct {
	RiderID int64  `json:"rider_id"`
	Reason  string `json:"reason,omitempty"`
}

type cancelRequest struct {
	Reason string `json:"reason,omitempty"`
}

type ratingRequest struct {
	Rating int `json:"rating"`
}

type locationRequest struct {
	Lat        *float64   `json:"lat"`
	Lon        *float64   `json:"lon"`
	Accuracy   *float64   `json:"accuracy,omitempty"`
	Speed      *float64   `json:"speed,omitempty"`
	Heading    *float64   `json:"heading,omitempty"`
	RecordedAt *time.Time `json:"recorded_at,omitempty"`
}

type statusRequest struct {
	Status domain.RiderStatus `json:"status"`
}

type pointDTO struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type assignmentDTO struct {
	ID                       int64                   `json:"id"`
	OrderID                  int64                   `json:"order_id"`
	RiderID                  *int64                  `json:"rider_id"`
	Type                     domain.AssignmentType   `json:"assignment_type"`
	Status                   domain.AssignmentStatus `json:"assignment_status"`
	Attempt                  int                     `json:"attempt"`
	AssignedAt               time.Time               `json:"assigned_at"`
	AcceptedAt               *time.Time              `json:"accepted_at,omitempty"`
	PickupTime               *time.Time              `json:"pickup_time,omitempty"`
	DeliveredAt              *time.Time              `json:"delivered_at,omitempty"`
	RejectedAt               *time.Time              `json:"rejected_at,omitempty"`
	CancelledAt              *time.Time              `json:"cancelled_at,omitempty"`
	Reason                   string                  `json:"reason,omitempty"`
	Pickup                   *pointDTO               `json:"pickup,omitempty"`
	Current                  *pointDTO               `json:"current,omitempty"`
	EstimatedDistanceKm      float64                 `json:"estimated_distance_km"`
	EstimatedDurationMinutes int                     `json:"estimated_duration_minutes"`
	RiderEarnings            *float64                `json:"rider_earnings,omitempty"`
	RatingByCustomer         *int                    `json:"rating_by_customer,omitempty"`
}

type dispatchResponse struct {
	Status     string         `json:"status"`
	Assignment *assignmentDTO `json:"assignment,omitempty"`
}

type locationDTO struct {
	ID         int64     `json:"id"`
	RiderID    int64     `json:"rider_id"`
	Lat        float64   `json:"lat"`
	Lon        float64   `json:"lon"`
	Accuracy   *float64  `json:"accuracy,omitempty"`
	Speed      *float64  `json:"speed,omitempty"`
	Heading    *float64  `json:"heading,omitempty"`
	IsCurrent  bool      `json:"is_current"`
	RecordedAt time.Time `json:"recorded_at"`
}

type candidateDTO struct {
	RiderID           int64              `json:"rider_id"`
	Status            domain.RiderStatus `json:"status"`
	VehicleType       domain.VehicleType `json:"vehicle_type"`
	VehicleCapacityKg float64            `json:"vehicle_capacity_kg"`
	Rating            float64            `json:"rating"`
	Lat               float64            `json:"lat"`
	Lon               float64            `json:"lon"`
	DistanceKm        *float64           `json:"distance_km,omitempty"`
}

func toPointDTO(p *domain.Point) *pointDTO {
	if p == nil {
		return nil
	}
	return &pointDTO{Lat: p.Lat, Lon: p.Lon}
}

func assignmentToResponse(a domain.Assignment) assignmentDTO {
	return assignmentDTO{
		ID:                       a.ID,
		OrderID:                  a.OrderID,
		RiderID:                  a.RiderID,
		Type:                     a.Type,
		Status:                   a.Status,
		Attempt:                  a.Attempt,
		AssignedAt:               a.AssignedAt,
		AcceptedAt:               a.AcceptedAt,
		PickupTime:               a.PickupTime,
		DeliveredAt:              a.DeliveredAt,
		RejectedAt:               a.RejectedAt,
		CancelledAt:              a.CancelledAt,
		Reason:                   a.Reason,
		Pickup:                   toPointDTO(a.Pickup),
		Current:                  toPointDTO(a.Current),
		EstimatedDistanceKm:      a.EstimatedDistanceKm,
		EstimatedDurationMinutes: a.EstimatedDurationMinutes,
		RiderEarnings:            a.RiderEarnings,
		RatingByCustomer:         a.RatingByCustomer,
	}
}

func locationToResponse(l domain.Location) locationDTO {
	return locationDTO{
		ID:         l.ID,
		RiderID:    l.RiderID,
		Lat:        l.Position.Lat,
		Lon:        l.Position.Lon,
		Accuracy:   l.Accuracy,
		Speed:      l.Speed,
		Heading:    l.Heading,
		IsCurrent:  l.IsCurrent,
		RecordedAt: l.RecordedAt,
	}
}

func candidatesToResponse(cs []domain.Candidate, origin *domain.Point) []candidateDTO {
	out := make([]candidateDTO, 0, len(cs))
	for _, c := range cs {
		dto := candidateDTO{
			RiderID:           c.Rider.ID,
			Status:            c.Rider.Status,
			VehicleType:       c.Rider.VehicleType,
			VehicleCapacityKg: c.Rider.VehicleCapacityKg,
			Rating:            c.Rider.Rating,
			Lat:               c.Position.Lat,
			Lon:               c.Position.Lon,
		}
		if origin != nil {
			d := domain.HaversineKm(*origin, c.Position)
			dto.DistanceKm = &d
		}
		out = append(out, dto)
	}
	return out
}
