package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"rider-dispatch/internal/domain"
	"rider-dispatch/internal/logx"
)

const (
	defaultHistoryLimit = 1000
	maxHistoryLimit     = 10000
)

// RiderHandler serves rider location, status and candidate endpoints.
type RiderHandler struct {
	locations locationUsecase
	registry  registryUsecase
	logger    logx.Logger
}

// NewRiderHandler creates a new RiderHandler.
func NewRiderHandler(logger logx.Logger, locations locationUsecase, registry registryUsecase) *RiderHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &RiderHandler{locations: locations, registry: registry, logger: logger}
}

// RecordLocation handles POST /riders/{id}/location.
func (h *RiderHandler) RecordLocation(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req locationRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	if req.Lat == nil || req.Lon == nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "lat and lon are required")
		return
	}

	u := domain.LocationUpdate{
		RiderID:  id,
		Position: domain.Point{Lat: *req.Lat, Lon: *req.Lon},
		Accuracy: req.Accuracy,
		Speed:    req.Speed,
		Heading:  req.Heading,
	}
	if req.RecordedAt != nil {
		u.RecordedAt = req.RecordedAt.UTC()
	}

	loc, err := h.locations.RecordLocation(r.Context(), u)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, locationToResponse(*loc))
}

// CurrentLocation handles GET /riders/{id}/location.
func (h *RiderHandler) CurrentLocation(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	loc, err := h.locations.CurrentLocation(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, locationToResponse(*loc))
}

// History handles GET /riders/{id}/locations?since=RFC3339&limit=N.
func (h *RiderHandler) History(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	q := r.URL.Query()

	var since time.Time
	if s := q.Get("since"); s != "" {
		since, err = time.Parse(time.RFC3339, s)
		if err != nil {
			writeError(h.logger, w, r, http.StatusBadRequest, "invalid since")
			return
		}
	}
	limit := defaultHistoryLimit
	if s := q.Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v <= 0 || v > maxHistoryLimit {
			writeError(h.logger, w, r, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = v
	}

	out := make([]locationDTO, 0)
	for l, err := range h.locations.History(r.Context(), id, since.UTC()) {
		if err != nil {
			writeServiceError(h.logger, w, r, err)
			return
		}
		out = append(out, locationToResponse(l))
		if len(out) == limit {
			break
		}
	}
	writeJSON(h.logger, w, r, http.StatusOK, out)
}

// SetStatus handles PUT /riders/{id}/status.
func (h *RiderHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req statusRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	if err := h.registry.SetStatus(r.Context(), id, req.Status); err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{"rider_id": id, "status": req.Status})
}

// Candidates handles GET /riders/candidates?lat&lon&max_distance_km&min_capacity_kg&vehicle_type.
func (h *RiderHandler) Candidates(w http.ResponseWriter, r *http.Request) {
	var f domain.CandidateFilter

	lat, hasLat, errLat := optFloat(r, "lat")
	lon, hasLon, errLon := optFloat(r, "lon")
	if errLat != nil || errLon != nil || hasLat != hasLon {
		writeError(h.logger, w, r, http.StatusBadRequest, "lat and lon must be given together")
		return
	}
	if hasLat {
		f.Origin = &domain.Point{Lat: lat, Lon: lon}
	}

	maxKm, _, err := optFloat(r, "max_distance_km")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid max_distance_km")
		return
	}
	f.MaxDistanceKm = maxKm

	minKg, _, err := optFloat(r, "min_capacity_kg")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid min_capacity_kg")
		return
	}
	f.MinCapacityKg = minKg

	for _, v := range r.URL.Query()["vehicle_type"] {
		for _, t := range strings.Split(v, ",") {
			if t = strings.TrimSpace(t); t != "" {
				f.VehicleTypes = append(f.VehicleTypes, domain.VehicleType(t))
			}
		}
	}

	cs, err := h.registry.ListCandidates(r.Context(), f)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, candidatesToResponse(cs, f.Origin))
}
