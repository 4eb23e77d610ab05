package handlers

import (
	"context"
	"net/http"

	"rider-dispatch/internal/domain"
	"rider-dispatch/internal/logx"
	"rider-dispatch/internal/service/dispatch"
)

// DispatchHandler serves order dispatch endpoints.
type DispatchHandler struct {
	usecase dispatchUsecase
	logger  logx.Logger
}

// NewDispatchHandler creates a new DispatchHandler.
func NewDispatchHandler(logger logx.Logger, uc dispatchUsecase) *DispatchHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &DispatchHandler{usecase: uc, logger: logger}
}

// Dispatch handles POST /dispatch.
// It answers 201 with a new assignment, 200 with the active one or {"status":"unassigned"}.
func (h *DispatchHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	var req dispatchRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	res, err := h.usecase.Dispatch(r.Context(), req.OrderID)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}

	resp := dispatchResponse{Status: string(res.Outcome)}
	if res.Assignment != nil {
		dto := assignmentToResponse(*res.Assignment)
		resp.Assignment = &dto
	}
	status := http.StatusOK
	if res.Outcome == dispatch.OutcomeAssigned {
		status = http.StatusCreated
	}
	writeJSON(h.logger, w, r, status, resp)
}

// AssignManually handles POST /dispatch/manual.
func (h *DispatchHandler) AssignManually(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, h.usecase.AssignManually)
}

// Claim handles POST /dispatch/claim.
func (h *DispatchHandler) Claim(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, h.usecase.Claim)
}

func (h *DispatchHandler) create(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, orderID, riderID int64) (*domain.Assignment, error),
) {
	var req orderRiderRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	a, err := fn(r.Context(), req.OrderID, req.RiderID)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, assignmentToResponse(*a))
}
