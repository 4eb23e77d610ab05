package handlers

import (
	"context"
	"net/http"

	"rider-dispatch/internal/domain"
	"rider-dispatch/internal/logx"
)

// AssignmentHandler serves assignment lifecycle endpoints.
type AssignmentHandler struct {
	usecase assignmentUsecase
	logger  logx.Logger
}

// NewAssignmentHandler creates a new AssignmentHandler.
func NewAssignmentHandler(logger logx.Logger, uc assignmentUsecase) *AssignmentHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &AssignmentHandler{usecase: uc, logger: logger}
}

// Get handles GET /assignments/{id}.
func (h *AssignmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	a, err := h.usecase.Get(r.Context(), id)
	h.reply(w, r, a, err)
}

// Accept handles POST /assignments/{id}/accept.
func (h *AssignmentHandler) Accept(w http.ResponseWriter, r *http.Request) {
	h.riderAction(w, r, func(ctx context.Context, id int64, req riderActionRequest) (*domain.Assignment, error) {
		return h.usecase.Accept(ctx, id, req.RiderID)
	})
}

// Reject handles POST /assignments/{id}/reject.
func (h *AssignmentHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.riderAction(w, r, func(ctx context.Context, id int64, req riderActionRequest) (*domain.Assignment, error) {
		return h.usecase.Reject(ctx, id, req.RiderID, req.Reason)
	})
}

// Pickup handles POST /assignments/{id}/pickup.
func (h *AssignmentHandler) Pickup(w http.ResponseWriter, r *http.Request) {
	h.riderAction(w, r, func(ctx context.Context, id int64, req riderActionRequest) (*domain.Assignment, error) {
		return h.usecase.Pickup(ctx, id, req.RiderID)
	})
}

// Deliver handles POST /assignments/{id}/deliver.
func (h *AssignmentHandler) Deliver(w http.ResponseWriter, r *http.Request) {
	h.riderAction(w, r, func(ctx context.Context, id int64, req riderActionRequest) (*domain.Assignment, error) {
		return h.usecase.Deliver(ctx, id, req.RiderID)
	})
}

// Cancel handles POST /assignments/{id}/cancel.
func (h *AssignmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req cancelRequest
	if r.ContentLength != 0 {
		if ok := decodeJSON(h.logger, w, r, &req); !ok {
			return
		}
	}
	a, err := h.usecase.Cancel(r.Context(), id, req.Reason)
	h.reply(w, r, a, err)
}

// Rate handles POST /assignments/{id}/rating.
func (h *AssignmentHandler) Rate(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req ratingRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	a, err := h.usecase.Rate(r.Context(), id, req.Rating)
	h.reply(w, r, a, err)
}

func (h *AssignmentHandler) riderAction(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, id int64, req riderActionRequest) (*domain.Assignment, error),
) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req riderActionRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	if req.RiderID <= 0 {
		writeError(h.logger, w, r, http.StatusBadRequest, "rider_id is required")
		return
	}
	a, err := fn(r.Context(), id, req)
	h.reply(w, r, a, err)
}

func (h *AssignmentHandler) reply(w http.ResponseWriter, r *http.Request, a *domain.Assignment, err error) {
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, assignmentToResponse(*a))
}
