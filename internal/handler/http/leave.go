package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/avis-hq/avis-backend-go/internal/domain/leave"
	"github.com/avis-hq/avis-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Apply(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Balance(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{
		leaveService: leaveService,
	}
}

// List implements LeaveHandler. An optional status query param filters by
// request state.
func (h *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	s, ok := session(w, r)
	if !ok {
		return
	}

	requests, err := h.leaveService.List(r.Context(), s, r.URL.Query().Get("status"))
	if err != nil {
		slog.Error("List leave requests service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// Apply implements LeaveHandler.
func (h *LeaveHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	s, ok := session(w, r)
	if !ok {
		return
	}

	var applyReq leave.CreateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&applyReq); err != nil {
		slog.Error("Apply leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := applyReq.Validate(); err != nil {
		slog.Error("Apply leave validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	created, err := h.leaveService.Apply(r.Context(), s, applyReq)
	if err != nil {
		slog.Error("Apply leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave requested", "user", s.UserID, "type", applyReq.Type)
	response.Created(w, "Leave request submitted", created)
}

// Approve implements LeaveHandler.
func (h *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	s, ok := session(w, r)
	if !ok {
		return
	}

	decided, err := h.leaveService.Approve(r.Context(), s, chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Approve leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave approved", "request", decided.ID, "reviewer", s.UserID)
	response.SuccessWithMessage(w, "Leave request approved", decided)
}

// Reject implements LeaveHandler.
func (h *LeaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	s, ok := session(w, r)
	if !ok {
		return
	}

	decided, err := h.leaveService.Reject(r.Context(), s, chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Reject leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave rejected", "request", decided.ID, "reviewer", s.UserID)
	response.SuccessWithMessage(w, "Leave request rejected", decided)
}

// Balance implements LeaveHandler.
func (h *LeaveHandlerImpl) Balance(w http.ResponseWriter, r *http.Request) {
	s, ok := session(w, r)
	if !ok {
		return
	}

	balance, err := h.leaveService.Balance(r.Context(), s)
	if err != nil {
		slog.Error("Leave balance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, balance)
}
