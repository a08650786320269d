package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/avis-hq/avis-backend-go/internal/domain/attendance"
	"github.com/avis-hq/avis-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// List implements AttendanceHandler. Optional month and year query params
// narrow the listing to one calendar month.
func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	s, ok := session(w, r)
	if !ok {
		return
	}

	var filter attendance.Filter
	if month := r.URL.Query().Get("month"); month != "" {
		filter.Month, _ = strconv.Atoi(month)
	}
	if year := r.URL.Query().Get("year"); year != "" {
		filter.Year, _ = strconv.Atoi(year)
	}

	records, err := h.attendanceService.List(r.Context(), s, filter)
	if err != nil {
		slog.Error("List attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Today implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	s, ok := session(w, r)
	if !ok {
		return
	}

	today, err := h.attendanceService.Today(r.Context(), s)
	if err != nil {
		slog.Error("Today attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, today)
}

// ClockIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	s, ok := session(w, r)
	if !ok {
		return
	}

	result, err := h.attendanceService.ClockIn(r.Context(), s)
	if err != nil {
		slog.Error("Clock in service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Clocked in", "user", s.UserID)
	response.SuccessWithMessage(w, "Clocked in at "+result.ClockIn, result)
}

// ClockOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	s, ok := session(w, r)
	if !ok {
		return
	}

	result, err := h.attendanceService.ClockOut(r.Context(), s)
	if err != nil {
		slog.Error("Clock out service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Clocked out", "user", s.UserID, "hours", result.HoursWorked)
	response.SuccessWithMessage(w, "Clocked out after "+result.HoursWorked+" hours", result)
}

// Stats implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	s, ok := session(w, r)
	if !ok {
		return
	}

	stats, err := h.attendanceService.Stats(r.Context(), s)
	if err != nil {
		slog.Error("Attendance stats service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}
