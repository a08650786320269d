package http

import (
	"log/slog"
	"net/http"

	"github.com/avis-hq/avis-backend-go/internal/domain/dashboard"
	"github.com/avis-hq/avis-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Stats(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// Stats implements DashboardHandler. The payload shape depends on the
// caller's role.
func (h *DashboardHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	s, ok := session(w, r)
	if !ok {
		return
	}

	stats, err := h.dashboardService.Stats(r.Context(), s)
	if err != nil {
		slog.Error("Dashboard stats service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}
