package dashboard

import (
	"context"

	"github.com/avis-hq/avis-backend-go/internal/domain/auth"
)

// DashboardService produces the role-specific aggregate for /dashboard/stats.
// The concrete stats type depends on the caller's role.
type DashboardService interface {
	Stats(ctx context.Context, session auth.Session) (interface{}, error)
}
