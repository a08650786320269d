package postgresql

import (
	"fmt"

	"github.com/avis-hq/avis-backend-go/internal/domain/user"
)

// scopeFilter renders a visibility scope as a SQL condition on the column
// holding the owning user's id. ScopeAll yields no condition. argIdx is the
// placeholder number to use for the caller id.
func scopeFilter(scope user.Scope, ownerColumn string, argIdx int) (string, []interface{}) {
	switch scope.Kind {
	case user.ScopeSelf:
		return fmt.Sprintf("%s = $%d", ownerColumn, argIdx), []interface{}{scope.CallerID}
	case user.ScopeTeam:
		return fmt.Sprintf("%s IN (SELECT id FROM users WHERE manager_id = $%d UNION SELECT $%d::uuid)",
			ownerColumn, argIdx, argIdx), []interface{}{scope.CallerID}
	case user.ScopeTeamOnly:
		return fmt.Sprintf("%s IN (SELECT id FROM users WHERE manager_id = $%d)",
			ownerColumn, argIdx), []interface{}{scope.CallerID}
	case user.ScopeManaged:
		return fmt.Sprintf("%s IN (SELECT id FROM users WHERE manager_id = $%d)",
			ownerColumn, argIdx), []interface{}{scope.CallerID}
	default:
		return "", nil
	}
}
