package user

// Resource identifies the record type a visibility scope applies to.
type Resource string

const (
	ResourceUsers      Resource = "users"
	ResourceTasks      Resource = "tasks"
	ResourceAttendance Resource = "attendance"
	ResourceLeaves     Resource = "leaves"
)

type ScopeKind int

const (
	// ScopeAll applies no filter, every row is visible.
	ScopeAll ScopeKind = iota
	// ScopeManaged filters users to those whose manager_id is the caller.
	ScopeManaged
	// ScopeTeam filters owned rows to the caller plus their direct reports.
	ScopeTeam
	// ScopeTeamOnly filters owned rows to direct reports, excluding the
	// caller. The team leave view uses this: a manager's own requests are
	// visible only through the self view.
	ScopeTeamOnly
	// ScopeSelf filters owned rows to the caller.
	ScopeSelf
)

// Scope is the record-visibility predicate derived from the caller's role.
// Repositories translate it into a SQL filter.
type Scope struct {
	Kind     ScopeKind
	CallerID string
}

// VisibilityScope computes which rows of a resource the caller may read.
func VisibilityScope(role Role, callerID string, resource Resource) Scope {
	if role == RoleOwner {
		return Scope{Kind: ScopeAll}
	}

	switch resource {
	case ResourceUsers:
		if role == RoleManager {
			return Scope{Kind: ScopeManaged, CallerID: callerID}
		}
		return Scope{Kind: ScopeSelf, CallerID: callerID}
	case ResourceLeaves:
		if role == RoleManager {
			return Scope{Kind: ScopeTeamOnly, CallerID: callerID}
		}
		return Scope{Kind: ScopeSelf, CallerID: callerID}
	default:
		if role == RoleManager {
			return Scope{Kind: ScopeTeam, CallerID: callerID}
		}
		return Scope{Kind: ScopeSelf, CallerID: callerID}
	}
}
