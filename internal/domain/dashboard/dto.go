package dashboard

import "time"

// TaskCounts is a by-status breakdown of a set of tasks.
type TaskCounts struct {
	Total       int
	Completed   int
	InProgress  int
	Pending     int
	UnderReview int
}

type EmployeeStats struct {
	TasksTotal      int        `json:"tasksTotal"`
	TasksCompleted  int        `json:"tasksCompleted"`
	TasksInProgress int        `json:"tasksInProgress"`
	TasksPending    int        `json:"tasksPending"`
	IsClockedIn     bool       `json:"isClockedIn"`
	ClockInTime     *time.Time `json:"clockInTime"`
	PendingLeaves   int        `json:"pendingLeaves"`
}

type ManagerStats struct {
	TeamSize         int `json:"teamSize"`
	TasksTotal       int `json:"tasksTotal"`
	TasksCompleted   int `json:"tasksCompleted"`
	TasksInProgress  int `json:"tasksInProgress"`
	TasksPending     int `json:"tasksPending"`
	TasksUnderReview int `json:"tasksUnderReview"`
	TeamPresent      int `json:"teamPresent"`
	TeamAbsent       int `json:"teamAbsent"`
	PendingApprovals int `json:"pendingApprovals"`
}

type TopPerformer struct {
	Name           string `json:"name"`
	TasksCompleted int    `json:"tasksCompleted"`
}

type OwnerStats struct {
	TotalEmployees   int            `json:"totalEmployees"`
	TotalManagers    int            `json:"totalManagers"`
	Departments      int            `json:"departments"`
	TasksTotal       int            `json:"tasksTotal"`
	TasksCompleted   int            `json:"tasksCompleted"`
	TasksPending     int            `json:"tasksPending"`
	TasksInProgress  int            `json:"tasksInProgress"`
	CompletionRate   int            `json:"completionRate"`
	PresentToday     int            `json:"presentToday"`
	TopPerformers    []TopPerformer `json:"topPerformers"`
	MonthlyCompleted int            `json:"monthlyCompleted"`
	MonthlyPending   int            `json:"monthlyPending"`
}
