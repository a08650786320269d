package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	// A request can be approved or rejected only while it is PENDING.
	ErrLeaveAlreadyProcessed = errors.New("leave request already processed")
	ErrInvalidDateRange      = errors.New("start date must not be after end date")
)
