package task

import "errors"

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrNotTaskAssignee = errors.New("only the assignee or a manager can update this task's status")
	ErrTaskNotVisible  = errors.New("task is outside your visibility scope")
)
