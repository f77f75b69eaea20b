package domain

import (
	"strings"
	"time"
)

type TaskStatus string

const (
	TaskOpen       TaskStatus = "OPEN"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskDone       TaskStatus = "DONE"
	TaskCanceled   TaskStatus = "CANCELED"
)

var TaskStatuses = []TaskStatus{TaskOpen, TaskInProgress, TaskDone, TaskCanceled}

func ParseTaskStatus(s string) (TaskStatus, bool) {
	switch t := TaskStatus(strings.ToUpper(strings.TrimSpace(s))); t {
	case TaskOpen, TaskInProgress, TaskDone, TaskCanceled:
		return t, true
	}
	return "", false
}

type Task struct {
	ID          string
	Title       string
	Notes       string
	Status      TaskStatus
	Deadline    *time.Time
	CustomerID  string
	AssignedTo  string
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time // set while Status is DONE
}

// IsOpen is true for tasks somebody still has to work on.
func (t Task) IsOpen() bool { return t.Status == TaskOpen || t.Status == TaskInProgress }

// IsOverdue reports a passed deadline on a task that is still open.
func (t Task) IsOverdue(now time.Time) bool {
	return t.Deadline != nil && t.Deadline.Before(now) && t.IsOpen()
}
