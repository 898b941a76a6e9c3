package domain

import "time"

// TaskStatus represents the lifecycle state of a housekeeping task.
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
	TaskCancelled  TaskStatus = "cancelled"
)

// TaskPriority orders housekeeping work.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// HousekeepingTask is a cleaning or maintenance job for a room, optionally
// assigned to a staff member.
type HousekeepingTask struct {
	ID               string       `json:"id" bson:"_id,omitempty"`
	RoomID           string       `json:"room_id" bson:"room_id"`
	AssignedToUserID string       `json:"assigned_to_user_id,omitempty" bson:"assigned_to_user_id,omitempty"`
	Status           TaskStatus   `json:"status" bson:"status"`
	Priority         TaskPriority `json:"priority" bson:"priority"`
	DueDate          time.Time    `json:"due_date" bson:"due_date"`
	Notes            string       `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt        time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt        *time.Time   `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}
