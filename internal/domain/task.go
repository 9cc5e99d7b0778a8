package domain

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the workflow state of a task
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "to-do"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusReview     TaskStatus = "review"
	TaskStatusDone       TaskStatus = "done"
)

// TaskPriority represents the priority of a task
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// ValidTaskStatus reports whether s is one of the allowed status values
func ValidTaskStatus(s TaskStatus) bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusReview, TaskStatusDone:
		return true
	}
	return false
}

// ValidTaskPriority reports whether p is one of the allowed priority values
func ValidTaskPriority(p TaskPriority) bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

// Task represents a work item scoped to a board. Assignee and reviewer,
// when set, must be members or the owner of the task's board at assignment
// time.
type Task struct {
	BaseModel
	BoardID     uuid.UUID     `gorm:"type:uuid;not null;index:idx_tasks_board_id" json:"board_id"`
	Title       string        `gorm:"type:varchar(200);not null" json:"title"`
	Description string        `gorm:"type:text" json:"description"`
	Status      TaskStatus    `gorm:"type:varchar(20);not null;default:'to-do';index:idx_tasks_status" json:"status"`
	Priority    TaskPriority  `gorm:"type:varchar(10);not null;default:'medium';index:idx_tasks_priority" json:"priority"`
	AssigneeID  *uuid.UUID    `gorm:"type:uuid;index:idx_tasks_assignee_id" json:"assignee_id"`
	Assignee    *User         `gorm:"foreignKey:AssigneeID" json:"assignee,omitempty"`
	ReviewerID  *uuid.UUID    `gorm:"type:uuid;index:idx_tasks_reviewer_id" json:"reviewer_id"`
	Reviewer    *User         `gorm:"foreignKey:ReviewerID" json:"reviewer,omitempty"`
	DueDate     *time.Time    `gorm:"type:timestamp;index:idx_tasks_due_date" json:"due_date"`
	CreatedByID uuid.UUID     `gorm:"type:uuid;not null;index:idx_tasks_created_by_id" json:"created_by_id"`
	CreatedBy   User          `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
	Board       Board         `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE" json:"board,omitempty"`
	Comments    []TaskComment `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
}

// TableName specifies the table name for Task
func (Task) TableName() string {
	return "tasks"
}
