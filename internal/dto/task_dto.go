package dto

import (
	"encoding/json"

	"github.com/google/uuid"
)

// DueDateLayout is the wire format for task due dates
const DueDateLayout = "2006-01-02"

// NullableUUID distinguishes an absent JSON field from an explicit null.
// Absent means "leave unchanged", null means "clear the reference".
type NullableUUID struct {
	Set   bool
	Value *uuid.UUID
}

// UnmarshalJSON implements json.Unmarshaler
func (n *NullableUUID) UnmarshalJSON(b []byte) error {
	n.Set = true
	if string(b) == "null" {
		n.Value = nil
		return nil
	}
	var id uuid.UUID
	if err := json.Unmarshal(b, &id); err != nil {
		return err
	}
	n.Value = &id
	return nil
}

// CreateTaskRequest represents the request to create a task on a board
type CreateTaskRequest struct {
	Board       uuid.UUID  `json:"board" binding:"required"`
	Title       string     `json:"title" binding:"required,max=200"`
	Description string     `json:"description"`
	Status      string     `json:"status" binding:"required,oneof=to-do in-progress review done"`
	Priority    string     `json:"priority" binding:"required,oneof=low medium high"`
	AssigneeID  *uuid.UUID `json:"assignee_id"`
	ReviewerID  *uuid.UUID `json:"reviewer_id"`
	DueDate     *string    `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateTaskRequest represents a partial task update; only provided
// fields change
type UpdateTaskRequest struct {
	Title       *string      `json:"title" binding:"omitempty,max=200"`
	Description *string      `json:"description"`
	Status      *string      `json:"status" binding:"omitempty,oneof=to-do in-progress review done"`
	Priority    *string      `json:"priority" binding:"omitempty,oneof=low medium high"`
	AssigneeID  NullableUUID `json:"assignee_id"`
	ReviewerID  NullableUUID `json:"reviewer_id"`
	DueDate     *string      `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
}

// TaskResponse is the task representation returned by every task
// endpoint and embedded in board details
type TaskResponse struct {
	ID            uuid.UUID            `json:"id"`
	Board         uuid.UUID            `json:"board"`
	Title         string               `json:"title"`
	Description   string               `json:"description"`
	Status        string               `json:"status"`
	Priority      string               `json:"priority"`
	Assignee      *UserMinimalResponse `json:"assignee"`
	Reviewer      *UserMinimalResponse `json:"reviewer"`
	DueDate       *string              `json:"due_date"`
	CommentsCount int64                `json:"comments_count"`
}
