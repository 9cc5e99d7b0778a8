package domain

import "github.com/google/uuid"

// TaskComment represents a comment on a task. Comments are append-only;
// only the author may delete one.
type TaskComment struct {
	BaseModel
	TaskID   uuid.UUID `gorm:"type:uuid;not null;index:idx_task_comments_task_id" json:"task_id"`
	AuthorID uuid.UUID `gorm:"type:uuid;not null;index:idx_task_comments_author_id" json:"author_id"`
	Author   User      `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Content  string    `gorm:"type:text;not null" json:"content"`
	Task     Task      `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"task,omitempty"`
}

// TableName specifies the table name for TaskComment
func (TaskComment) TableName() string {
	return "task_comments"
}
