package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateCommentRequest represents the request to comment on a task
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// CommentResponse is the comment representation; author is the
// author's full name
type CommentResponse struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
}
