package domain

import "github.com/google/uuid"

// Permission predicates for boards, tasks and comments. Every service
// operation composes these instead of re-deriving membership rules inline,
// so the rules cannot drift between endpoints.
//
// Board.Members must be preloaded before calling the membership predicates.

// IsBoardOwner reports whether userID owns the board.
func IsBoardOwner(userID uuid.UUID, board *Board) bool {
	return board != nil && board.OwnerID == userID
}

// IsBoardMember reports whether userID may read and update the board.
// The owner counts as a member.
func IsBoardMember(userID uuid.UUID, board *Board) bool {
	if board == nil {
		return false
	}
	if board.OwnerID == userID {
		return true
	}
	for _, m := range board.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

// IsTaskCreator reports whether userID created the task.
func IsTaskCreator(userID uuid.UUID, task *Task) bool {
	return task != nil && task.CreatedByID == userID
}

// IsCommentAuthor reports whether userID authored the comment.
func IsCommentAuthor(userID uuid.UUID, comment *TaskComment) bool {
	return comment != nil && comment.AuthorID == userID
}

// CanDeleteTask reports whether userID may delete the task: only its
// creator or the owner of the task's board.
func CanDeleteTask(userID uuid.UUID, task *Task, board *Board) bool {
	return IsTaskCreator(userID, task) || IsBoardOwner(userID, board)
}
