package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"task-board-api/internal/domain"
	"task-board-api/internal/dto"
	"task-board-api/internal/metrics"
	"task-board-api/internal/repository"
	"task-board-api/internal/response"
)

// CommentService defines the interface for task comment business logic
type CommentService interface {
	ListComments(ctx context.Context, actorID, taskID uuid.UUID) ([]*dto.CommentResponse, error)
	CreateComment(ctx context.Context, actorID, taskID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	DeleteComment(ctx context.Context, actorID, taskID, commentID uuid.UUID) error
}

// commentServiceImpl is the implementation of CommentService
type commentServiceImpl struct {
	commentRepo repository.CommentRepository
	taskRepo    repository.TaskRepository
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewCommentService creates a new instance of CommentService
func NewCommentService(
	commentRepo repository.CommentRepository,
	taskRepo repository.TaskRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		taskRepo:    taskRepo,
		metrics:     m,
		logger:      logger,
	}
}

// ListComments returns the comments of a task in creation order
func (s *commentServiceImpl) ListComments(ctx context.Context, actorID, taskID uuid.UUID) ([]*dto.CommentResponse, error) {
	if _, err := s.loadMemberTask(ctx, actorID, taskID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.FindByTask(ctx, taskID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch comments", err.Error())
	}

	responses := make([]*dto.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		responses = append(responses, toCommentResponse(comment))
	}
	return responses, nil
}

// CreateComment adds a comment to a task on a board the actor belongs to
func (s *commentServiceImpl) CreateComment(ctx context.Context, actorID, taskID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if _, err := s.loadMemberTask(ctx, actorID, taskID); err != nil {
		return nil, err
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, response.NewValidationError("Content must not be empty")
	}

	comment := &domain.TaskComment{
		TaskID:   taskID,
		AuthorID: actorID,
		Content:  content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create comment", err.Error())
	}

	// reload so the author comes back populated
	comment, err := s.commentRepo.FindByID(ctx, comment.ID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch comment", err.Error())
	}

	s.metrics.IncrementCommentCreated()
	s.logger.Info("Comment created",
		zap.String("comment_id", comment.ID.String()),
		zap.String("task_id", taskID.String()),
	)

	return toCommentResponse(comment), nil
}

// DeleteComment removes a comment. The comment must belong to the given
// task and only its author may delete it. Authorship alone decides:
// the author keeps the right to remove their comment even after being
// removed from the board.
func (s *commentServiceImpl) DeleteComment(ctx context.Context, actorID, taskID, commentID uuid.UUID) error {
	if _, err := s.taskRepo.FindByID(ctx, taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Task not found")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch task", err.Error())
	}

	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Comment not found")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch comment", err.Error())
	}
	if comment.TaskID != taskID {
		return response.NewNotFoundError("Comment not found")
	}

	if !domain.IsCommentAuthor(actorID, comment) {
		return response.NewForbiddenError("Only the author can delete a comment")
	}

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete comment", err.Error())
	}

	s.logger.Info("Comment deleted",
		zap.String("comment_id", commentID.String()),
		zap.String("task_id", taskID.String()),
	)
	return nil
}

// loadMemberTask fetches a task and checks board membership
func (s *commentServiceImpl) loadMemberTask(ctx context.Context, actorID, taskID uuid.UUID) (*domain.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Task not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch task", err.Error())
	}

	if !domain.IsBoardMember(actorID, &task.Board) {
		return nil, response.NewForbiddenError("You must be a member of this board")
	}
	return task, nil
}

// toCommentResponse renders a comment; author is the full name
func toCommentResponse(comment *domain.TaskComment) *dto.CommentResponse {
	return &dto.CommentResponse{
		ID:        comment.ID,
		CreatedAt: comment.CreatedAt,
		Author:    comment.Author.FullName,
		Content:   comment.Content,
	}
}
