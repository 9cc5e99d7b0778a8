package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"task-board-api/internal/domain"
	"task-board-api/internal/dto"
	"task-board-api/internal/metrics"
	"task-board-api/internal/repository"
	"task-board-api/internal/response"
)

// TaskService defines the interface for task business logic
type TaskService interface {
	CreateTask(ctx context.Context, actorID uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	AssignedToMe(ctx context.Context, actorID uuid.UUID) ([]*dto.TaskResponse, error)
	Reviewing(ctx context.Context, actorID uuid.UUID) ([]*dto.TaskResponse, error)
	GetTask(ctx context.Context, actorID, taskID uuid.UUID) (*dto.TaskResponse, error)
	UpdateTask(ctx context.Context, actorID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error)
	DeleteTask(ctx context.Context, actorID, taskID uuid.UUID) error
}

// taskServiceImpl is the implementation of TaskService
type taskServiceImpl struct {
	taskRepo    repository.TaskRepository
	boardRepo   repository.BoardRepository
	commentRepo repository.CommentRepository
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewTaskService creates a new instance of TaskService
func NewTaskService(
	taskRepo repository.TaskRepository,
	boardRepo repository.BoardRepository,
	commentRepo repository.CommentRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) TaskService {
	return &taskServiceImpl{
		taskRepo:    taskRepo,
		boardRepo:   boardRepo,
		commentRepo: commentRepo,
		metrics:     m,
		logger:      logger,
	}
}

// CreateTask creates a task on a board the actor belongs to
func (s *taskServiceImpl) CreateTask(ctx context.Context, actorID uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	board, err := s.boardRepo.FindByID(ctx, req.Board)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Board not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch board", err.Error())
	}

	if !domain.IsBoardMember(actorID, board) {
		return nil, response.NewForbiddenError("You must be a member of this board")
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, response.NewValidationError("Title must not be empty")
	}

	if err := s.checkAssignable(board, req.AssigneeID); err != nil {
		return nil, err
	}
	if err := s.checkAssignable(board, req.ReviewerID); err != nil {
		return nil, err
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return nil, err
	}

	task := &domain.Task{
		BoardID:     board.ID,
		Title:       title,
		Description: req.Description,
		Status:      domain.TaskStatus(req.Status),
		Priority:    domain.TaskPriority(req.Priority),
		AssigneeID:  req.AssigneeID,
		ReviewerID:  req.ReviewerID,
		DueDate:     dueDate,
		CreatedByID: actorID,
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create task", err.Error())
	}

	// reload so assignee and reviewer come back populated
	task, err = s.taskRepo.FindByID(ctx, task.ID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch task", err.Error())
	}

	s.metrics.IncrementTaskCreated()
	s.logger.Info("Task created",
		zap.String("task_id", task.ID.String()),
		zap.String("board_id", board.ID.String()),
	)

	counts, err := s.commentRepo.CountByTaskIDs(ctx, []uuid.UUID{task.ID})
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count comments", err.Error())
	}
	return toTaskResponse(task, counts[task.ID]), nil
}

// AssignedToMe lists every task where the actor is the assignee
func (s *taskServiceImpl) AssignedToMe(ctx context.Context, actorID uuid.UUID) ([]*dto.TaskResponse, error) {
	tasks, err := s.taskRepo.FindByAssignee(ctx, actorID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch tasks", err.Error())
	}
	return s.renderTasks(ctx, tasks)
}

// Reviewing lists every task where the actor is the reviewer
func (s *taskServiceImpl) Reviewing(ctx context.Context, actorID uuid.UUID) ([]*dto.TaskResponse, error) {
	tasks, err := s.taskRepo.FindByReviewer(ctx, actorID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch tasks", err.Error())
	}
	return s.renderTasks(ctx, tasks)
}

// GetTask returns a single task; board membership is required
func (s *taskServiceImpl) GetTask(ctx context.Context, actorID, taskID uuid.UUID) (*dto.TaskResponse, error) {
	task, err := s.loadMemberTask(ctx, actorID, taskID)
	if err != nil {
		return nil, err
	}

	counts, err := s.commentRepo.CountByTaskIDs(ctx, []uuid.UUID{task.ID})
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count comments", err.Error())
	}
	return toTaskResponse(task, counts[task.ID]), nil
}

// UpdateTask applies a partial update. Absent fields stay untouched;
// an explicit null clears the assignee or reviewer.
func (s *taskServiceImpl) UpdateTask(ctx context.Context, actorID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	task, err := s.loadMemberTask(ctx, actorID, taskID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, response.NewValidationError("Title must not be empty")
		}
		task.Title = title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		task.Status = domain.TaskStatus(*req.Status)
	}
	if req.Priority != nil {
		task.Priority = domain.TaskPriority(*req.Priority)
	}
	if req.AssigneeID.Set {
		if err := s.checkAssignable(&task.Board, req.AssigneeID.Value); err != nil {
			return nil, err
		}
		task.AssigneeID = req.AssigneeID.Value
	}
	if req.ReviewerID.Set {
		if err := s.checkAssignable(&task.Board, req.ReviewerID.Value); err != nil {
			return nil, err
		}
		task.ReviewerID = req.ReviewerID.Value
	}
	if req.DueDate != nil {
		dueDate, err := parseDueDate(req.DueDate)
		if err != nil {
			return nil, err
		}
		task.DueDate = dueDate
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update task", err.Error())
	}

	// reload so renamed assignees and reviewers come back populated
	task, err = s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch task", err.Error())
	}

	counts, err := s.commentRepo.CountByTaskIDs(ctx, []uuid.UUID{task.ID})
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count comments", err.Error())
	}
	return toTaskResponse(task, counts[task.ID]), nil
}

// DeleteTask removes a task with its comments. Only the task creator
// or the board owner may delete.
func (s *taskServiceImpl) DeleteTask(ctx context.Context, actorID, taskID uuid.UUID) error {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Task not found")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch task", err.Error())
	}

	if !domain.CanDeleteTask(actorID, task, &task.Board) {
		return response.NewForbiddenError("Only the task creator or the board owner can delete a task")
	}

	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete task", err.Error())
	}

	s.logger.Info("Task deleted",
		zap.String("task_id", taskID.String()),
		zap.String("actor_id", actorID.String()),
	)
	return nil
}

// loadMemberTask fetches a task and checks board membership
func (s *taskServiceImpl) loadMemberTask(ctx context.Context, actorID, taskID uuid.UUID) (*domain.Task, error) {
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

// checkAssignable verifies an assignee or reviewer belongs to the board
func (s *taskServiceImpl) checkAssignable(board *domain.Board, userID *uuid.UUID) error {
	if userID == nil {
		return nil
	}
	if !domain.IsBoardMember(*userID, board) {
		return response.NewValidationError("User is not a member of this board")
	}
	return nil
}

// renderTasks attaches comment counts to a task list
func (s *taskServiceImpl) renderTasks(ctx context.Context, tasks []*domain.Task) ([]*dto.TaskResponse, error) {
	taskIDs := make([]uuid.UUID, 0, len(tasks))
	for _, task := range tasks {
		taskIDs = append(taskIDs, task.ID)
	}
	counts, err := s.commentRepo.CountByTaskIDs(ctx, taskIDs)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count comments", err.Error())
	}

	responses := make([]*dto.TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, toTaskResponse(task, counts[task.ID]))
	}
	return responses, nil
}

// parseDueDate converts the wire date into a time value
func parseDueDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dto.DueDateLayout, *raw)
	if err != nil {
		return nil, response.NewValidationError("Due date must use the YYYY-MM-DD format")
	}
	return &parsed, nil
}

// toTaskResponse renders the task representation shared by the task
// endpoints and board details
func toTaskResponse(task *domain.Task, commentsCount int64) *dto.TaskResponse {
	resp := &dto.TaskResponse{
		ID:            task.ID,
		Board:         task.BoardID,
		Title:         task.Title,
		Description:   task.Description,
		Status:        string(task.Status),
		Priority:      string(task.Priority),
		CommentsCount: commentsCount,
	}
	if task.Assignee != nil {
		assignee := toUserMinimal(task.Assignee)
		resp.Assignee = &assignee
	}
	if task.Reviewer != nil {
		reviewer := toUserMinimal(task.Reviewer)
		resp.Reviewer = &reviewer
	}
	if task.DueDate != nil {
		formatted := task.DueDate.Format(dto.DueDateLayout)
		resp.DueDate = &formatted
	}
	return resp
}
