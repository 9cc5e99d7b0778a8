package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"task-board-api/internal/domain"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	FindByAssignee(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)
	FindByReviewer(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

// taskRepositoryImpl is the GORM implementation of TaskRepository
type taskRepositoryImpl struct {
	db *gorm.DB
}

// NewTaskRepository creates a new instance of TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepositoryImpl{db: db}
}

// Create creates a new task
func (r *taskRepositoryImpl) Create(ctx context.Context, task *domain.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// FindByID finds a task with its board (including the member set),
// assignee and reviewer preloaded
func (r *taskRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	var task domain.Task
	if err := r.db.WithContext(ctx).
		Preload("Board").
		Preload("Board.Members").
		Preload("Assignee").
		Preload("Reviewer").
		Where("id = ?", id).
		First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// FindByAssignee returns all tasks assigned to the user across boards,
// ordered by due date then id
func (r *taskRepositoryImpl) FindByAssignee(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error) {
	var tasks []*domain.Task
	if err := r.db.WithContext(ctx).
		Preload("Assignee").
		Preload("Reviewer").
		Where("assignee_id = ?", userID).
		Order("due_date ASC, id ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindByReviewer returns all tasks the user is reviewing, ordered by
// due date then id
func (r *taskRepositoryImpl) FindByReviewer(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error) {
	var tasks []*domain.Task
	if err := r.db.WithContext(ctx).
		Preload("Assignee").
		Preload("Reviewer").
		Where("reviewer_id = ?", userID).
		Order("due_date ASC, id ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update saves the task's changed columns
func (r *taskRepositoryImpl) Update(ctx context.Context, task *domain.Task) error {
	return r.db.WithContext(ctx).
		Model(&domain.Task{}).
		Where("id = ?", task.ID).
		Select("title", "description", "status", "priority", "assignee_id", "reviewer_id", "due_date").
		Updates(map[string]interface{}{
			"title":       task.Title,
			"description": task.Description,
			"status":      task.Status,
			"priority":    task.Priority,
			"assignee_id": task.AssigneeID,
			"reviewer_id": task.ReviewerID,
			"due_date":    task.DueDate,
		}).Error
}

// Delete removes the task and its comments in one transaction
func (r *taskRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&domain.TaskComment{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&domain.Task{}).Error
	})
}

// Count returns the total number of tasks
func (r *taskRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Task{}).Count(&count).Error
	return count, err
}
