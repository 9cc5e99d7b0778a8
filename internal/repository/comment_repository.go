package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"task-board-api/internal/domain"
)

// CommentRepository defines the interface for task comment data access
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.TaskComment) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.TaskComment, error)
	FindByTask(ctx context.Context, taskID uuid.UUID) ([]*domain.TaskComment, error)
	CountByTaskIDs(ctx context.Context, taskIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// commentRepositoryImpl is the GORM implementation of CommentRepository
type commentRepositoryImpl struct {
	db *gorm.DB
}

// NewCommentRepository creates a new instance of CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepositoryImpl{db: db}
}

// Create creates a new comment
func (r *commentRepositoryImpl) Create(ctx context.Context, comment *domain.TaskComment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// FindByID finds a comment with its author preloaded
func (r *commentRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.TaskComment, error) {
	var comment domain.TaskComment
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("id = ?", id).
		First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// FindByTask returns the task's comments ordered oldest first
func (r *commentRepositoryImpl) FindByTask(ctx context.Context, taskID uuid.UUID) ([]*domain.TaskComment, error) {
	var comments []*domain.TaskComment
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("task_id = ?", taskID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// CountByTaskIDs returns comment counts keyed by task id
func (r *commentRepositoryImpl) CountByTaskIDs(ctx context.Context, taskIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(taskIDs))
	if len(taskIDs) == 0 {
		return counts, nil
	}

	type row struct {
		TaskID uuid.UUID
		Total  int64
	}
	var rows []row
	if err := r.db.WithContext(ctx).
		Model(&domain.TaskComment{}).
		Select("task_id, count(*) as total").
		Where("task_id IN ?", taskIDs).
		Group("task_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, r := range rows {
		counts[r.TaskID] = r.Total
	}
	return counts, nil
}

// Delete removes a comment
func (r *commentRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.TaskComment{}).Error
}
