package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"task-board-api/internal/domain"
)

// BoardRepository defines the interface for board data access
type BoardRepository interface {
	Create(ctx context.Context, board *domain.Board) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	FindByIDWithTasks(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Board, error)
	UpdateTitle(ctx context.Context, id uuid.UUID, title string) error
	ReplaceMembers(ctx context.Context, boardID uuid.UUID, userIDs []uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

// boardRepositoryImpl is the GORM implementation of BoardRepository
type boardRepositoryImpl struct {
	db *gorm.DB
}

// NewBoardRepository creates a new instance of BoardRepository
func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &boardRepositoryImpl{db: db}
}

// Create creates a new board together with its member rows
func (r *boardRepositoryImpl) Create(ctx context.Context, board *domain.Board) error {
	return r.db.WithContext(ctx).Create(board).Error
}

// FindByID finds a board with its owner and member set preloaded
func (r *boardRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	var board domain.Board
	if err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Members", func(db *gorm.DB) *gorm.DB {
			return db.Order("board_members.created_at ASC")
		}).
		Preload("Members.User").
		Where("id = ?", id).
		First(&board).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

// FindByIDWithTasks finds a board with members and tasks preloaded for
// the detail view
func (r *boardRepositoryImpl) FindByIDWithTasks(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	var board domain.Board
	if err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Members", func(db *gorm.DB) *gorm.DB {
			return db.Order("board_members.created_at ASC")
		}).
		Preload("Members.User").
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("tasks.created_at ASC")
		}).
		Preload("Tasks.Assignee").
		Preload("Tasks.Reviewer").
		Where("id = ?", id).
		First(&board).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

// FindByUser returns all boards where the user is owner or member,
// ordered by creation time then id for a deterministic listing
func (r *boardRepositoryImpl) FindByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Board, error) {
	var boards []*domain.Board
	if err := r.db.WithContext(ctx).
		Preload("Members").
		Preload("Tasks").
		Where("owner_id = ? OR id IN (?)",
			userID,
			r.db.Model(&domain.BoardMember{}).Select("board_id").Where("user_id = ?", userID),
		).
		Order("created_at ASC, id ASC").
		Find(&boards).Error; err != nil {
		return nil, err
	}
	return boards, nil
}

// UpdateTitle updates only the board title
func (r *boardRepositoryImpl) UpdateTitle(ctx context.Context, id uuid.UUID, title string) error {
	return r.db.WithContext(ctx).
		Model(&domain.Board{}).
		Where("id = ?", id).
		Update("title", title).Error
}

// ReplaceMembers replaces the board's member set inside one transaction
func (r *boardRepositoryImpl) ReplaceMembers(ctx context.Context, boardID uuid.UUID, userIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("board_id = ?", boardID).Delete(&domain.BoardMember{}).Error; err != nil {
			return err
		}
		for _, userID := range userIDs {
			member := &domain.BoardMember{BoardID: boardID, UserID: userID}
			if err := tx.Create(member).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes the board and everything scoped to it. The cascade is
// explicit rather than relying on database-level ON DELETE rules, so the
// same behavior holds on every backend the tests run against.
func (r *boardRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taskIDs := tx.Model(&domain.Task{}).Select("id").Where("board_id = ?", id)
		if err := tx.Where("task_id IN (?)", taskIDs).Delete(&domain.TaskComment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("board_id = ?", id).Delete(&domain.Task{}).Error; err != nil {
			return err
		}
		if err := tx.Where("board_id = ?", id).Delete(&domain.BoardMember{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&domain.Board{}).Error
	})
}

// Count returns the total number of boards
func (r *boardRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Board{}).Count(&count).Error
	return count, err
}
