package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"task-board-api/internal/domain"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	CreateFunc             func(ctx context.Context, user *domain.User) error
	FindByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByIDsFunc          func(ctx context.Context, ids []uuid.UUID) ([]*domain.User, error)
	FindByEmailFunc        func(ctx context.Context, email string) (*domain.User, error)
	FindByTokenFunc        func(ctx context.Context, token string) (*domain.User, error)
	UpdateTokenFunc        func(ctx context.Context, userID uuid.UUID, token *string, expiresAt *time.Time) error
	ClearExpiredTokensFunc func(ctx context.Context, now time.Time) (int64, error)
	CountFunc              func(ctx context.Context) (int64, error)
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.User, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByToken(ctx context.Context, token string) (*domain.User, error) {
	if m.FindByTokenFunc != nil {
		return m.FindByTokenFunc(ctx, token)
	}
	return nil, nil
}

func (m *MockUserRepository) UpdateToken(ctx context.Context, userID uuid.UUID, token *string, expiresAt *time.Time) error {
	if m.UpdateTokenFunc != nil {
		return m.UpdateTokenFunc(ctx, userID, token, expiresAt)
	}
	return nil
}

func (m *MockUserRepository) ClearExpiredTokens(ctx context.Context, now time.Time) (int64, error) {
	if m.ClearExpiredTokensFunc != nil {
		return m.ClearExpiredTokensFunc(ctx, now)
	}
	return 0, nil
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockBoardRepository is a mock implementation of BoardRepository
type MockBoardRepository struct {
	CreateFunc            func(ctx context.Context, board *domain.Board) error
	FindByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	FindByIDWithTasksFunc func(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	FindByUserFunc        func(ctx context.Context, userID uuid.UUID) ([]*domain.Board, error)
	UpdateTitleFunc       func(ctx context.Context, id uuid.UUID, title string) error
	ReplaceMembersFunc    func(ctx context.Context, boardID uuid.UUID, userIDs []uuid.UUID) error
	DeleteFunc            func(ctx context.Context, id uuid.UUID) error
	CountFunc             func(ctx context.Context) (int64, error)
}

func (m *MockBoardRepository) Create(ctx context.Context, board *domain.Board) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, board)
	}
	return nil
}

func (m *MockBoardRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockBoardRepository) FindByIDWithTasks(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	if m.FindByIDWithTasksFunc != nil {
		return m.FindByIDWithTasksFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockBoardRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Board, error) {
	if m.FindByUserFunc != nil {
		return m.FindByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockBoardRepository) UpdateTitle(ctx context.Context, id uuid.UUID, title string) error {
	if m.UpdateTitleFunc != nil {
		return m.UpdateTitleFunc(ctx, id, title)
	}
	return nil
}

func (m *MockBoardRepository) ReplaceMembers(ctx context.Context, boardID uuid.UUID, userIDs []uuid.UUID) error {
	if m.ReplaceMembersFunc != nil {
		return m.ReplaceMembersFunc(ctx, boardID, userIDs)
	}
	return nil
}

func (m *MockBoardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockBoardRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockTaskRepository is a mock implementation of TaskRepository
type MockTaskRepository struct {
	CreateFunc         func(ctx context.Context, task *domain.Task) error
	FindByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	FindByAssigneeFunc func(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)
	FindByReviewerFunc func(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)
	UpdateFunc         func(ctx context.Context, task *domain.Task) error
	DeleteFunc         func(ctx context.Context, id uuid.UUID) error
	CountFunc          func(ctx context.Context) (int64, error)
}

func (m *MockTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, task)
	}
	return nil
}

func (m *MockTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTaskRepository) FindByAssignee(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error) {
	if m.FindByAssigneeFunc != nil {
		return m.FindByAssigneeFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockTaskRepository) FindByReviewer(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error) {
	if m.FindByReviewerFunc != nil {
		return m.FindByReviewerFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockTaskRepository) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, task)
	}
	return nil
}

func (m *MockTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockTaskRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	CreateFunc         func(ctx context.Context, comment *domain.TaskComment) error
	FindByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.TaskComment, error)
	FindByTaskFunc     func(ctx context.Context, taskID uuid.UUID) ([]*domain.TaskComment, error)
	CountByTaskIDsFunc func(ctx context.Context, taskIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	DeleteFunc         func(ctx context.Context, id uuid.UUID) error
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *domain.TaskComment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, comment)
	}
	return nil
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.TaskComment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCommentRepository) FindByTask(ctx context.Context, taskID uuid.UUID) ([]*domain.TaskComment, error) {
	if m.FindByTaskFunc != nil {
		return m.FindByTaskFunc(ctx, taskID)
	}
	return nil, nil
}

func (m *MockCommentRepository) CountByTaskIDs(ctx context.Context, taskIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	if m.CountByTaskIDsFunc != nil {
		return m.CountByTaskIDsFunc(ctx, taskIDs)
	}
	return map[uuid.UUID]int64{}, nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}
