package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"task-board-api/internal/dto"
)

// setupTestRouter builds a bare test engine that injects the given user
// into the context the way the auth middleware would
func setupTestRouter(userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})
	return r
}

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	RegisterFunc      func(ctx context.Context, req *dto.RegistrationRequest) (*dto.AuthResponse, error)
	LoginFunc         func(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	EmailCheckFunc    func(ctx context.Context, email string) (*dto.UserMinimalResponse, error)
	ValidateTokenFunc func(ctx context.Context, tokenStr string) (uuid.UUID, error)
}

func (m *MockAuthService) Register(ctx context.Context, req *dto.RegistrationRequest) (*dto.AuthResponse, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) EmailCheck(ctx context.Context, email string) (*dto.UserMinimalResponse, error) {
	if m.EmailCheckFunc != nil {
		return m.EmailCheckFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockAuthService) ValidateToken(ctx context.Context, tokenStr string) (uuid.UUID, error) {
	if m.ValidateTokenFunc != nil {
		return m.ValidateTokenFunc(ctx, tokenStr)
	}
	return uuid.Nil, nil
}

// MockBoardService is a mock implementation of BoardService
type MockBoardService struct {
	ListBoardsFunc  func(ctx context.Context, actorID uuid.UUID) ([]*dto.BoardResponse, error)
	CreateBoardFunc func(ctx context.Context, actorID uuid.UUID, req *dto.CreateBoardRequest) (*dto.BoardResponse, error)
	GetBoardFunc    func(ctx context.Context, actorID, boardID uuid.UUID) (*dto.BoardDetailResponse, error)
	UpdateBoardFunc func(ctx context.Context, actorID, boardID uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardUpdateResponse, error)
	DeleteBoardFunc func(ctx context.Context, actorID, boardID uuid.UUID) error
}

func (m *MockBoardService) ListBoards(ctx context.Context, actorID uuid.UUID) ([]*dto.BoardResponse, error) {
	if m.ListBoardsFunc != nil {
		return m.ListBoardsFunc(ctx, actorID)
	}
	return nil, nil
}

func (m *MockBoardService) CreateBoard(ctx context.Context, actorID uuid.UUID, req *dto.CreateBoardRequest) (*dto.BoardResponse, error) {
	if m.CreateBoardFunc != nil {
		return m.CreateBoardFunc(ctx, actorID, req)
	}
	return nil, nil
}

func (m *MockBoardService) GetBoard(ctx context.Context, actorID, boardID uuid.UUID) (*dto.BoardDetailResponse, error) {
	if m.GetBoardFunc != nil {
		return m.GetBoardFunc(ctx, actorID, boardID)
	}
	return nil, nil
}

func (m *MockBoardService) UpdateBoard(ctx context.Context, actorID, boardID uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardUpdateResponse, error) {
	if m.UpdateBoardFunc != nil {
		return m.UpdateBoardFunc(ctx, actorID, boardID, req)
	}
	return nil, nil
}

func (m *MockBoardService) DeleteBoard(ctx context.Context, actorID, boardID uuid.UUID) error {
	if m.DeleteBoardFunc != nil {
		return m.DeleteBoardFunc(ctx, actorID, boardID)
	}
	return nil
}

// MockTaskService is a mock implementation of TaskService
type MockTaskService struct {
	CreateTaskFunc   func(ctx context.Context, actorID uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	AssignedToMeFunc func(ctx context.Context, actorID uuid.UUID) ([]*dto.TaskResponse, error)
	ReviewingFunc    func(ctx context.Context, actorID uuid.UUID) ([]*dto.TaskResponse, error)
	GetTaskFunc      func(ctx context.Context, actorID, taskID uuid.UUID) (*dto.TaskResponse, error)
	UpdateTaskFunc   func(ctx context.Context, actorID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error)
	DeleteTaskFunc   func(ctx context.Context, actorID, taskID uuid.UUID) error
}

func (m *MockTaskService) CreateTask(ctx context.Context, actorID uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if m.CreateTaskFunc != nil {
		return m.CreateTaskFunc(ctx, actorID, req)
	}
	return nil, nil
}

func (m *MockTaskService) AssignedToMe(ctx context.Context, actorID uuid.UUID) ([]*dto.TaskResponse, error) {
	if m.AssignedToMeFunc != nil {
		return m.AssignedToMeFunc(ctx, actorID)
	}
	return nil, nil
}

func (m *MockTaskService) Reviewing(ctx context.Context, actorID uuid.UUID) ([]*dto.TaskResponse, error) {
	if m.ReviewingFunc != nil {
		return m.ReviewingFunc(ctx, actorID)
	}
	return nil, nil
}

func (m *MockTaskService) GetTask(ctx context.Context, actorID, taskID uuid.UUID) (*dto.TaskResponse, error) {
	if m.GetTaskFunc != nil {
		return m.GetTaskFunc(ctx, actorID, taskID)
	}
	return nil, nil
}

func (m *MockTaskService) UpdateTask(ctx context.Context, actorID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	if m.UpdateTaskFunc != nil {
		return m.UpdateTaskFunc(ctx, actorID, taskID, req)
	}
	return nil, nil
}

func (m *MockTaskService) DeleteTask(ctx context.Context, actorID, taskID uuid.UUID) error {
	if m.DeleteTaskFunc != nil {
		return m.DeleteTaskFunc(ctx, actorID, taskID)
	}
	return nil
}

// MockCommentService is a mock implementation of CommentService
type MockCommentService struct {
	ListCommentsFunc  func(ctx context.Context, actorID, taskID uuid.UUID) ([]*dto.CommentResponse, error)
	CreateCommentFunc func(ctx context.Context, actorID, taskID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	DeleteCommentFunc func(ctx context.Context, actorID, taskID, commentID uuid.UUID) error
}

func (m *MockCommentService) ListComments(ctx context.Context, actorID, taskID uuid.UUID) ([]*dto.CommentResponse, error) {
	if m.ListCommentsFunc != nil {
		return m.ListCommentsFunc(ctx, actorID, taskID)
	}
	return nil, nil
}

func (m *MockCommentService) CreateComment(ctx context.Context, actorID, taskID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if m.CreateCommentFunc != nil {
		return m.CreateCommentFunc(ctx, actorID, taskID, req)
	}
	return nil, nil
}

func (m *MockCommentService) DeleteComment(ctx context.Context, actorID, taskID, commentID uuid.UUID) error {
	if m.DeleteCommentFunc != nil {
		return m.DeleteCommentFunc(ctx, actorID, taskID, commentID)
	}
	return nil
}
