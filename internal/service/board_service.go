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

// BoardService defines the interface for board business logic
type BoardService interface {
	ListBoards(ctx context.Context, actorID uuid.UUID) ([]*dto.BoardResponse, error)
	CreateBoard(ctx context.Context, actorID uuid.UUID, req *dto.CreateBoardRequest) (*dto.BoardResponse, error)
	GetBoard(ctx context.Context, actorID, boardID uuid.UUID) (*dto.BoardDetailResponse, error)
	UpdateBoard(ctx context.Context, actorID, boardID uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardUpdateResponse, error)
	DeleteBoard(ctx context.Context, actorID, boardID uuid.UUID) error
}

// boardServiceImpl is the implementation of BoardService
type boardServiceImpl struct {
	boardRepo   repository.BoardRepository
	userRepo    repository.UserRepository
	commentRepo repository.CommentRepository
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewBoardService creates a new instance of BoardService
func NewBoardService(
	boardRepo repository.BoardRepository,
	userRepo repository.UserRepository,
	commentRepo repository.CommentRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) BoardService {
	return &boardServiceImpl{
		boardRepo:   boardRepo,
		userRepo:    userRepo,
		commentRepo: commentRepo,
		metrics:     m,
		logger:      logger,
	}
}

// ListBoards returns every board the actor owns or is a member of
func (s *boardServiceImpl) ListBoards(ctx context.Context, actorID uuid.UUID) ([]*dto.BoardResponse, error) {
	boards, err := s.boardRepo.FindByUser(ctx, actorID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch boards", err.Error())
	}

	responses := make([]*dto.BoardResponse, 0, len(boards))
	for _, board := range boards {
		responses = append(responses, toBoardResponse(board))
	}
	return responses, nil
}

// CreateBoard creates a board owned by the actor. The actor is never
// stored as a member row; ownership is implicit membership.
func (s *boardServiceImpl) CreateBoard(ctx context.Context, actorID uuid.UUID, req *dto.CreateBoardRequest) (*dto.BoardResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, response.NewValidationError("Title must not be empty")
	}

	memberIDs, err := s.resolveMembers(ctx, actorID, req.Members)
	if err != nil {
		return nil, err
	}

	board := &domain.Board{
		Title:   title,
		OwnerID: actorID,
	}
	for _, id := range memberIDs {
		board.Members = append(board.Members, domain.BoardMember{UserID: id})
	}

	if err := s.boardRepo.Create(ctx, board); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create board", err.Error())
	}

	s.metrics.IncrementBoardCreated()
	s.logger.Info("Board created",
		zap.String("board_id", board.ID.String()),
		zap.String("owner_id", actorID.String()),
	)

	return toBoardResponse(board), nil
}

// GetBoard returns the full board detail with members and tasks.
// Only the owner and members may see it.
func (s *boardServiceImpl) GetBoard(ctx context.Context, actorID, boardID uuid.UUID) (*dto.BoardDetailResponse, error) {
	board, err := s.boardRepo.FindByIDWithTasks(ctx, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Board not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch board", err.Error())
	}

	if !domain.IsBoardMember(actorID, board) {
		return nil, response.NewForbiddenError("You must be a member of this board")
	}

	taskIDs := make([]uuid.UUID, 0, len(board.Tasks))
	for _, task := range board.Tasks {
		taskIDs = append(taskIDs, task.ID)
	}
	commentCounts, err := s.commentRepo.CountByTaskIDs(ctx, taskIDs)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count comments", err.Error())
	}

	tasks := make([]dto.TaskResponse, 0, len(board.Tasks))
	for i := range board.Tasks {
		tasks = append(tasks, *toTaskResponse(&board.Tasks[i], commentCounts[board.Tasks[i].ID]))
	}

	return &dto.BoardDetailResponse{
		ID:      board.ID,
		Title:   board.Title,
		OwnerID: board.OwnerID,
		Members: memberList(board),
		Tasks:   tasks,
	}, nil
}

// UpdateBoard applies a partial update. Any member may rename the
// board or replace its member set; the owner cannot be removed.
func (s *boardServiceImpl) UpdateBoard(ctx context.Context, actorID, boardID uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardUpdateResponse, error) {
	board, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Board not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch board", err.Error())
	}

	if !domain.IsBoardMember(actorID, board) {
		return nil, response.NewForbiddenError("You must be a member of this board")
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, response.NewValidationError("Title must not be empty")
		}
		if err := s.boardRepo.UpdateTitle(ctx, boardID, title); err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update board", err.Error())
		}
	}

	if req.Members != nil {
		memberIDs, err := s.resolveMembers(ctx, board.OwnerID, *req.Members)
		if err != nil {
			return nil, err
		}
		if err := s.boardRepo.ReplaceMembers(ctx, boardID, memberIDs); err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update members", err.Error())
		}
	}

	// reload so the response reflects the applied changes
	board, err = s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch board", err.Error())
	}

	return &dto.BoardUpdateResponse{
		ID:          board.ID,
		Title:       board.Title,
		OwnerData:   toUserMinimal(&board.Owner),
		MembersData: memberList(board),
	}, nil
}

// DeleteBoard removes a board with all of its tasks and comments.
// Only the owner may delete.
func (s *boardServiceImpl) DeleteBoard(ctx context.Context, actorID, boardID uuid.UUID) error {
	board, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Board not found")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch board", err.Error())
	}

	if !domain.IsBoardOwner(actorID, board) {
		return response.NewForbiddenError("Only the owner can delete a board")
	}

	if err := s.boardRepo.Delete(ctx, boardID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete board", err.Error())
	}

	s.logger.Info("Board deleted",
		zap.String("board_id", boardID.String()),
		zap.String("owner_id", actorID.String()),
	)
	return nil
}

// resolveMembers dedupes the requested member IDs, drops the owner and
// verifies every remaining user exists
func (s *boardServiceImpl) resolveMembers(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error) {
	seen := make(map[uuid.UUID]bool, len(ids))
	resolved := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == ownerID || seen[id] {
			continue
		}
		seen[id] = true
		resolved = append(resolved, id)
	}

	if len(resolved) == 0 {
		return resolved, nil
	}

	users, err := s.userRepo.FindByIDs(ctx, resolved)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch users", err.Error())
	}
	if len(users) != len(resolved) {
		return nil, response.NewNotFoundError("One or more users do not exist")
	}
	return resolved, nil
}

// toBoardResponse renders the list representation with task counters.
// The owner counts as a member without having a member row.
func toBoardResponse(board *domain.Board) *dto.BoardResponse {
	toDo := 0
	highPrio := 0
	for _, task := range board.Tasks {
		if task.Status == domain.TaskStatusTodo {
			toDo++
		}
		if task.Priority == domain.TaskPriorityHigh {
			highPrio++
		}
	}
	return &dto.BoardResponse{
		ID:                 board.ID,
		Title:              board.Title,
		OwnerID:            board.OwnerID,
		MemberCount:        len(board.Members) + 1,
		TicketCount:        len(board.Tasks),
		TasksToDoCount:     toDo,
		TasksHighPrioCount: highPrio,
	}
}

// memberList renders the owner followed by the explicit members
func memberList(board *domain.Board) []dto.UserMinimalResponse {
	members := make([]dto.UserMinimalResponse, 0, len(board.Members)+1)
	members = append(members, toUserMinimal(&board.Owner))
	for i := range board.Members {
		members = append(members, toUserMinimal(&board.Members[i].User))
	}
	return members
}

// toUserMinimal renders the compact user representation
func toUserMinimal(user *domain.User) dto.UserMinimalResponse {
	return dto.UserMinimalResponse{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
	}
}
