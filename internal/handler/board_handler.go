package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"task-board-api/internal/dto"
	"task-board-api/internal/response"
	"task-board-api/internal/service"
)

type BoardHandler struct {
	boardService service.BoardService
}

func NewBoardHandler(boardService service.BoardService) *BoardHandler {
	return &BoardHandler{
		boardService: boardService,
	}
}

// ListBoards godoc
// @Summary      List boards
// @Description  Returns every board the caller owns or is a member of
// @Tags         boards
// @Produce      json
// @Success      200 {array} dto.BoardResponse
// @Failure      401 {object} response.ErrorResponse
// @Router       /boards/ [get]
// @Security     TokenAuth
func (h *BoardHandler) ListBoards(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	boards, err := h.boardService.ListBoards(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, boards)
}

// CreateBoard godoc
// @Summary      Create a board
// @Description  Creates a board owned by the caller with an optional initial member set
// @Tags         boards
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateBoardRequest true "Board creation request"
// @Success      201 {object} dto.BoardResponse
// @Failure      400 {object} response.ErrorResponse "Invalid input"
// @Failure      404 {object} response.ErrorResponse "Unknown member id"
// @Router       /boards/ [post]
// @Security     TokenAuth
func (h *BoardHandler) CreateBoard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	board, err := h.boardService.CreateBoard(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, board)
}

// GetBoard godoc
// @Summary      Get a board
// @Description  Returns the board with its member list and tasks; members only
// @Tags         boards
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Success      200 {object} dto.BoardDetailResponse
// @Failure      403 {object} response.ErrorResponse "Not a member"
// @Failure      404 {object} response.ErrorResponse "Board not found"
// @Router       /boards/{boardId}/ [get]
// @Security     TokenAuth
func (h *BoardHandler) GetBoard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	boardID, ok := pathUUID(c, "boardId")
	if !ok {
		return
	}

	board, err := h.boardService.GetBoard(c.Request.Context(), userID, boardID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, board)
}

// UpdateBoard godoc
// @Summary      Update a board
// @Description  Renames the board and/or replaces its member set; members only
// @Tags         boards
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        request body dto.UpdateBoardRequest true "Partial board update"
// @Success      200 {object} dto.BoardUpdateResponse
// @Failure      400 {object} response.ErrorResponse "Invalid input"
// @Failure      403 {object} response.ErrorResponse "Not a member"
// @Failure      404 {object} response.ErrorResponse "Board or member not found"
// @Router       /boards/{boardId}/ [patch]
// @Security     TokenAuth
func (h *BoardHandler) UpdateBoard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	boardID, ok := pathUUID(c, "boardId")
	if !ok {
		return
	}

	var req dto.UpdateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	board, err := h.boardService.UpdateBoard(c.Request.Context(), userID, boardID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, board)
}

// DeleteBoard godoc
// @Summary      Delete a board
// @Description  Deletes the board with all of its tasks and comments; owner only
// @Tags         boards
// @Param        boardId path string true "Board ID (UUID)"
// @Success      204 "No Content"
// @Failure      403 {object} response.ErrorResponse "Not the owner"
// @Failure      404 {object} response.ErrorResponse "Board not found"
// @Router       /boards/{boardId}/ [delete]
// @Security     TokenAuth
func (h *BoardHandler) DeleteBoard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	boardID, ok := pathUUID(c, "boardId")
	if !ok {
		return
	}

	if err := h.boardService.DeleteBoard(c.Request.Context(), userID, boardID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
