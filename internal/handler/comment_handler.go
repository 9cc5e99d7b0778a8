package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"task-board-api/internal/dto"
	"task-board-api/internal/response"
	"task-board-api/internal/service"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// ListComments godoc
// @Summary      List the comments of a task
// @Description  Returns the comments in creation order; board members only
// @Tags         comments
// @Produce      json
// @Param        taskId path string true "Task ID (UUID)"
// @Success      200 {array} dto.CommentResponse
// @Failure      403 {object} response.ErrorResponse "Not a member"
// @Failure      404 {object} response.ErrorResponse "Task not found"
// @Router       /tasks/{taskId}/comments/ [get]
// @Security     TokenAuth
func (h *CommentHandler) ListComments(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	taskID, ok := pathUUID(c, "taskId")
	if !ok {
		return
	}

	comments, err := h.commentService.ListComments(c.Request.Context(), userID, taskID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, comments)
}

// CreateComment godoc
// @Summary      Comment on a task
// @Description  Adds a comment authored by the caller; board members only
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        taskId path string true "Task ID (UUID)"
// @Param        request body dto.CreateCommentRequest true "Comment creation request"
// @Success      201 {object} dto.CommentResponse
// @Failure      400 {object} response.ErrorResponse "Blank content"
// @Failure      403 {object} response.ErrorResponse "Not a member"
// @Failure      404 {object} response.ErrorResponse "Task not found"
// @Router       /tasks/{taskId}/comments/ [post]
// @Security     TokenAuth
func (h *CommentHandler) CreateComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	taskID, ok := pathUUID(c, "taskId")
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), userID, taskID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, comment)
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Description  Deletes a comment; author only
// @Tags         comments
// @Param        taskId path string true "Task ID (UUID)"
// @Param        commentId path string true "Comment ID (UUID)"
// @Success      204 "No Content"
// @Failure      403 {object} response.ErrorResponse "Not the author"
// @Failure      404 {object} response.ErrorResponse "Task or comment not found"
// @Router       /tasks/{taskId}/comments/{commentId}/ [delete]
// @Security     TokenAuth
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	taskID, ok := pathUUID(c, "taskId")
	if !ok {
		return
	}
	commentID, ok := pathUUID(c, "commentId")
	if !ok {
		return
	}

	if err := h.commentService.DeleteComment(c.Request.Context(), userID, taskID, commentID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
