package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"task-board-api/internal/dto"
	"task-board-api/internal/response"
	"task-board-api/internal/service"
)

type TaskHandler struct {
	taskService service.TaskService
}

func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// CreateTask godoc
// @Summary      Create a task
// @Description  Creates a task on a board the caller belongs to
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateTaskRequest true "Task creation request"
// @Success      201 {object} dto.TaskResponse
// @Failure      400 {object} response.ErrorResponse "Invalid input or assignee outside the board"
// @Failure      403 {object} response.ErrorResponse "Not a member"
// @Failure      404 {object} response.ErrorResponse "Board not found"
// @Router       /tasks/ [post]
// @Security     TokenAuth
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, task)
}

// AssignedToMe godoc
// @Summary      Tasks assigned to me
// @Description  Lists every task where the caller is the assignee
// @Tags         tasks
// @Produce      json
// @Success      200 {array} dto.TaskResponse
// @Failure      401 {object} response.ErrorResponse
// @Router       /tasks/assigned-to-me/ [get]
// @Security     TokenAuth
func (h *TaskHandler) AssignedToMe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	tasks, err := h.taskService.AssignedToMe(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, tasks)
}

// Reviewing godoc
// @Summary      Tasks I am reviewing
// @Description  Lists every task where the caller is the reviewer
// @Tags         tasks
// @Produce      json
// @Success      200 {array} dto.TaskResponse
// @Failure      401 {object} response.ErrorResponse
// @Router       /tasks/reviewing/ [get]
// @Security     TokenAuth
func (h *TaskHandler) Reviewing(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	tasks, err := h.taskService.Reviewing(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, tasks)
}

// GetTask godoc
// @Summary      Get a task
// @Description  Returns a single task; board members only
// @Tags         tasks
// @Produce      json
// @Param        taskId path string true "Task ID (UUID)"
// @Success      200 {object} dto.TaskResponse
// @Failure      403 {object} response.ErrorResponse "Not a member"
// @Failure      404 {object} response.ErrorResponse "Task not found"
// @Router       /tasks/{taskId}/ [get]
// @Security     TokenAuth
func (h *TaskHandler) GetTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	taskID, ok := pathUUID(c, "taskId")
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), userID, taskID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, task)
}

// UpdateTask godoc
// @Summary      Update a task
// @Description  Applies a partial update; absent fields stay unchanged, an explicit null clears the assignee or reviewer
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        taskId path string true "Task ID (UUID)"
// @Param        request body dto.UpdateTaskRequest true "Partial task update"
// @Success      200 {object} dto.TaskResponse
// @Failure      400 {object} response.ErrorResponse "Invalid input or assignee outside the board"
// @Failure      403 {object} response.ErrorResponse "Not a member"
// @Failure      404 {object} response.ErrorResponse "Task not found"
// @Router       /tasks/{taskId}/ [patch]
// @Security     TokenAuth
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	taskID, ok := pathUUID(c, "taskId")
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), userID, taskID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, task)
}

// DeleteTask godoc
// @Summary      Delete a task
// @Description  Deletes the task with its comments; task creator or board owner only
// @Tags         tasks
// @Param        taskId path string true "Task ID (UUID)"
// @Success      204 "No Content"
// @Failure      403 {object} response.ErrorResponse "Not the creator or board owner"
// @Failure      404 {object} response.ErrorResponse "Task not found"
// @Router       /tasks/{taskId}/ [delete]
// @Security     TokenAuth
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	taskID, ok := pathUUID(c, "taskId")
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), userID, taskID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
