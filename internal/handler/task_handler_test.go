package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"task-board-api/internal/dto"
	"task-board-api/internal/response"
)

func TestTaskHandler_CreateTask(t *testing.T) {
	userID := uuid.New()
	boardID := uuid.New()
	taskID := uuid.New()

	tests := []struct {
		name           string
		requestBody    interface{}
		mockService    func(*MockTaskService)
		expectedStatus int
	}{
		{
			name: "success",
			requestBody: dto.CreateTaskRequest{
				Board:    boardID,
				Title:    "Fix login flow",
				Status:   "to-do",
				Priority: "high",
			},
			mockService: func(m *MockTaskService) {
				m.CreateTaskFunc = func(ctx context.Context, actorID uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
					return &dto.TaskResponse{
						ID:       taskID,
						Board:    req.Board,
						Title:    req.Title,
						Status:   req.Status,
						Priority: req.Priority,
					}, nil
				}
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "failure: invalid status rejected by binding",
			requestBody: dto.CreateTaskRequest{
				Board:    boardID,
				Title:    "Fix login flow",
				Status:   "blocked",
				Priority: "high",
			},
			mockService:    func(m *MockTaskService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "failure: non-member actor",
			requestBody: dto.CreateTaskRequest{
				Board:    boardID,
				Title:    "Fix login flow",
				Status:   "to-do",
				Priority: "high",
			},
			mockService: func(m *MockTaskService) {
				m.CreateTaskFunc = func(ctx context.Context, actorID uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
					return nil, response.NewForbiddenError("You must be a member of this board")
				}
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "failure: assignee outside board",
			requestBody: dto.CreateTaskRequest{
				Board:    boardID,
				Title:    "Fix login flow",
				Status:   "to-do",
				Priority: "high",
			},
			mockService: func(m *MockTaskService) {
				m.CreateTaskFunc = func(ctx context.Context, actorID uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
					return nil, response.NewValidationError("User is not a member of this board")
				}
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockTaskService{}
			tt.mockService(mockService)
			h := NewTaskHandler(mockService)

			r := setupTestRouter(userID)
			r.POST("/api/tasks/", h.CreateTask)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/api/tasks/", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestTaskHandler_AssignedToMe(t *testing.T) {
	userID := uuid.New()

	mockService := &MockTaskService{
		AssignedToMeFunc: func(ctx context.Context, actorID uuid.UUID) ([]*dto.TaskResponse, error) {
			assert.Equal(t, userID, actorID)
			return []*dto.TaskResponse{
				{ID: uuid.New(), Title: "First"},
				{ID: uuid.New(), Title: "Second"},
			}, nil
		},
	}
	h := NewTaskHandler(mockService)

	r := setupTestRouter(userID)
	r.GET("/api/tasks/assigned-to-me/", h.AssignedToMe)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/assigned-to-me/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.TaskResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestTaskHandler_UpdateTask(t *testing.T) {
	userID := uuid.New()
	taskID := uuid.New()

	t.Run("explicit null clears the assignee", func(t *testing.T) {
		var gotReq *dto.UpdateTaskRequest
		mockService := &MockTaskService{
			UpdateTaskFunc: func(ctx context.Context, actorID, id uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
				gotReq = req
				return &dto.TaskResponse{ID: id, Title: "Fix login flow"}, nil
			},
		}
		h := NewTaskHandler(mockService)

		r := setupTestRouter(userID)
		r.PATCH("/api/tasks/:taskId/", h.UpdateTask)

		req := httptest.NewRequest(http.MethodPatch, "/api/tasks/"+taskID.String()+"/",
			bytes.NewBufferString(`{"assignee_id": null}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, gotReq.AssigneeID.Set)
		assert.Nil(t, gotReq.AssigneeID.Value)
		assert.False(t, gotReq.ReviewerID.Set)
	})

	t.Run("malformed task id", func(t *testing.T) {
		h := NewTaskHandler(&MockTaskService{})
		r := setupTestRouter(userID)
		r.PATCH("/api/tasks/:taskId/", h.UpdateTask)

		req := httptest.NewRequest(http.MethodPatch, "/api/tasks/not-a-uuid/",
			bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown task", func(t *testing.T) {
		mockService := &MockTaskService{
			UpdateTaskFunc: func(ctx context.Context, actorID, id uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
				return nil, response.NewNotFoundError("Task not found")
			},
		}
		h := NewTaskHandler(mockService)
		r := setupTestRouter(userID)
		r.PATCH("/api/tasks/:taskId/", h.UpdateTask)

		req := httptest.NewRequest(http.MethodPatch, "/api/tasks/"+taskID.String()+"/",
			bytes.NewBufferString(`{"title":"Renamed"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTaskHandler_DeleteTask(t *testing.T) {
	userID := uuid.New()
	taskID := uuid.New()

	tests := []struct {
		name           string
		serviceErr     error
		expectedStatus int
	}{
		{
			name:           "creator gets 204",
			serviceErr:     nil,
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "plain member gets 403",
			serviceErr:     response.NewForbiddenError("Only the task creator or the board owner can delete a task"),
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockTaskService{
				DeleteTaskFunc: func(ctx context.Context, actorID, id uuid.UUID) error {
					return tt.serviceErr
				},
			}
			h := NewTaskHandler(mockService)

			r := setupTestRouter(userID)
			r.DELETE("/api/tasks/:taskId/", h.DeleteTask)

			req := httptest.NewRequest(http.MethodDelete, "/api/tasks/"+taskID.String()+"/", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
