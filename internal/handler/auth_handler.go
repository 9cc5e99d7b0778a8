package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"task-board-api/internal/dto"
	"task-board-api/internal/response"
	"task-board-api/internal/service"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
// @Summary      Register a new account
// @Description  Creates an account and returns its first API token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.RegistrationRequest true "Registration request"
// @Success      201 {object} dto.AuthResponse
// @Failure      400 {object} response.ErrorResponse "Invalid input or email already in use"
// @Failure      500 {object} response.ErrorResponse
// @Router       /registration/ [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, result)
}

// Login godoc
// @Summary      Log in
// @Description  Authenticates with email and password and returns the active token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Login request"
// @Success      200 {object} dto.AuthResponse
// @Failure      400 {object} response.ErrorResponse "Invalid request body"
// @Failure      401 {object} response.ErrorResponse "Wrong email or password"
// @Failure      500 {object} response.ErrorResponse
// @Router       /login/ [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// EmailCheck godoc
// @Summary      Look up a user by email
// @Description  Returns the minimal user representation, or an empty object when no account matches
// @Tags         auth
// @Produce      json
// @Param        email query string true "Email address"
// @Success      200 {object} dto.UserMinimalResponse
// @Failure      400 {object} response.ErrorResponse "Missing email parameter"
// @Failure      401 {object} response.ErrorResponse
// @Router       /email-check/ [get]
// @Security     TokenAuth
func (h *AuthHandler) EmailCheck(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Email parameter is required")
		return
	}

	result, err := h.authService.EmailCheck(c.Request.Context(), email)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	// no match is not an error; the body is just empty
	if result == nil {
		response.SendSuccess(c, http.StatusOK, gin.H{})
		return
	}
	response.SendSuccess(c, http.StatusOK, result)
}
