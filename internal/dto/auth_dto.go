package dto

import "github.com/google/uuid"

// RegistrationRequest represents the request to create a new account
type RegistrationRequest struct {
	FullName         string `json:"fullname" binding:"required,max=150"`
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required,min=8"`
	RepeatedPassword string `json:"repeated_password" binding:"required"`
}

// LoginRequest represents the request to authenticate
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by registration and login
type AuthResponse struct {
	Token    string    `json:"token"`
	FullName string    `json:"fullname"`
	Email    string    `json:"email"`
	UserID   uuid.UUID `json:"user_id"`
}

// UserMinimalResponse is the compact user representation embedded in
// board and task responses
type UserMinimalResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"fullname"`
}
