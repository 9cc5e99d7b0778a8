package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"task-board-api/internal/domain"
	"task-board-api/internal/dto"
	"task-board-api/internal/response"
)

const testSecret = "test-secret"

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	return string(hash)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name        string
		req         *dto.RegistrationRequest
		mockUser    func(m *MockUserRepository)
		wantErr     bool
		wantErrCode string
	}{
		{
			name: "success: new account gets a token",
			req: &dto.RegistrationRequest{
				FullName:         "Alice Example",
				Email:            "alice@example.com",
				Password:         "supersecret",
				RepeatedPassword: "supersecret",
			},
			mockUser: func(m *MockUserRepository) {
				m.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return nil, gorm.ErrRecordNotFound
				}
				m.CreateFunc = func(ctx context.Context, user *domain.User) error {
					user.ID = uuid.New()
					return nil
				}
			},
			wantErr: false,
		},
		{
			name: "failure: password mismatch",
			req: &dto.RegistrationRequest{
				FullName:         "Alice Example",
				Email:            "alice@example.com",
				Password:         "supersecret",
				RepeatedPassword: "different",
			},
			mockUser:    func(m *MockUserRepository) {},
			wantErr:     true,
			wantErrCode: response.ErrCodeValidation,
		},
		{
			name: "failure: email already in use",
			req: &dto.RegistrationRequest{
				FullName:         "Alice Example",
				Email:            "alice@example.com",
				Password:         "supersecret",
				RepeatedPassword: "supersecret",
			},
			mockUser: func(m *MockUserRepository) {
				m.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return &domain.User{Email: email}, nil
				}
			},
			wantErr:     true,
			wantErrCode: response.ErrCodeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUserRepo := &MockUserRepository{}
			tt.mockUser(mockUserRepo)

			var storedToken *string
			mockUserRepo.UpdateTokenFunc = func(ctx context.Context, userID uuid.UUID, token *string, expiresAt *time.Time) error {
				storedToken = token
				return nil
			}

			logger, _ := zap.NewDevelopment()
			service := NewAuthService(mockUserRepo, nil, testSecret, time.Hour, nil, logger)

			got, err := service.Register(context.Background(), tt.req)

			if tt.wantErr {
				if err == nil {
					t.Fatal("Register() error = nil, want error")
				}
				if appErr, ok := err.(*response.AppError); ok {
					if appErr.Code != tt.wantErrCode {
						t.Errorf("Register() error code = %v, want %v", appErr.Code, tt.wantErrCode)
					}
				}
				return
			}

			if err != nil {
				t.Fatalf("Register() unexpected error = %v", err)
			}
			if got.Token == "" {
				t.Error("Register() returned empty token")
			}
			if storedToken == nil || *storedToken != got.Token {
				t.Error("Register() did not persist the issued token")
			}
			if got.Email != tt.req.Email {
				t.Errorf("Register() Email = %v, want %v", got.Email, tt.req.Email)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	userID := uuid.New()
	password := "supersecret"

	tests := []struct {
		name        string
		req         *dto.LoginRequest
		mockUser    func(t *testing.T, m *MockUserRepository)
		wantErr     bool
		wantErrCode string
	}{
		{
			name: "success: fresh token when none stored",
			req:  &dto.LoginRequest{Email: "alice@example.com", Password: password},
			mockUser: func(t *testing.T, m *MockUserRepository) {
				m.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return &domain.User{
						BaseModel:    domain.BaseModel{ID: userID},
						FullName:     "Alice Example",
						Email:        email,
						PasswordHash: hashPassword(t, password),
					}, nil
				}
			},
			wantErr: false,
		},
		{
			name: "failure: wrong password",
			req:  &dto.LoginRequest{Email: "alice@example.com", Password: "wrong-password"},
			mockUser: func(t *testing.T, m *MockUserRepository) {
				m.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return &domain.User{
						BaseModel:    domain.BaseModel{ID: userID},
						Email:        email,
						PasswordHash: hashPassword(t, password),
					}, nil
				}
			},
			wantErr:     true,
			wantErrCode: response.ErrCodeUnauthorized,
		},
		{
			name: "failure: unknown email",
			req:  &dto.LoginRequest{Email: "nobody@example.com", Password: password},
			mockUser: func(t *testing.T, m *MockUserRepository) {
				m.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return nil, gorm.ErrRecordNotFound
				}
			},
			wantErr:     true,
			wantErrCode: response.ErrCodeUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUserRepo := &MockUserRepository{}
			tt.mockUser(t, mockUserRepo)

			logger, _ := zap.NewDevelopment()
			service := NewAuthService(mockUserRepo, nil, testSecret, time.Hour, nil, logger)

			got, err := service.Login(context.Background(), tt.req)

			if tt.wantErr {
				if err == nil {
					t.Fatal("Login() error = nil, want error")
				}
				if appErr, ok := err.(*response.AppError); ok {
					if appErr.Code != tt.wantErrCode {
						t.Errorf("Login() error code = %v, want %v", appErr.Code, tt.wantErrCode)
					}
				}
				return
			}

			if err != nil {
				t.Fatalf("Login() unexpected error = %v", err)
			}
			if got.Token == "" {
				t.Error("Login() returned empty token")
			}
			if got.UserID != userID {
				t.Errorf("Login() UserID = %v, want %v", got.UserID, userID)
			}
		})
	}
}

func TestAuthService_Login_ReusesValidToken(t *testing.T) {
	userID := uuid.New()
	password := "supersecret"
	existing := "existing-token"
	expiresAt := time.Now().Add(time.Hour)

	mockUserRepo := &MockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{
				BaseModel:      domain.BaseModel{ID: userID},
				Email:          email,
				PasswordHash:   hashPassword(t, password),
				Token:          &existing,
				TokenExpiresAt: &expiresAt,
			}, nil
		},
		UpdateTokenFunc: func(ctx context.Context, id uuid.UUID, token *string, at *time.Time) error {
			t.Error("Login() replaced a token that is still valid")
			return nil
		},
	}

	logger, _ := zap.NewDevelopment()
	service := NewAuthService(mockUserRepo, nil, testSecret, time.Hour, nil, logger)

	got, err := service.Login(context.Background(), &dto.LoginRequest{Email: "alice@example.com", Password: password})
	if err != nil {
		t.Fatalf("Login() unexpected error = %v", err)
	}
	if got.Token != existing {
		t.Errorf("Login() Token = %v, want stored token %v", got.Token, existing)
	}
}

func TestAuthService_EmailCheck(t *testing.T) {
	userID := uuid.New()

	t.Run("found", func(t *testing.T) {
		mockUserRepo := &MockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
				return &domain.User{
					BaseModel: domain.BaseModel{ID: userID},
					FullName:  "Alice Example",
					Email:     email,
				}, nil
			},
		}
		logger, _ := zap.NewDevelopment()
		service := NewAuthService(mockUserRepo, nil, testSecret, time.Hour, nil, logger)

		got, err := service.EmailCheck(context.Background(), "alice@example.com")
		if err != nil {
			t.Fatalf("EmailCheck() unexpected error = %v", err)
		}
		if got == nil || got.ID != userID {
			t.Errorf("EmailCheck() = %v, want user %v", got, userID)
		}
	})

	t.Run("missing email is not an error", func(t *testing.T) {
		mockUserRepo := &MockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		logger, _ := zap.NewDevelopment()
		service := NewAuthService(mockUserRepo, nil, testSecret, time.Hour, nil, logger)

		got, err := service.EmailCheck(context.Background(), "nobody@example.com")
		if err != nil {
			t.Fatalf("EmailCheck() unexpected error = %v", err)
		}
		if got != nil {
			t.Errorf("EmailCheck() = %v, want nil", got)
		}
	})
}

func TestAuthService_ValidateToken(t *testing.T) {
	userID := uuid.New()

	token, _, err := generateToken(userID, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	t.Run("current token resolves to its holder", func(t *testing.T) {
		mockUserRepo := &MockUserRepository{
			FindByTokenFunc: func(ctx context.Context, tok string) (*domain.User, error) {
				if tok != token {
					t.Errorf("FindByToken called with %v, want %v", tok, token)
				}
				return &domain.User{BaseModel: domain.BaseModel{ID: userID}}, nil
			},
		}
		logger, _ := zap.NewDevelopment()
		service := NewAuthService(mockUserRepo, nil, testSecret, time.Hour, nil, logger)

		got, err := service.ValidateToken(context.Background(), token)
		if err != nil {
			t.Fatalf("ValidateToken() unexpected error = %v", err)
		}
		if got != userID {
			t.Errorf("ValidateToken() = %v, want %v", got, userID)
		}
	})

	t.Run("revoked token is rejected despite a valid signature", func(t *testing.T) {
		mockUserRepo := &MockUserRepository{
			FindByTokenFunc: func(ctx context.Context, tok string) (*domain.User, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		logger, _ := zap.NewDevelopment()
		service := NewAuthService(mockUserRepo, nil, testSecret, time.Hour, nil, logger)

		if _, err := service.ValidateToken(context.Background(), token); err == nil {
			t.Fatal("ValidateToken() error = nil, want error")
		}
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		logger, _ := zap.NewDevelopment()
		service := NewAuthService(&MockUserRepository{}, nil, testSecret, time.Hour, nil, logger)

		if _, err := service.ValidateToken(context.Background(), "not-a-jwt"); err == nil {
			t.Fatal("ValidateToken() error = nil, want error")
		}
	})

	t.Run("token signed with a different secret is rejected", func(t *testing.T) {
		other, _, err := generateToken(userID, "other-secret", time.Hour)
		if err != nil {
			t.Fatalf("failed to generate token: %v", err)
		}
		logger, _ := zap.NewDevelopment()
		service := NewAuthService(&MockUserRepository{}, nil, testSecret, time.Hour, nil, logger)

		if _, err := service.ValidateToken(context.Background(), other); err == nil {
			t.Fatal("ValidateToken() error = nil, want error")
		}
	})
}
