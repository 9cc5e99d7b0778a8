package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"task-board-api/internal/domain"
	"task-board-api/internal/dto"
	"task-board-api/internal/metrics"
	"task-board-api/internal/repository"
	"task-board-api/internal/response"
)

// tokenCacheTTL bounds how long a validated token is served from Redis
// before the database is consulted again
const tokenCacheTTL = 5 * time.Minute

const tokenCachePrefix = "auth:token:"

// AuthService defines the interface for registration, login and token
// validation
type AuthService interface {
	Register(ctx context.Context, req *dto.RegistrationRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	EmailCheck(ctx context.Context, email string) (*dto.UserMinimalResponse, error)
	ValidateToken(ctx context.Context, tokenStr string) (uuid.UUID, error)
}

// authServiceImpl is the implementation of AuthService
type authServiceImpl struct {
	userRepo    repository.UserRepository
	cache       *redis.Client
	tokenSecret string
	tokenTTL    time.Duration
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewAuthService creates a new instance of AuthService. cache may be
// nil, in which case every token validation hits the database.
func NewAuthService(
	userRepo repository.UserRepository,
	cache *redis.Client,
	tokenSecret string,
	tokenTTL time.Duration,
	m *metrics.Metrics,
	logger *zap.Logger,
) AuthService {
	return &authServiceImpl{
		userRepo:    userRepo,
		cache:       cache,
		tokenSecret: tokenSecret,
		tokenTTL:    tokenTTL,
		metrics:     m,
		logger:      logger,
	}
}

// Register creates a new account and issues its first token
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegistrationRequest) (*dto.AuthResponse, error) {
	if req.Password != req.RepeatedPassword {
		return nil, response.NewValidationError("Passwords do not match")
	}

	fullname := strings.TrimSpace(req.FullName)
	if fullname == "" {
		return nil, response.NewValidationError("Full name must not be empty")
	}
	email := strings.TrimSpace(req.Email)

	_, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, response.NewValidationError("Email is already in use")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check email", err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to hash password", err.Error())
	}

	user := &domain.User{
		FullName:     fullname,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create user", err.Error())
	}

	token, _, err := s.issueToken(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.metrics.IncrementUserRegistered()
	s.logger.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
	)

	return &dto.AuthResponse{
		Token:    token,
		FullName: user.FullName,
		Email:    user.Email,
		UserID:   user.ID,
	}, nil
}

// Login authenticates with email and password. The stored token is
// reused while it is still valid; otherwise a fresh one replaces it.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewUnauthorizedError("Invalid email or password")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch user", err.Error())
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, response.NewUnauthorizedError("Invalid email or password")
	}

	token := ""
	if user.Token != nil && user.TokenExpiresAt != nil && user.TokenExpiresAt.After(time.Now()) {
		token = *user.Token
	} else {
		if user.Token != nil {
			s.evictToken(ctx, *user.Token)
		}
		token, _, err = s.issueToken(ctx, user.ID)
		if err != nil {
			return nil, err
		}
	}

	return &dto.AuthResponse{
		Token:    token,
		FullName: user.FullName,
		Email:    user.Email,
		UserID:   user.ID,
	}, nil
}

// EmailCheck looks up a user by email. A miss is not an error: the
// caller receives an empty result.
func (s *authServiceImpl) EmailCheck(ctx context.Context, email string) (*dto.UserMinimalResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch user", err.Error())
	}

	return &dto.UserMinimalResponse{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
	}, nil
}

// ValidateToken checks the token signature and expiry, then confirms it
// is still the holder's current token so that re-login revokes old ones
func (s *authServiceImpl) ValidateToken(ctx context.Context, tokenStr string) (uuid.UUID, error) {
	claimedID, err := parseToken(tokenStr, s.tokenSecret)
	if err != nil {
		return uuid.Nil, response.NewUnauthorizedError("Invalid or expired token")
	}

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, tokenCachePrefix+tokenStr).Result(); err == nil {
			if cachedID, err := uuid.Parse(cached); err == nil && cachedID == claimedID {
				return cachedID, nil
			}
		}
	}

	user, err := s.userRepo.FindByToken(ctx, tokenStr)
	if err != nil {
		return uuid.Nil, response.NewUnauthorizedError("Token has been revoked")
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, tokenCachePrefix+tokenStr, user.ID.String(), tokenCacheTTL).Err(); err != nil {
			s.logger.Warn("Failed to cache token", zap.Error(err))
		}
	}

	return user.ID, nil
}

// issueToken generates and persists a fresh token for the user
func (s *authServiceImpl) issueToken(ctx context.Context, userID uuid.UUID) (string, time.Time, error) {
	token, expiresAt, err := generateToken(userID, s.tokenSecret, s.tokenTTL)
	if err != nil {
		return "", time.Time{}, response.NewAppError(response.ErrCodeInternal, "Failed to issue token", err.Error())
	}
	if err := s.userRepo.UpdateToken(ctx, userID, &token, &expiresAt); err != nil {
		return "", time.Time{}, response.NewAppError(response.ErrCodeInternal, "Failed to store token", err.Error())
	}
	return token, expiresAt, nil
}

// evictToken removes a replaced token from the cache
func (s *authServiceImpl) evictToken(ctx context.Context, token string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, tokenCachePrefix+token).Err(); err != nil {
		s.logger.Warn("Failed to evict cached token", zap.Error(err))
	}
}
