package repository

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"task-board-api/internal/domain"
)

// setupTestDB opens an in-memory SQLite database with the full schema
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Board{},
		&domain.BoardMember{},
		&domain.Task{},
		&domain.TaskComment{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// createTestUser inserts a user with the given email
func createTestUser(t *testing.T, db *gorm.DB, fullname, email string) *domain.User {
	t.Helper()

	user := &domain.User{
		FullName:     fullname,
		Email:        email,
		PasswordHash: "x",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", email, err)
	}
	return user
}
