package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/johnquangdev/ami-meeting-svc/internal/domain/entities"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *entities.User) error

	// FindByID retrieves a user by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error)

	// FindByUsername retrieves a user by its unique username
	FindByUsername(ctx context.Context, username string) (*entities.User, error)

	// FindByEmail retrieves a user by its unique email
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
}
