package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// FindByID finds a user by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByPhone finds a user by normalized phone number
	FindByPhone(ctx context.Context, phone string) (*User, error)

	// ExistsByPhone checks whether the phone is already registered
	ExistsByPhone(ctx context.Context, phone string) (bool, error)

	// Save creates or updates a user
	Save(ctx context.Context, user *User) error
}
