package port

import (
	"context"

	"github.com/google/uuid"

	"feedesk/internal/domain"
)

// UserRepository persists back-office users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
