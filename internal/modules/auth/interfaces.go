package auth

import (
	"context"

	"travelbooking/internal/domain"
)

// UserRepository is the subset of user storage the auth service needs.
// Create reports a duplicate email as domain.ErrConflict.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type jwtService interface {
	GenerateToken(userID int64, role string) (string, error)
}
