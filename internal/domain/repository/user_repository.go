package repository

import (
	"context"

	"maternity-dashboard/internal/domain/entity"
)

// UserRepository stores users. Lookups return (nil, nil) when nothing matches.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}
