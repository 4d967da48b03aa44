package repository

import (
	"context"

	"maternity-dashboard/internal/domain/entity"
)

type ClaimRepository interface {
	Create(ctx context.Context, claim *entity.Claim) error
	FindByID(ctx context.Context, id string) (*entity.Claim, error)
	// FindByUserID returns the user's claims, newest first
	FindByUserID(ctx context.Context, userID string) ([]entity.Claim, error)
	// Update merges update into the claim and refreshes UpdatedAt.
	// Returns (nil, nil) for an unknown id; it never inserts.
	Update(ctx context.Context, id string, update entity.ClaimUpdate) (*entity.Claim, error)
}
