package repository

import (
	"context"

	"maternity-dashboard/internal/domain/entity"
)

type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.Transaction) error
	FindByID(ctx context.Context, id string) (*entity.Transaction, error)
	// FindByUserID returns the user's transactions, newest first
	FindByUserID(ctx context.Context, userID string) ([]entity.Transaction, error)
	FindByClaimID(ctx context.Context, claimID string) ([]entity.Transaction, error)
}
