package repository

import (
	"context"

	"maternity-dashboard/internal/domain/entity"

	"github.com/shopspring/decimal"
)

type PolicyRepository interface {
	Create(ctx context.Context, policy *entity.Policy) error
	FindByID(ctx context.Context, id string) (*entity.Policy, error)
	FindByUserID(ctx context.Context, userID string) (*entity.Policy, error)
	Update(ctx context.Context, id string, update entity.PolicyUpdate) (*entity.Policy, error)
	// AddUsedAmount atomically adds delta to the policy's used amount.
	// Returns (nil, nil) when the policy does not exist.
	AddUsedAmount(ctx context.Context, id string, delta decimal.Decimal) (*entity.Policy, error)
}
