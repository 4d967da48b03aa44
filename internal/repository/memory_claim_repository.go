package repository

import (
	"context"
	"time"

	"maternity-dashboard/internal/domain/entity"
	domainRepo "maternity-dashboard/internal/domain/repository"
)

type memoryClaimRepository struct {
	claims *memoryTable[entity.Claim]
	now    func() time.Time
}

func NewMemoryClaimRepository() domainRepo.ClaimRepository {
	return &memoryClaimRepository{
		claims: newMemoryTable(cloneClaim),
		now:    time.Now,
	}
}

func (r *memoryClaimRepository) Create(ctx context.Context, claim *entity.Claim) error {
	prepareClaim(claim, r.now())
	return r.claims.insert(claim.ID, *claim, nil)
}

func (r *memoryClaimRepository) FindByID(ctx context.Context, id string) (*entity.Claim, error) {
	claim, ok := r.claims.get(id)
	if !ok {
		return nil, nil
	}
	return &claim, nil
}

func (r *memoryClaimRepository) FindByUserID(ctx context.Context, userID string) ([]entity.Claim, error) {
	return r.claims.listNewestFirst(
		func(c entity.Claim) bool { return c.UserID == userID },
		func(c entity.Claim) time.Time { return c.CreatedAt },
	), nil
}

func (r *memoryClaimRepository) Update(ctx context.Context, id string, update entity.ClaimUpdate) (*entity.Claim, error) {
	now := r.now()
	claim, ok := r.claims.modify(id, func(c *entity.Claim) {
		update.Apply(c)
		c.UpdatedAt = now
	})
	if !ok {
		return nil, nil
	}
	return &claim, nil
}

func cloneClaim(c entity.Claim) entity.Claim {
	if c.Description != nil {
		desc := *c.Description
		c.Description = &desc
	}
	if c.SmartContractTx != nil {
		tx := *c.SmartContractTx
		c.SmartContractTx = &tx
	}
	if c.Documents != nil {
		c.Documents = append([]string{}, c.Documents...)
	}
	return c
}
