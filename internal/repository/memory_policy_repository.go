package repository

import (
	"context"
	"time"

	"maternity-dashboard/internal/domain/entity"
	domainRepo "maternity-dashboard/internal/domain/repository"

	"github.com/shopspring/decimal"
)

type memoryPolicyRepository struct {
	policies *memoryTable[entity.Policy]
	now      func() time.Time
}

func NewMemoryPolicyRepository() domainRepo.PolicyRepository {
	return &memoryPolicyRepository{
		policies: newMemoryTable(clonePolicy),
		now:      time.Now,
	}
}

func (r *memoryPolicyRepository) Create(ctx context.Context, policy *entity.Policy) error {
	preparePolicy(policy, r.now())
	return r.policies.insert(policy.ID, *policy, func(existing entity.Policy) bool {
		return existing.PolicyNumber == policy.PolicyNumber
	})
}

func (r *memoryPolicyRepository) FindByID(ctx context.Context, id string) (*entity.Policy, error) {
	policy, ok := r.policies.get(id)
	if !ok {
		return nil, nil
	}
	return &policy, nil
}

// FindByUserID returns the user's first policy
func (r *memoryPolicyRepository) FindByUserID(ctx context.Context, userID string) (*entity.Policy, error) {
	policy, ok := r.policies.find(func(p entity.Policy) bool { return p.UserID == userID })
	if !ok {
		return nil, nil
	}
	return &policy, nil
}

func (r *memoryPolicyRepository) Update(ctx context.Context, id string, update entity.PolicyUpdate) (*entity.Policy, error) {
	policy, ok := r.policies.modify(id, func(p *entity.Policy) {
		update.Apply(p)
	})
	if !ok {
		return nil, nil
	}
	return &policy, nil
}

func (r *memoryPolicyRepository) AddUsedAmount(ctx context.Context, id string, delta decimal.Decimal) (*entity.Policy, error) {
	policy, ok := r.policies.modify(id, func(p *entity.Policy) {
		p.UsedAmount = p.UsedAmount.Add(delta)
	})
	if !ok {
		return nil, nil
	}
	return &policy, nil
}

func clonePolicy(p entity.Policy) entity.Policy {
	if p.IsActive != nil {
		active := *p.IsActive
		p.IsActive = &active
	}
	if p.EndDate != nil {
		end := *p.EndDate
		p.EndDate = &end
	}
	return p
}
