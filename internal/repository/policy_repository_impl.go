package repository

import (
	"context"
	"errors"
	"time"

	"maternity-dashboard/internal/domain/entity"
	domainRepo "maternity-dashboard/internal/domain/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type policyRepository struct {
	db *gorm.DB
}

func NewPolicyRepository(db *gorm.DB) domainRepo.PolicyRepository {
	return &policyRepository{db: db}
}

func (r *policyRepository) Create(ctx context.Context, policy *entity.Policy) error {
	preparePolicy(policy, time.Now())
	return translateError(r.db.WithContext(ctx).Create(policy).Error)
}

func (r *policyRepository) FindByID(ctx context.Context, id string) (*entity.Policy, error) {
	return r.first(r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *policyRepository) FindByUserID(ctx context.Context, userID string) (*entity.Policy, error) {
	return r.first(r.db.WithContext(ctx).Where("user_id = ?", userID).Order("start_date ASC"))
}

func (r *policyRepository) Update(ctx context.Context, id string, update entity.PolicyUpdate) (*entity.Policy, error) {
	var updated *entity.Policy
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		policy, err := r.first(tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id))
		if err != nil || policy == nil {
			return err
		}
		update.Apply(policy)
		if err := tx.Save(policy).Error; err != nil {
			return err
		}
		updated = policy
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// AddUsedAmount increments used_amount in a single UPDATE
func (r *policyRepository) AddUsedAmount(ctx context.Context, id string, delta decimal.Decimal) (*entity.Policy, error) {
	result := r.db.WithContext(ctx).Model(&entity.Policy{}).
		Where("id = ?", id).
		Update("used_amount", gorm.Expr("used_amount + ?", delta))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindByID(ctx, id)
}

func (r *policyRepository) first(query *gorm.DB) (*entity.Policy, error) {
	var policy entity.Policy
	err := query.First(&policy).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &policy, nil
}
