package repository

import (
	"context"
	"errors"
	"time"

	"maternity-dashboard/internal/domain/entity"
	domainRepo "maternity-dashboard/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type claimRepository struct {
	db *gorm.DB
}

func NewClaimRepository(db *gorm.DB) domainRepo.ClaimRepository {
	return &claimRepository{db: db}
}

func (r *claimRepository) Create(ctx context.Context, claim *entity.Claim) error {
	prepareClaim(claim, time.Now())
	return translateError(r.db.WithContext(ctx).Create(claim).Error)
}

func (r *claimRepository) FindByID(ctx context.Context, id string) (*entity.Claim, error) {
	var claim entity.Claim
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&claim).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &claim, nil
}

func (r *claimRepository) FindByUserID(ctx context.Context, userID string) ([]entity.Claim, error) {
	var claims []entity.Claim
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&claims).Error
	if err != nil {
		return nil, err
	}
	return claims, nil
}

func (r *claimRepository) Update(ctx context.Context, id string, update entity.ClaimUpdate) (*entity.Claim, error) {
	var updated *entity.Claim
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var claim entity.Claim
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&claim).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		update.Apply(&claim)
		claim.UpdatedAt = time.Now()
		if err := tx.Save(&claim).Error; err != nil {
			return err
		}
		updated = &claim
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
