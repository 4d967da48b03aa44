package repository

import (
	"errors"
	"time"

	"maternity-dashboard/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDuplicateKey is returned when an insert collides with an existing id or unique field
var ErrDuplicateKey = errors.New("duplicate key")

func newID() string {
	return uuid.NewString()
}

func prepareUser(user *entity.User, now time.Time) {
	if user.ID == "" {
		user.ID = newID()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
}

func preparePolicy(policy *entity.Policy, now time.Time) {
	if policy.ID == "" {
		policy.ID = newID()
	}
	if policy.IsActive == nil {
		active := true
		policy.IsActive = &active
	}
	if policy.StartDate.IsZero() {
		policy.StartDate = now
	}
}

func prepareClaim(claim *entity.Claim, now time.Time) {
	if claim.ID == "" {
		claim.ID = newID()
	}
	if claim.Status == "" {
		claim.Status = entity.ClaimStatusSubmitted
	}
	if claim.Documents == nil {
		claim.Documents = []string{}
	}
	if claim.CreatedAt.IsZero() {
		claim.CreatedAt = now
	}
	if claim.UpdatedAt.IsZero() {
		claim.UpdatedAt = claim.CreatedAt
	}
}

func prepareTransaction(tx *entity.Transaction, now time.Time) {
	if tx.ID == "" {
		tx.ID = newID()
	}
	if tx.Status == "" {
		tx.Status = entity.TransactionStatusPending
	}
	if tx.Metadata == nil {
		tx.Metadata = entity.JSON{}
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = now
	}
}
