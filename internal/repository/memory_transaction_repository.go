package repository

import (
	"context"
	"time"

	"maternity-dashboard/internal/domain/entity"
	domainRepo "maternity-dashboard/internal/domain/repository"
)

type memoryTransactionRepository struct {
	transactions *memoryTable[entity.Transaction]
	now          func() time.Time
}

func NewMemoryTransactionRepository() domainRepo.TransactionRepository {
	return &memoryTransactionRepository{
		transactions: newMemoryTable(cloneTransaction),
		now:          time.Now,
	}
}

func (r *memoryTransactionRepository) Create(ctx context.Context, tx *entity.Transaction) error {
	prepareTransaction(tx, r.now())
	return r.transactions.insert(tx.ID, *tx, nil)
}

func (r *memoryTransactionRepository) FindByID(ctx context.Context, id string) (*entity.Transaction, error) {
	tx, ok := r.transactions.get(id)
	if !ok {
		return nil, nil
	}
	return &tx, nil
}

func (r *memoryTransactionRepository) FindByUserID(ctx context.Context, userID string) ([]entity.Transaction, error) {
	return r.transactions.listNewestFirst(
		func(t entity.Transaction) bool { return t.UserID == userID },
		func(t entity.Transaction) time.Time { return t.CreatedAt },
	), nil
}

func (r *memoryTransactionRepository) FindByClaimID(ctx context.Context, claimID string) ([]entity.Transaction, error) {
	return r.transactions.listNewestFirst(
		func(t entity.Transaction) bool { return t.ClaimID != nil && *t.ClaimID == claimID },
		func(t entity.Transaction) time.Time { return t.CreatedAt },
	), nil
}

func cloneTransaction(t entity.Transaction) entity.Transaction {
	if t.ClaimID != nil {
		id := *t.ClaimID
		t.ClaimID = &id
	}
	if t.Metadata != nil {
		t.Metadata = t.Metadata.Clone()
	}
	return t
}
