package service

import (
	"context"
	"io"
	"regexp"
	"testing"

	"maternity-dashboard/internal/domain/entity"
	"maternity-dashboard/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestLedgerService_NewTransactionHash(t *testing.T) {
	ledger := NewLedgerService(newTestLogger(), repository.NewMemoryTransactionRepository())
	pattern := regexp.MustCompile(`^0x[0-9a-f]{12}$`)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		hash := ledger.NewTransactionHash()
		assert.Regexp(t, pattern, hash)
		seen[hash] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestLedgerService_RecordClaimSubmission(t *testing.T) {
	ctx := context.Background()
	txRepo := repository.NewMemoryTransactionRepository()
	ledger := NewLedgerService(newTestLogger(), txRepo)

	hash := "0x0123456789ab"
	claim := &entity.Claim{
		ID:              "claim-1",
		UserID:          "user-1",
		Amount:          decimal.RequireFromString("125"),
		SmartContractTx: &hash,
	}

	tx, err := ledger.RecordClaimSubmission(ctx, claim)
	require.NoError(t, err)
	require.NotNil(t, tx)

	assert.Equal(t, "user-1", tx.UserID)
	require.NotNil(t, tx.ClaimID)
	assert.Equal(t, "claim-1", *tx.ClaimID)
	assert.Equal(t, hash, tx.TransactionHash)
	assert.Equal(t, entity.ContractTypeCoverage, tx.ContractType)
	assert.Equal(t, entity.TransactionStatusPending, tx.Status)
	assert.Equal(t, entity.JSON{"action": "claim_submission", "amount": "125.00"}, tx.Metadata)

	stored, err := txRepo.FindByClaimID(ctx, "claim-1")
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestLedgerService_RecordClaimSubmissionRequiresHash(t *testing.T) {
	ledger := NewLedgerService(newTestLogger(), repository.NewMemoryTransactionRepository())

	_, err := ledger.RecordClaimSubmission(context.Background(), &entity.Claim{ID: "claim-1", UserID: "user-1"})
	assert.Error(t, err)
}

func TestNoopDashboardCache(t *testing.T) {
	cache := NewNoopDashboardCache()
	ctx := context.Background()

	cache.Set(ctx, "user-1", nil)
	_, ok := cache.Get(ctx, "user-1")
	assert.False(t, ok)
	cache.Invalidate(ctx, "user-1")
}
