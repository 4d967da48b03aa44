package repository

import (
	"context"
	"testing"
	"time"

	"maternity-dashboard/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryClaimRepository_CreateAppliesDefaults(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryClaimRepository()

	claim := &entity.Claim{
		UserID:       "user-1",
		PolicyID:     "policy-1",
		ClaimType:    entity.ClaimTypeUltrasound,
		Amount:       decimal.RequireFromString("300.00"),
		VisitDate:    time.Date(2024, 11, 2, 0, 0, 0, 0, time.UTC),
		ProviderName: "City Imaging",
	}
	require.NoError(t, repo.Create(ctx, claim))

	assert.NotEmpty(t, claim.ID)
	assert.Equal(t, entity.ClaimStatusSubmitted, claim.Status)
	assert.NotNil(t, claim.Documents)
	assert.Empty(t, claim.Documents)
	assert.False(t, claim.CreatedAt.IsZero())
	assert.Equal(t, claim.CreatedAt, claim.UpdatedAt)

	stored, err := repo.FindByID(ctx, claim.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, *claim, *stored)
}

func TestMemoryClaimRepository_FindByIDUnknown(t *testing.T) {
	repo := NewMemoryClaimRepository()

	claim, err := repo.FindByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, claim)
}

func TestMemoryClaimRepository_FindByUserIDNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryClaimRepository()
	base := time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC)

	seed := []struct {
		title  string
		offset time.Duration
	}{
		{"oldest", 0},
		{"newest", 48 * time.Hour},
		{"middle", 24 * time.Hour},
	}
	for _, s := range seed {
		require.NoError(t, repo.Create(ctx, &entity.Claim{
			UserID:    "user-1",
			Title:     s.title,
			CreatedAt: base.Add(s.offset),
		}))
	}
	require.NoError(t, repo.Create(ctx, &entity.Claim{UserID: "someone-else", Title: "other"}))

	claims, err := repo.FindByUserID(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, claims, 3)
	assert.Equal(t, "newest", claims[0].Title)
	assert.Equal(t, "middle", claims[1].Title)
	assert.Equal(t, "oldest", claims[2].Title)
}

func TestMemoryClaimRepository_SameInstantKeepsLatestInsertFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryClaimRepository()
	at := time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, &entity.Claim{UserID: "u", Title: "first", CreatedAt: at}))
	require.NoError(t, repo.Create(ctx, &entity.Claim{UserID: "u", Title: "second", CreatedAt: at}))

	claims, err := repo.FindByUserID(ctx, "u")
	require.NoError(t, err)
	require.Len(t, claims, 2)
	assert.Equal(t, "second", claims[0].Title)
}

func TestMemoryClaimRepository_UpdateMergesAndRefreshesTimestamp(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryClaimRepository().(*memoryClaimRepository)
	created := time.Date(2024, 12, 10, 9, 0, 0, 0, time.UTC)
	later := created.Add(3 * time.Hour)
	repo.now = func() time.Time { return later }

	claim := &entity.Claim{UserID: "u", Title: "Glucose Screening Test", CreatedAt: created}
	require.NoError(t, repo.Create(ctx, claim))

	status := entity.ClaimStatusApproved
	updated, err := repo.Update(ctx, claim.ID, entity.ClaimUpdate{Status: &status})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, entity.ClaimStatusApproved, updated.Status)
	assert.Equal(t, "Glucose Screening Test", updated.Title)
	assert.Equal(t, created, updated.CreatedAt)
	assert.Equal(t, later, updated.UpdatedAt)
}

func TestMemoryClaimRepository_UpdateUnknownDoesNotInsert(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryClaimRepository()

	status := entity.ClaimStatusPaid
	updated, err := repo.Update(ctx, "ghost", entity.ClaimUpdate{Status: &status})
	require.NoError(t, err)
	assert.Nil(t, updated)

	found, err := repo.FindByID(ctx, "ghost")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestMemoryClaimRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryClaimRepository()

	claim := &entity.Claim{UserID: "u", Documents: []string{"a.pdf"}}
	require.NoError(t, repo.Create(ctx, claim))

	claim.Documents[0] = "mutated.pdf"
	fetched, err := repo.FindByID(ctx, claim.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.pdf"}, fetched.Documents)

	fetched.Documents[0] = "mutated-again.pdf"
	again, err := repo.FindByID(ctx, claim.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.pdf"}, again.Documents)
}

func TestMemoryClaimRepository_DuplicateID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryClaimRepository()

	require.NoError(t, repo.Create(ctx, &entity.Claim{ID: "c-1", UserID: "u"}))
	err := repo.Create(ctx, &entity.Claim{ID: "c-1", UserID: "u"})
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestMemoryPolicyRepository_Defaults(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryPolicyRepository()

	policy := &entity.Policy{
		UserID:        "user-1",
		PolicyNumber:  "MG-2024-000001",
		PolicyType:    "Maternity Basic",
		TotalCoverage: decimal.RequireFromString("5000.00"),
		Deductible:    decimal.RequireFromString("250.00"),
	}
	require.NoError(t, repo.Create(ctx, policy))

	assert.NotEmpty(t, policy.ID)
	assert.True(t, policy.UsedAmount.IsZero())
	require.NotNil(t, policy.IsActive)
	assert.True(t, *policy.IsActive)
	assert.False(t, policy.StartDate.IsZero())
	assert.Nil(t, policy.EndDate)
}

func TestMemoryPolicyRepository_UniquePolicyNumber(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryPolicyRepository()

	require.NoError(t, repo.Create(ctx, &entity.Policy{UserID: "a", PolicyNumber: "MG-1"}))
	err := repo.Create(ctx, &entity.Policy{UserID: "b", PolicyNumber: "MG-1"})
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestMemoryPolicyRepository_FindByUserID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryPolicyRepository()

	require.NoError(t, repo.Create(ctx, &entity.Policy{UserID: "user-1", PolicyNumber: "MG-1"}))
	require.NoError(t, repo.Create(ctx, &entity.Policy{UserID: "user-1", PolicyNumber: "MG-2"}))

	policy, err := repo.FindByUserID(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, policy)
	assert.Equal(t, "MG-1", policy.PolicyNumber)

	none, err := repo.FindByUserID(ctx, "user-2")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestMemoryPolicyRepository_AddUsedAmountIsDecimalExact(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryPolicyRepository()

	policy := &entity.Policy{UserID: "u", PolicyNumber: "MG-1", UsedAmount: decimal.RequireFromString("0.10")}
	require.NoError(t, repo.Create(ctx, policy))

	for i := 0; i < 2; i++ {
		_, err := repo.AddUsedAmount(ctx, policy.ID, decimal.RequireFromString("0.10"))
		require.NoError(t, err)
	}

	updated, err := repo.FindByID(ctx, policy.ID)
	require.NoError(t, err)
	assert.Equal(t, "0.30", updated.UsedAmount.StringFixed(2))
	assert.True(t, updated.UsedAmount.Equal(decimal.RequireFromString("0.3")))
}

func TestMemoryPolicyRepository_AddUsedAmountUnknown(t *testing.T) {
	repo := NewMemoryPolicyRepository()

	policy, err := repo.AddUsedAmount(context.Background(), "missing", decimal.NewFromInt(1))
	require.NoError(t, err)
	assert.Nil(t, policy)
}

func TestMemoryPolicyRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryPolicyRepository()

	policy := &entity.Policy{UserID: "u", PolicyNumber: "MG-1", UsedAmount: decimal.RequireFromString("10")}
	require.NoError(t, repo.Create(ctx, policy))

	inactive := false
	updated, err := repo.Update(ctx, policy.ID, entity.PolicyUpdate{IsActive: &inactive})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.False(t, *updated.IsActive)
	assert.Equal(t, "10.00", updated.UsedAmount.StringFixed(2))

	missing, err := repo.Update(ctx, "nope", entity.PolicyUpdate{IsActive: &inactive})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryTransactionRepository_DefaultsAndLookups(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTransactionRepository()
	claimID := "claim-1"
	base := time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC)

	older := &entity.Transaction{UserID: "user-1", ClaimID: &claimID, TransactionHash: "0xaaa", ContractType: entity.ContractTypeCoverage, CreatedAt: base}
	newer := &entity.Transaction{UserID: "user-1", TransactionHash: "0xbbb", ContractType: entity.ContractTypePayment, CreatedAt: base.Add(time.Hour)}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	assert.Equal(t, entity.TransactionStatusPending, older.Status)
	assert.NotNil(t, older.Metadata)

	txs, err := repo.FindByUserID(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "0xbbb", txs[0].TransactionHash)
	assert.Equal(t, "0xaaa", txs[1].TransactionHash)

	byClaim, err := repo.FindByClaimID(ctx, claimID)
	require.NoError(t, err)
	require.Len(t, byClaim, 1)
	assert.Equal(t, older.ID, byClaim[0].ID)

	found, err := repo.FindByID(ctx, newer.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, entity.ContractTypePayment, found.ContractType)
}

func TestMemoryUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()

	user := &entity.User{ID: "user-1", Username: "sarah.johnson", Email: "sarah.johnson@email.com"}
	require.NoError(t, repo.Create(ctx, user))
	assert.Equal(t, "user-1", user.ID)

	byName, err := repo.FindByUsername(ctx, "sarah.johnson")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, "user-1", byName.ID)

	err = repo.Create(ctx, &entity.User{Username: "sarah.johnson", Email: "other@email.com"})
	assert.ErrorIs(t, err, ErrDuplicateKey)

	missing, err := repo.FindByID(ctx, "user-2")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
