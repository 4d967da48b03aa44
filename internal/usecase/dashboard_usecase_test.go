package usecase

import (
	"context"
	"errors"
	"testing"

	"maternity-dashboard/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDashboard_UnknownUser(t *testing.T) {
	f := newFixture(t)

	_, err := f.dashUC.GetDashboard(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetDashboard_UserWithoutPolicy(t *testing.T) {
	f := newFixture(t)

	dashboard, err := f.dashUC.GetDashboard(context.Background(), f.emptyUser)
	require.NoError(t, err)

	assert.Nil(t, dashboard.Policy)
	assert.Equal(t, "0", dashboard.Stats.CoverageUsed)
	assert.Empty(t, dashboard.Stats.TotalCoverage)
	assert.Equal(t, 0, dashboard.Stats.ActiveClaims)
	assert.NotNil(t, dashboard.Claims)
	assert.NotNil(t, dashboard.Transactions)
}

func TestGetDashboard_ComposesStats(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	seed := []struct {
		status  entity.ClaimStatus
		created string
	}{
		{entity.ClaimStatusApproved, "2024-09-15T00:00:00Z"},
		{entity.ClaimStatusUnderReview, "2024-12-10T00:00:00Z"},
		{entity.ClaimStatusSubmitted, "2024-12-20T00:00:00Z"},
		{entity.ClaimStatusRejected, "2024-10-01T00:00:00Z"},
		{entity.ClaimStatusPaid, "2024-10-05T00:00:00Z"},
	}
	for _, s := range seed {
		require.NoError(t, f.claims.Create(ctx, &entity.Claim{
			UserID:    f.userID,
			PolicyID:  f.policyID,
			Status:    s.status,
			Amount:    decimal.NewFromInt(10),
			CreatedAt: mustTime(t, s.created),
		}))
	}
	require.NoError(t, f.txs.Create(ctx, &entity.Transaction{UserID: f.userID, TransactionHash: "0xold", CreatedAt: mustTime(t, "2024-09-15T00:00:00Z")}))
	require.NoError(t, f.txs.Create(ctx, &entity.Transaction{UserID: f.userID, TransactionHash: "0xnew", CreatedAt: mustTime(t, "2024-12-10T00:00:00Z")}))

	dashboard, err := f.dashUC.GetDashboard(ctx, f.userID)
	require.NoError(t, err)

	assert.Equal(t, "Sarah", dashboard.User.FirstName)
	require.NotNil(t, dashboard.Policy)
	assert.Equal(t, "MG-2024-001234", dashboard.Policy.PolicyNumber)

	require.Len(t, dashboard.Claims, 5)
	assert.Equal(t, "submitted", dashboard.Claims[0].Status)
	assert.Equal(t, "approved", dashboard.Claims[4].Status)

	require.Len(t, dashboard.Transactions, 2)
	assert.Equal(t, "0xnew", dashboard.Transactions[0].TransactionHash)

	assert.Equal(t, 2, dashboard.Stats.ActiveClaims)
	assert.Equal(t, "2450.00", dashboard.Stats.CoverageUsed)
	assert.Equal(t, "15000.00", dashboard.Stats.TotalCoverage)
	assert.Equal(t, "12550.00", dashboard.Stats.RemainingCoverage)
}

func TestGetDashboard_ReflectsSubmittedClaim(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.dashUC.GetDashboard(ctx, f.userID)
	require.NoError(t, err)

	claim, err := f.claimUC.SubmitClaim(ctx, f.validRequest())
	require.NoError(t, err)

	dashboard, err := f.dashUC.GetDashboard(ctx, f.userID)
	require.NoError(t, err)
	assert.Equal(t, "2575.00", dashboard.Stats.CoverageUsed)
	assert.Equal(t, 1, dashboard.Stats.ActiveClaims)
	require.Len(t, dashboard.Claims, 1)
	assert.Equal(t, claim.ID, dashboard.Claims[0].ID)
	require.Len(t, dashboard.Transactions, 1)
}

func TestGetDashboard_ServesFromCache(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.dashUC.GetDashboard(ctx, f.userID)
	require.NoError(t, err)

	// write behind the usecase's back so only a cache hit can return the old payload
	require.NoError(t, f.claims.Create(ctx, &entity.Claim{UserID: f.userID, Status: entity.ClaimStatusSubmitted}))

	second, err := f.dashUC.GetDashboard(ctx, f.userID)
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestGetDashboard_StoreFailure(t *testing.T) {
	f := newFixture(t)
	boom := errors.New("connection reset")
	uc := NewDashboardUsecase(f.log, f.users, f.policies, failingClaimRepository{err: boom}, f.txs, f.cache)

	_, err := uc.GetDashboard(context.Background(), f.userID)
	assert.ErrorIs(t, err, boom)

	_, cached := f.cache.Get(context.Background(), f.userID)
	assert.False(t, cached)
}
