package usecase

import (
	"context"

	"maternity-dashboard/internal/converter"
	"maternity-dashboard/internal/delivery/dto"
	"maternity-dashboard/internal/domain/entity"
	"maternity-dashboard/internal/domain/repository"
	"maternity-dashboard/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc/pool"
)

// coverageUsedWithoutPolicy is reported when the user holds no policy
const coverageUsedWithoutPolicy = "0"

type DashboardUsecase interface {
	GetDashboard(ctx context.Context, userID string) (*dto.DashboardResponse, error)
}

type dashboardUsecase struct {
	log        *logrus.Logger
	userRepo   repository.UserRepository
	policyRepo repository.PolicyRepository
	claimRepo  repository.ClaimRepository
	txRepo     repository.TransactionRepository
	cache      service.DashboardCache
}

func NewDashboardUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	policyRepo repository.PolicyRepository,
	claimRepo repository.ClaimRepository,
	txRepo repository.TransactionRepository,
	cache service.DashboardCache,
) DashboardUsecase {
	return &dashboardUsecase{
		log:        log,
		userRepo:   userRepo,
		policyRepo: policyRepo,
		claimRepo:  claimRepo,
		txRepo:     txRepo,
		cache:      cache,
	}
}

// GetDashboard composes user, policy, claims, transactions and stats for one user.
// Policy may be nil. Claims and transactions come newest first.
func (u *dashboardUsecase) GetDashboard(ctx context.Context, userID string) (*dto.DashboardResponse, error) {
	if cached, ok := u.cache.Get(ctx, userID); ok {
		return cached, nil
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", userID, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	var (
		policy *entity.Policy
		claims []entity.Claim
		txs    []entity.Transaction
	)

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		var err error
		policy, err = u.policyRepo.FindByUserID(ctx, userID)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		claims, err = u.claimRepo.FindByUserID(ctx, userID)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		txs, err = u.txRepo.FindByUserID(ctx, userID)
		return err
	})
	if err := p.Wait(); err != nil {
		u.log.Warnf("Failed to load dashboard for user %s: %+v", userID, err)
		return nil, err
	}

	dashboard := &dto.DashboardResponse{
		User:         *converter.UserToResponse(user),
		Policy:       converter.PolicyToResponse(policy),
		Claims:       converter.ClaimsToResponses(claims),
		Transactions: converter.TransactionsToResponses(txs),
		Stats:        computeStats(policy, claims),
	}

	u.cache.Set(ctx, userID, dashboard)
	return dashboard, nil
}

func computeStats(policy *entity.Policy, claims []entity.Claim) dto.DashboardStats {
	stats := dto.DashboardStats{
		CoverageUsed: coverageUsedWithoutPolicy,
	}

	for i := range claims {
		if claims[i].IsActive() {
			stats.ActiveClaims++
		}
	}

	if policy != nil {
		stats.CoverageUsed = converter.FormatMoney(policy.UsedAmount)
		stats.TotalCoverage = converter.FormatMoney(policy.TotalCoverage)
		stats.RemainingCoverage = converter.FormatMoney(policy.RemainingCoverage())
	}

	return stats
}
