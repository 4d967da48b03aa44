package usecase

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"maternity-dashboard/internal/delivery/dto"
	"maternity-dashboard/internal/domain/entity"
	domainRepo "maternity-dashboard/internal/domain/repository"
	"maternity-dashboard/internal/repository"
	"maternity-dashboard/internal/service"
	"maternity-dashboard/pkg/validator"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// fixture wires usecases over fresh in-memory repositories
type fixture struct {
	log       *logrus.Logger
	users     domainRepo.UserRepository
	policies  domainRepo.PolicyRepository
	claims    domainRepo.ClaimRepository
	txs       domainRepo.TransactionRepository
	cache     *recordingCache
	claimUC   ClaimUsecase
	dashUC    DashboardUsecase
	txUC      TransactionUsecase
	policyID  string
	userID    string
	emptyUser string
	validator *validator.CustomValidator
	ledger    service.LedgerService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	f := &fixture{
		log:       log,
		users:     repository.NewMemoryUserRepository(),
		policies:  repository.NewMemoryPolicyRepository(),
		claims:    repository.NewMemoryClaimRepository(),
		txs:       repository.NewMemoryTransactionRepository(),
		cache:     newRecordingCache(),
		validator: validator.NewValidator(),
		userID:    "user-1",
		emptyUser: "user-2",
	}
	f.ledger = service.NewLedgerService(log, f.txs)
	f.claimUC = NewClaimUsecase(log, f.validator, f.claims, f.policies, f.ledger, f.cache)
	f.dashUC = NewDashboardUsecase(log, f.users, f.policies, f.claims, f.txs, f.cache)
	f.txUC = NewTransactionUsecase(log, f.txs)

	ctx := context.Background()
	require.NoError(t, f.users.Create(ctx, &entity.User{ID: f.userID, Username: "sarah.johnson", FirstName: "Sarah", LastName: "Johnson", Email: "sarah.johnson@email.com"}))
	require.NoError(t, f.users.Create(ctx, &entity.User{ID: f.emptyUser, Username: "no.policy", FirstName: "Nina", LastName: "Park", Email: "nina@email.com"}))

	policy := &entity.Policy{
		UserID:        f.userID,
		PolicyNumber:  "MG-2024-001234",
		PolicyType:    "Maternity Plus",
		TotalCoverage: decimal.RequireFromString("15000.00"),
		Deductible:    decimal.RequireFromString("500.00"),
		UsedAmount:    decimal.RequireFromString("2450.00"),
	}
	require.NoError(t, f.policies.Create(ctx, policy))
	f.policyID = policy.ID

	return f
}

func (f *fixture) validRequest() *dto.CreateClaimRequest {
	description := "Anatomy scan"
	return &dto.CreateClaimRequest{
		UserID:       f.userID,
		PolicyID:     f.policyID,
		ClaimType:    "ultrasound",
		Title:        "20 Week Ultrasound",
		Description:  &description,
		Amount:       "125.00",
		VisitDate:    "2024-12-10",
		ProviderName: "City Imaging Center",
		Documents:    []string{"https://storage.mothergrid.com/documents/1_scan.pdf"},
	}
}

// recordingCache is an in-process DashboardCache that records invalidations
type recordingCache struct {
	mu          sync.Mutex
	entries     map[string]*dto.DashboardResponse
	invalidated []string
}

func newRecordingCache() *recordingCache {
	return &recordingCache{entries: make(map[string]*dto.DashboardResponse)}
}

func (c *recordingCache) Get(_ context.Context, userID string) (*dto.DashboardResponse, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.entries[userID]
	return d, ok
}

func (c *recordingCache) Set(_ context.Context, userID string, d *dto.DashboardResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[userID] = d
}

func (c *recordingCache) Invalidate(_ context.Context, userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, userID)
	c.invalidated = append(c.invalidated, userID)
}

// failingClaimRepository fails every call
type failingClaimRepository struct {
	err error
}

func (r failingClaimRepository) Create(context.Context, *entity.Claim) error { return r.err }
func (r failingClaimRepository) FindByID(context.Context, string) (*entity.Claim, error) {
	return nil, r.err
}
func (r failingClaimRepository) FindByUserID(context.Context, string) ([]entity.Claim, error) {
	return nil, r.err
}
func (r failingClaimRepository) Update(context.Context, string, entity.ClaimUpdate) (*entity.Claim, error) {
	return nil, r.err
}

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return parsed
}
