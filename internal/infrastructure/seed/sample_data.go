package seed

import (
	"context"
	"fmt"
	"time"

	"maternity-dashboard/internal/domain/entity"
	"maternity-dashboard/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const (
	// SampleUserID is the predictable id the dashboard front-end opens by default
	SampleUserID = "user-1"

	samplePassword = "mothergrid-demo"
)

type Seeder struct {
	log        *logrus.Logger
	userRepo   repository.UserRepository
	policyRepo repository.PolicyRepository
	claimRepo  repository.ClaimRepository
	txRepo     repository.TransactionRepository
}

func NewSeeder(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	policyRepo repository.PolicyRepository,
	claimRepo repository.ClaimRepository,
	txRepo repository.TransactionRepository,
) *Seeder {
	return &Seeder{
		log:        log,
		userRepo:   userRepo,
		policyRepo: policyRepo,
		claimRepo:  claimRepo,
		txRepo:     txRepo,
	}
}

// Run loads the sample user with one policy, two claims and their ledger
// transactions. It does nothing when the sample user already exists.
func (s *Seeder) Run(ctx context.Context) error {
	existing, err := s.userRepo.FindByID(ctx, SampleUserID)
	if err != nil {
		return fmt.Errorf("failed to check sample user: %w", err)
	}
	if existing != nil {
		s.log.Info("Sample data already present, skipping seed")
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(samplePassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash sample password: %w", err)
	}

	phone := "+1234567890"
	week := 24
	dueDate := date(2025, time.April, 15)
	user := &entity.User{
		ID:            SampleUserID,
		Username:      "sarah.johnson",
		Password:      string(hashed),
		FirstName:     "Sarah",
		LastName:      "Johnson",
		Email:         "sarah.johnson@email.com",
		PhoneNumber:   &phone,
		PregnancyWeek: &week,
		DueDate:       &dueDate,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to seed user: %w", err)
	}

	endDate := date(2025, time.December, 31)
	policy := &entity.Policy{
		UserID:        user.ID,
		PolicyNumber:  "MG-2024-001234",
		PolicyType:    "Maternity Plus",
		TotalCoverage: decimal.RequireFromString("15000.00"),
		Deductible:    decimal.RequireFromString("500.00"),
		UsedAmount:    decimal.RequireFromString("2450.00"),
		StartDate:     date(2024, time.January, 1),
		EndDate:       &endDate,
	}
	if err := s.policyRepo.Create(ctx, policy); err != nil {
		return fmt.Errorf("failed to seed policy: %w", err)
	}

	claims := []struct {
		claim    entity.Claim
		tx       entity.Transaction
		txAction string
	}{
		{
			claim: entity.Claim{
				ClaimType:       entity.ClaimTypePrenatalCheckup,
				Title:           "First Prenatal Visit",
				Description:     strPtr("Initial checkup and insurance verification completed"),
				Amount:          decimal.RequireFromString("450.00"),
				Status:          entity.ClaimStatusApproved,
				VisitDate:       date(2024, time.September, 15),
				ProviderName:    "Dr. Smith, General Hospital",
				SmartContractTx: strPtr("0xabcd1234567890"),
				CreatedAt:       date(2024, time.September, 15),
				UpdatedAt:       date(2024, time.September, 16),
			},
			tx: entity.Transaction{
				ContractType: entity.ContractTypeCoverage,
				Status:       entity.TransactionStatusExecuted,
			},
			txAction: entity.TransactionActionClaimApproval,
		},
		{
			claim: entity.Claim{
				ClaimType:       entity.ClaimTypeLabTests,
				Title:           "Glucose Screening Test",
				Description:     strPtr("Test completed, awaiting results and claim processing"),
				Amount:          decimal.RequireFromString("125.00"),
				Status:          entity.ClaimStatusUnderReview,
				VisitDate:       date(2024, time.December, 10),
				ProviderName:    "LabCorp Medical Center",
				SmartContractTx: strPtr("0xefgh5678901234"),
				CreatedAt:       date(2024, time.December, 10),
				UpdatedAt:       date(2024, time.December, 10),
			},
			tx: entity.Transaction{
				ContractType: entity.ContractTypeVerification,
				Status:       entity.TransactionStatusPending,
			},
			txAction: entity.TransactionActionTestVerify,
		},
	}

	for i := range claims {
		claim := claims[i].claim
		claim.UserID = user.ID
		claim.PolicyID = policy.ID
		if err := s.claimRepo.Create(ctx, &claim); err != nil {
			return fmt.Errorf("failed to seed claim %q: %w", claim.Title, err)
		}

		tx := claims[i].tx
		tx.UserID = user.ID
		tx.ClaimID = &claim.ID
		tx.TransactionHash = *claim.SmartContractTx
		tx.Metadata = entity.JSON{
			"action": claims[i].txAction,
			"amount": claim.Amount.StringFixed(2),
		}
		tx.CreatedAt = claim.CreatedAt
		if err := s.txRepo.Create(ctx, &tx); err != nil {
			return fmt.Errorf("failed to seed transaction %s: %w", tx.TransactionHash, err)
		}
	}

	s.log.Infof("Seeded sample data for user %s", user.ID)
	return nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string {
	return &s
}
