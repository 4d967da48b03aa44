package usecase

import (
	"context"
	"fmt"

	"maternity-dashboard/internal/converter"
	"maternity-dashboard/internal/delivery/dto"
	"maternity-dashboard/internal/domain/entity"
	"maternity-dashboard/internal/domain/repository"
	"maternity-dashboard/internal/service"
	"maternity-dashboard/pkg/validator"

	"github.com/sirupsen/logrus"
)

type ClaimUsecase interface {
	SubmitClaim(ctx context.Context, req *dto.CreateClaimRequest) (*dto.ClaimResponse, error)
	UpdateClaimStatus(ctx context.Context, claimID string, req *dto.UpdateClaimStatusRequest) (*dto.ClaimResponse, error)
	GetClaim(ctx context.Context, claimID string) (*dto.ClaimResponse, error)
	GetClaimsByUser(ctx context.Context, userID string) ([]dto.ClaimResponse, error)
}

type claimUsecase struct {
	log        *logrus.Logger
	validator  *validator.CustomValidator
	claimRepo  repository.ClaimRepository
	policyRepo repository.PolicyRepository
	ledger     service.LedgerService
	cache      service.DashboardCache
}

func NewClaimUsecase(
	log *logrus.Logger,
	validator *validator.CustomValidator,
	claimRepo repository.ClaimRepository,
	policyRepo repository.PolicyRepository,
	ledger service.LedgerService,
	cache service.DashboardCache,
) ClaimUsecase {
	return &claimUsecase{
		log:        log,
		validator:  validator,
		claimRepo:  claimRepo,
		policyRepo: policyRepo,
		ledger:     ledger,
		cache:      cache,
	}
}

// SubmitClaim stores a new claim and applies its side effects.
//
// Flow:
// 1. Validate the request
// 2. Insert the claim (status submitted) carrying a fresh transaction hash
// 3. Record the pending coverage transaction, always
// 4. Add the claim amount to the policy's used amount if the policy exists
//
// The claim is never rolled back. A missing policy only logs a warning and the
// claim is returned without any balance change.
func (u *claimUsecase) SubmitClaim(ctx context.Context, req *dto.CreateClaimRequest) (*dto.ClaimResponse, error) {
	if err := u.validator.Validate(req); err != nil {
		return nil, &ValidationError{Fields: u.validator.FormatValidationErrors(err)}
	}

	// Already validated, only converted here
	amount, err := validator.ParseMoney(req.Amount)
	if err != nil {
		return nil, &ValidationError{Fields: map[string]string{"amount": err.Error()}}
	}
	visitDate, err := validator.ParseISODate(req.VisitDate)
	if err != nil {
		return nil, &ValidationError{Fields: map[string]string{"visitDate": err.Error()}}
	}

	claimType := entity.ClaimType(req.ClaimType)
	title := req.Title
	if title == "" {
		title = converter.ClaimTypeLabel(claimType)
	}

	hash := u.ledger.NewTransactionHash()
	claim := &entity.Claim{
		UserID:          req.UserID,
		PolicyID:        req.PolicyID,
		ClaimType:       claimType,
		Title:           title,
		Description:     req.Description,
		Amount:          amount,
		Status:          entity.ClaimStatusSubmitted,
		VisitDate:       visitDate,
		ProviderName:    req.ProviderName,
		Documents:       req.Documents,
		SmartContractTx: &hash,
	}

	if err := u.claimRepo.Create(ctx, claim); err != nil {
		u.log.Warnf("Failed to create claim for user %s: %+v", req.UserID, err)
		return nil, err
	}
	defer u.cache.Invalidate(ctx, claim.UserID)

	if _, err := u.ledger.RecordClaimSubmission(ctx, claim); err != nil {
		u.log.Errorf("Claim %s committed without its transaction: %+v", claim.ID, err)
		return nil, err
	}

	if err := u.applyToPolicy(ctx, claim); err != nil {
		u.log.Errorf("Claim %s committed without policy update: %+v", claim.ID, err)
		return nil, err
	}

	u.log.Infof("Claim submitted: id=%s, user=%s, policy=%s, amount=%s, tx=%s",
		claim.ID, claim.UserID, claim.PolicyID, converter.FormatMoney(claim.Amount), hash)
	return converter.ClaimToResponse(claim), nil
}

// applyToPolicy adds the claim amount to the policy's running total
func (u *claimUsecase) applyToPolicy(ctx context.Context, claim *entity.Claim) error {
	policy, err := u.policyRepo.AddUsedAmount(ctx, claim.PolicyID, claim.Amount)
	if err != nil {
		return fmt.Errorf("update used amount of policy %s: %w", claim.PolicyID, err)
	}
	if policy == nil {
		u.log.Warnf("Policy %s not found for claim %s, used amount not updated", claim.PolicyID, claim.ID)
		return nil
	}
	if policy.UserID != claim.UserID {
		u.cache.Invalidate(ctx, policy.UserID)
	}
	if policy.IsOverCoverage() {
		u.log.Warnf("Policy %s used amount %s exceeds total coverage %s",
			policy.ID, converter.FormatMoney(policy.UsedAmount), converter.FormatMoney(policy.TotalCoverage))
	}
	return nil
}

// UpdateClaimStatus sets any known status. Transitions are not restricted.
func (u *claimUsecase) UpdateClaimStatus(ctx context.Context, claimID string, req *dto.UpdateClaimStatusRequest) (*dto.ClaimResponse, error) {
	if err := u.validator.Validate(req); err != nil {
		return nil, &ValidationError{Fields: u.validator.FormatValidationErrors(err)}
	}

	status := entity.ClaimStatus(req.Status)
	claim, err := u.claimRepo.Update(ctx, claimID, entity.ClaimUpdate{Status: &status})
	if err != nil {
		u.log.Warnf("Failed to update claim %s: %+v", claimID, err)
		return nil, err
	}
	if claim == nil {
		return nil, ErrClaimNotFound
	}

	u.cache.Invalidate(ctx, claim.UserID)

	u.log.Infof("Claim status updated: id=%s, status=%s", claim.ID, claim.Status)
	return converter.ClaimToResponse(claim), nil
}

func (u *claimUsecase) GetClaim(ctx context.Context, claimID string) (*dto.ClaimResponse, error) {
	claim, err := u.claimRepo.FindByID(ctx, claimID)
	if err != nil {
		u.log.Warnf("Failed to find claim %s: %+v", claimID, err)
		return nil, err
	}
	if claim == nil {
		return nil, ErrClaimNotFound
	}

	return converter.ClaimToResponse(claim), nil
}

// GetClaimsByUser returns the user's claims, newest first. Unknown users get an empty list.
func (u *claimUsecase) GetClaimsByUser(ctx context.Context, userID string) ([]dto.ClaimResponse, error) {
	claims, err := u.claimRepo.FindByUserID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find claims for user %s: %+v", userID, err)
		return nil, err
	}

	return converter.ClaimsToResponses(claims), nil
}
