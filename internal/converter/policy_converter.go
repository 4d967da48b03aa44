package converter

import (
	"maternity-dashboard/internal/delivery/dto"
	"maternity-dashboard/internal/domain/entity"
)

// PolicyToResponse converts a Policy entity to PolicyResponse DTO
func PolicyToResponse(policy *entity.Policy) *dto.PolicyResponse {
	if policy == nil {
		return nil
	}

	return &dto.PolicyResponse{
		ID:            policy.ID,
		UserID:        policy.UserID,
		PolicyNumber:  policy.PolicyNumber,
		PolicyType:    policy.PolicyType,
		TotalCoverage: FormatMoney(policy.TotalCoverage),
		Deductible:    FormatMoney(policy.Deductible),
		UsedAmount:    FormatMoney(policy.UsedAmount),
		IsActive:      policy.IsActive == nil || *policy.IsActive,
		StartDate:     policy.StartDate,
		EndDate:       policy.EndDate,
	}
}
