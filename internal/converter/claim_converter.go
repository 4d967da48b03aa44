package converter

import (
	"strings"

	"maternity-dashboard/internal/delivery/dto"
	"maternity-dashboard/internal/domain/entity"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ClaimToResponse converts a Claim entity to ClaimResponse DTO
func ClaimToResponse(claim *entity.Claim) *dto.ClaimResponse {
	if claim == nil {
		return nil
	}

	documents := make([]string, len(claim.Documents))
	copy(documents, claim.Documents)

	return &dto.ClaimResponse{
		ID:              claim.ID,
		UserID:          claim.UserID,
		PolicyID:        claim.PolicyID,
		ClaimType:       string(claim.ClaimType),
		ClaimTypeLabel:  ClaimTypeLabel(claim.ClaimType),
		Title:           claim.Title,
		Description:     claim.Description,
		Amount:          FormatMoney(claim.Amount),
		Status:          string(claim.Status),
		VisitDate:       claim.VisitDate,
		ProviderName:    claim.ProviderName,
		Documents:       documents,
		SmartContractTx: claim.SmartContractTx,
		CreatedAt:       claim.CreatedAt,
		UpdatedAt:       claim.UpdatedAt,
	}
}

// ClaimsToResponses converts a slice of Claim entities to slice of ClaimResponse DTOs
func ClaimsToResponses(claims []entity.Claim) []dto.ClaimResponse {
	responses := make([]dto.ClaimResponse, len(claims))
	for i := range claims {
		responses[i] = *ClaimToResponse(&claims[i])
	}
	return responses
}

// ClaimTypeLabel turns "prenatal_checkup" into "Prenatal Checkup"
func ClaimTypeLabel(t entity.ClaimType) string {
	return cases.Title(language.English).String(strings.ReplaceAll(string(t), "_", " "))
}
