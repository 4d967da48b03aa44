package converter

import (
	"maternity-dashboard/internal/delivery/dto"
	"maternity-dashboard/internal/domain/entity"
)

// TransactionToResponse converts a Transaction entity to TransactionResponse DTO
func TransactionToResponse(tx *entity.Transaction) *dto.TransactionResponse {
	if tx == nil {
		return nil
	}

	metadata := map[string]interface{}(tx.Metadata.Clone())

	return &dto.TransactionResponse{
		ID:              tx.ID,
		UserID:          tx.UserID,
		ClaimID:         tx.ClaimID,
		TransactionHash: tx.TransactionHash,
		ContractType:    string(tx.ContractType),
		Status:          string(tx.Status),
		Metadata:        metadata,
		CreatedAt:       tx.CreatedAt,
	}
}

// TransactionsToResponses converts a slice of Transaction entities to slice of TransactionResponse DTOs
func TransactionsToResponses(txs []entity.Transaction) []dto.TransactionResponse {
	responses := make([]dto.TransactionResponse, len(txs))
	for i := range txs {
		responses[i] = *TransactionToResponse(&txs[i])
	}
	return responses
}
