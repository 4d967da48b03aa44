package dto

import "time"

type TransactionResponse struct {
	ID              string                 `json:"id"`
	UserID          string                 `json:"userId"`
	ClaimID         *string                `json:"claimId"`
	TransactionHash string                 `json:"transactionHash"`
	ContractType    string                 `json:"contractType"`
	Status          string                 `json:"status"`
	Metadata        map[string]interface{} `json:"metadata"`
	CreatedAt       time.Time              `json:"createdAt"`
}
