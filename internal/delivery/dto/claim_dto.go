package dto

import (
	"time"
)

// Request DTOs

// CreateClaimRequest is the body of a claim submission.
// Status, id, timestamps and the transaction reference are server-assigned.
type CreateClaimRequest struct {
	UserID       string   `json:"userId" validate:"required"`
	PolicyID     string   `json:"policyId" validate:"required"`
	ClaimType    string   `json:"claimType" validate:"required,oneof=prenatal_checkup lab_tests ultrasound emergency"`
	Title        string   `json:"title" validate:"max=200"`
	Description  *string  `json:"description"`
	Amount       string   `json:"amount" validate:"required,money"`
	VisitDate    string   `json:"visitDate" validate:"required,iso8601"`
	ProviderName string   `json:"providerName" validate:"required,max=200"`
	Documents    []string `json:"documents" validate:"omitempty,dive,required"`
}

type UpdateClaimStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=submitted under_review approved rejected paid"`
}

// Response DTOs

type ClaimResponse struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	PolicyID        string    `json:"policyId"`
	ClaimType       string    `json:"claimType"`
	ClaimTypeLabel  string    `json:"claimTypeLabel"`
	Title           string    `json:"title"`
	Description     *string   `json:"description"`
	Amount          string    `json:"amount"`
	Status          string    `json:"status"`
	VisitDate       time.Time `json:"visitDate"`
	ProviderName    string    `json:"providerName"`
	Documents       []string  `json:"documents"`
	SmartContractTx *string   `json:"smartContractTx"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
