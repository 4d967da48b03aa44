package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClaimType is the kind of medical visit a claim reimburses
type ClaimType string

const (
	ClaimTypePrenatalCheckup ClaimType = "prenatal_checkup"
	ClaimTypeLabTests        ClaimType = "lab_tests"
	ClaimTypeUltrasound      ClaimType = "ultrasound"
	ClaimTypeEmergency       ClaimType = "emergency"
)

// ClaimStatus represents the status of a claim
type ClaimStatus string

const (
	ClaimStatusSubmitted   ClaimStatus = "submitted"
	ClaimStatusUnderReview ClaimStatus = "under_review"
	ClaimStatusApproved    ClaimStatus = "approved"
	ClaimStatusRejected    ClaimStatus = "rejected"
	ClaimStatusPaid        ClaimStatus = "paid"
)

// Claim is a request for reimbursement tied to a medical visit
type Claim struct {
	ID              string          `gorm:"type:varchar(64);primaryKey" json:"id"`
	UserID          string          `gorm:"type:varchar(64);not null;index" json:"user_id"`
	PolicyID        string          `gorm:"type:varchar(64);not null;index" json:"policy_id"`
	ClaimType       ClaimType       `gorm:"type:varchar(32);not null" json:"claim_type"`
	Title           string          `gorm:"type:text;not null" json:"title"`
	Description     *string         `gorm:"type:text" json:"description,omitempty"`
	Amount          decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Status          ClaimStatus     `gorm:"type:varchar(32);not null;default:'submitted';index" json:"status"`
	VisitDate       time.Time       `gorm:"not null" json:"visit_date"`
	ProviderName    string          `gorm:"type:text;not null" json:"provider_name"`
	Documents       []string        `gorm:"type:jsonb;serializer:json" json:"documents"`
	SmartContractTx *string         `gorm:"type:text" json:"smart_contract_tx,omitempty"`
	CreatedAt       time.Time       `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Claim) TableName() string {
	return "claims"
}

// IsActive reports whether the claim still awaits a decision
func (c *Claim) IsActive() bool {
	return c.Status == ClaimStatusSubmitted || c.Status == ClaimStatusUnderReview
}

// ClaimUpdate holds the fields that may be merged into an existing claim.
// Nil fields are left untouched.
type ClaimUpdate struct {
	Status          *ClaimStatus
	Documents       []string
	SmartContractTx *string
}

// Apply merges the non-nil fields into c. UpdatedAt is the caller's job.
func (u ClaimUpdate) Apply(c *Claim) {
	if u.Status != nil {
		c.Status = *u.Status
	}
	if u.Documents != nil {
		c.Documents = append([]string(nil), u.Documents...)
	}
	if u.SmartContractTx != nil {
		tx := *u.SmartContractTx
		c.SmartContractTx = &tx
	}
}
