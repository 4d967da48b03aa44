package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Policy is an insurance contract defining coverage and deductible for a user
type Policy struct {
	ID            string          `gorm:"type:varchar(64);primaryKey" json:"id"`
	UserID        string          `gorm:"type:varchar(64);not null;index" json:"user_id"`
	PolicyNumber  string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"policy_number"`
	PolicyType    string          `gorm:"type:varchar(100);not null" json:"policy_type"`
	TotalCoverage decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_coverage"`
	Deductible    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"deductible"`
	UsedAmount    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"used_amount"`
	IsActive      *bool           `gorm:"not null;default:true" json:"is_active"`
	StartDate     time.Time       `json:"start_date"`
	EndDate       *time.Time      `json:"end_date,omitempty"`
}

func (Policy) TableName() string {
	return "policies"
}

// RemainingCoverage is the part of the total coverage not yet used.
// It goes negative when claims exceed the coverage.
func (p *Policy) RemainingCoverage() decimal.Decimal {
	return p.TotalCoverage.Sub(p.UsedAmount)
}

// IsOverCoverage reports whether used amount exceeds total coverage
func (p *Policy) IsOverCoverage() bool {
	return p.UsedAmount.GreaterThan(p.TotalCoverage)
}

// PolicyUpdate holds the fields that may be merged into an existing policy.
// Nil fields are left untouched.
type PolicyUpdate struct {
	UsedAmount *decimal.Decimal
	IsActive   *bool
	EndDate    *time.Time
}

// Apply merges the non-nil fields into p
func (u PolicyUpdate) Apply(p *Policy) {
	if u.UsedAmount != nil {
		p.UsedAmount = *u.UsedAmount
	}
	if u.IsActive != nil {
		active := *u.IsActive
		p.IsActive = &active
	}
	if u.EndDate != nil {
		end := *u.EndDate
		p.EndDate = &end
	}
}
