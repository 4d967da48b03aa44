package dto

import "time"

type PolicyResponse struct {
	ID            string     `json:"id"`
	UserID        string     `json:"userId"`
	PolicyNumber  string     `json:"policyNumber"`
	PolicyType    string     `json:"policyType"`
	TotalCoverage string     `json:"totalCoverage"`
	Deductible    string     `json:"deductible"`
	UsedAmount    string     `json:"usedAmount"`
	IsActive      bool       `json:"isActive"`
	StartDate     time.Time  `json:"startDate"`
	EndDate       *time.Time `json:"endDate"`
}
