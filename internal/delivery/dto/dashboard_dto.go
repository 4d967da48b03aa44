package dto

type DashboardStats struct {
	ActiveClaims int `json:"activeClaims"`
	// CoverageUsed is the policy's used amount, or "0" when the user has no policy
	CoverageUsed      string `json:"coverageUsed"`
	TotalCoverage     string `json:"totalCoverage,omitempty"`
	RemainingCoverage string `json:"remainingCoverage,omitempty"`
}

type DashboardResponse struct {
	User         UserResponse          `json:"user"`
	Policy       *PolicyResponse       `json:"policy"`
	Claims       []ClaimResponse       `json:"claims"`
	Transactions []TransactionResponse `json:"smartContractTransactions"`
	Stats        DashboardStats        `json:"stats"`
}
