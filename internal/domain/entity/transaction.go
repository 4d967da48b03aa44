package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ContractType is the kind of simulated smart contract event
type ContractType string

const (
	ContractTypeCoverage     ContractType = "coverage"
	ContractTypeVerification ContractType = "verification"
	ContractTypePayment      ContractType = "payment"
)

// TransactionStatus represents the status of a smart contract transaction
type TransactionStatus string

const (
	TransactionStatusPending  TransactionStatus = "pending"
	TransactionStatusExecuted TransactionStatus = "executed"
	TransactionStatusFailed   TransactionStatus = "failed"
)

// Transaction is a synthetic record simulating a smart contract event.
// No chain is involved; TransactionHash is an opaque placeholder.
type Transaction struct {
	ID              string            `gorm:"type:varchar(64);primaryKey" json:"id"`
	UserID          string            `gorm:"type:varchar(64);not null;index" json:"user_id"`
	ClaimID         *string           `gorm:"type:varchar(64);index" json:"claim_id,omitempty"`
	TransactionHash string            `gorm:"type:text;not null" json:"transaction_hash"`
	ContractType    ContractType      `gorm:"type:varchar(32);not null" json:"contract_type"`
	Status          TransactionStatus `gorm:"type:varchar(32);not null;default:'pending'" json:"status"`
	Metadata        JSON              `gorm:"type:jsonb" json:"metadata"`
	CreatedAt       time.Time         `gorm:"autoCreateTime;index" json:"created_at"`
}

func (Transaction) TableName() string {
	return "smart_contract_transactions"
}

// Transaction metadata actions
const (
	TransactionActionClaimSubmission = "claim_submission"
	TransactionActionClaimApproval   = "claim_approval"
	TransactionActionTestVerify      = "test_verification"
)

// JSON type for GORM JSONB support
type JSON map[string]interface{}

// Value returns json value, implement driver.Valuer interface
func (j JSON) Value() (driver.Value, error) {
	if j == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(j)
}

// Scan scan value into Jsonb, implements sql.Scanner interface
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = JSON{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	result := map[string]interface{}{}
	err := json.Unmarshal(bytes, &result)
	*j = JSON(result)
	return err
}

// Clone returns a shallow copy of the map
func (j JSON) Clone() JSON {
	out := make(JSON, len(j))
	for k, v := range j {
		out[k] = v
	}
	return out
}
