package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"maternity-dashboard/internal/converter"
	"maternity-dashboard/internal/domain/entity"
	"maternity-dashboard/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// transactionHashBytes gives a 12 hex digit hash after the 0x prefix
const transactionHashBytes = 6

// LedgerService records the simulated smart contract events that accompany claims.
// Nothing here touches a blockchain; hashes are opaque random placeholders.
type LedgerService interface {
	NewTransactionHash() string
	RecordClaimSubmission(ctx context.Context, claim *entity.Claim) (*entity.Transaction, error)
}

type ledgerService struct {
	log    *logrus.Logger
	txRepo repository.TransactionRepository
}

func NewLedgerService(log *logrus.Logger, txRepo repository.TransactionRepository) LedgerService {
	return &ledgerService{
		log:    log,
		txRepo: txRepo,
	}
}

// NewTransactionHash returns "0x" followed by 12 random lowercase hex digits
func (s *ledgerService) NewTransactionHash() string {
	randomBytes := make([]byte, transactionHashBytes)
	rand.Read(randomBytes)
	return "0x" + hex.EncodeToString(randomBytes)
}

// RecordClaimSubmission inserts the pending coverage transaction for a new claim.
// The claim must already carry its SmartContractTx hash.
func (s *ledgerService) RecordClaimSubmission(ctx context.Context, claim *entity.Claim) (*entity.Transaction, error) {
	hash := ""
	if claim.SmartContractTx != nil {
		hash = *claim.SmartContractTx
	}
	if hash == "" {
		return nil, fmt.Errorf("claim %s has no transaction hash", claim.ID)
	}

	claimID := claim.ID
	tx := &entity.Transaction{
		UserID:          claim.UserID,
		ClaimID:         &claimID,
		TransactionHash: hash,
		ContractType:    entity.ContractTypeCoverage,
		Status:          entity.TransactionStatusPending,
		Metadata: entity.JSON{
			"action": entity.TransactionActionClaimSubmission,
			"amount": converter.FormatMoney(claim.Amount),
		},
	}

	if err := s.txRepo.Create(ctx, tx); err != nil {
		s.log.Warnf("Failed to record transaction for claim %s: %+v", claim.ID, err)
		return nil, fmt.Errorf("record claim submission transaction: %w", err)
	}

	s.log.Debugf("Recorded transaction %s (%s) for claim %s", tx.ID, hash, claim.ID)
	return tx, nil
}
