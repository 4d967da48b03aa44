package usecase

import (
	"context"

	"maternity-dashboard/internal/converter"
	"maternity-dashboard/internal/delivery/dto"
	"maternity-dashboard/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type TransactionUsecase interface {
	GetTransactionsByUser(ctx context.Context, userID string) ([]dto.TransactionResponse, error)
	GetTransaction(ctx context.Context, id string) (*dto.TransactionResponse, error)
}

type transactionUsecase struct {
	log    *logrus.Logger
	txRepo repository.TransactionRepository
}

func NewTransactionUsecase(log *logrus.Logger, txRepo repository.TransactionRepository) TransactionUsecase {
	return &transactionUsecase{
		log:    log,
		txRepo: txRepo,
	}
}

func (u *transactionUsecase) GetTransactionsByUser(ctx context.Context, userID string) ([]dto.TransactionResponse, error) {
	txs, err := u.txRepo.FindByUserID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find transactions for user %s: %+v", userID, err)
		return nil, err
	}

	return converter.TransactionsToResponses(txs), nil
}

func (u *transactionUsecase) GetTransaction(ctx context.Context, id string) (*dto.TransactionResponse, error) {
	tx, err := u.txRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find transaction %s: %+v", id, err)
		return nil, err
	}
	if tx == nil {
		return nil, ErrTransactionNotFound
	}

	return converter.TransactionToResponse(tx), nil
}
