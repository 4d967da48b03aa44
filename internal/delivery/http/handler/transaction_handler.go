package handler

import (
	"errors"
	"net/http"

	"maternity-dashboard/internal/usecase"
	"maternity-dashboard/pkg/response"

	"github.com/gorilla/mux"
)

type TransactionHandler struct {
	transactionUsecase usecase.TransactionUsecase
}

func NewTransactionHandler(transactionUsecase usecase.TransactionUsecase) *TransactionHandler {
	return &TransactionHandler{
		transactionUsecase: transactionUsecase,
	}
}

func (h *TransactionHandler) GetTransactionsByUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	txs, err := h.transactionUsecase.GetTransactionsByUser(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to fetch smart contract transactions")
		return
	}

	response.JSON(w, http.StatusOK, txs)
}

func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	txID := mux.Vars(r)["id"]

	tx, err := h.transactionUsecase.GetTransaction(r.Context(), txID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrTransactionNotFound):
			response.NotFound(w, "Transaction not found")
		default:
			response.InternalServerError(w, "Failed to fetch smart contract transaction")
		}
		return
	}

	response.JSON(w, http.StatusOK, tx)
}
