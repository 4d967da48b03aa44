package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"maternity-dashboard/internal/delivery/dto"
	"maternity-dashboard/internal/usecase"
	"maternity-dashboard/pkg/response"

	"github.com/gorilla/mux"
)

type ClaimHandler struct {
	claimUsecase usecase.ClaimUsecase
}

func NewClaimHandler(claimUsecase usecase.ClaimUsecase) *ClaimHandler {
	return &ClaimHandler{
		claimUsecase: claimUsecase,
	}
}

func (h *ClaimHandler) GetClaimsByUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	claims, err := h.claimUsecase.GetClaimsByUser(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to fetch claims")
		return
	}

	response.JSON(w, http.StatusOK, claims)
}

func (h *ClaimHandler) GetClaim(w http.ResponseWriter, r *http.Request) {
	claimID := mux.Vars(r)["id"]

	claim, err := h.claimUsecase.GetClaim(r.Context(), claimID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrClaimNotFound):
			response.NotFound(w, "Claim not found")
		default:
			response.InternalServerError(w, "Failed to fetch claim")
		}
		return
	}

	response.JSON(w, http.StatusOK, claim)
}

func (h *ClaimHandler) CreateClaim(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDecodeError(w, err, "Invalid claim data")
		return
	}

	claim, err := h.claimUsecase.SubmitClaim(r.Context(), &req)
	if err != nil {
		var validationErr *usecase.ValidationError
		switch {
		case errors.As(err, &validationErr):
			response.ValidationError(w, validationErr.Fields)
		default:
			response.InternalServerError(w, "Failed to create claim")
		}
		return
	}

	response.JSON(w, http.StatusCreated, claim)
}

func (h *ClaimHandler) UpdateClaimStatus(w http.ResponseWriter, r *http.Request) {
	claimID := mux.Vars(r)["id"]

	var req dto.UpdateClaimStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDecodeError(w, err, "Invalid status data")
		return
	}

	claim, err := h.claimUsecase.UpdateClaimStatus(r.Context(), claimID, &req)
	if err != nil {
		var validationErr *usecase.ValidationError
		switch {
		case errors.As(err, &validationErr):
			response.ValidationError(w, validationErr.Fields)
		case errors.Is(err, usecase.ErrClaimNotFound):
			response.NotFound(w, "Claim not found")
		default:
			response.InternalServerError(w, "Failed to update claim")
		}
		return
	}

	response.JSON(w, http.StatusOK, claim)
}

// writeDecodeError reports a wrongly typed field as a field-level validation
// error. Anything else, such as malformed JSON, gets a plain 400.
func writeDecodeError(w http.ResponseWriter, err error, message string) {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		response.ValidationError(w, map[string]string{
			typeErr.Field: typeErr.Field + " must be a " + typeErr.Type.String(),
		})
		return
	}
	response.BadRequest(w, message)
}
