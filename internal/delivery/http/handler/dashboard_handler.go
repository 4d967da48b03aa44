package handler

import (
	"errors"
	"net/http"

	"maternity-dashboard/internal/usecase"
	"maternity-dashboard/pkg/response"

	"github.com/gorilla/mux"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
	}
}

func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	dashboard, err := h.dashboardUsecase.GetDashboard(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to fetch dashboard data")
		}
		return
	}

	response.JSON(w, http.StatusOK, dashboard)
}
