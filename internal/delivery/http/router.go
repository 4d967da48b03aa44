package http

import (
	"net/http"

	"maternity-dashboard/internal/delivery/http/handler"
	"maternity-dashboard/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	dashboardHandler   *handler.DashboardHandler
	claimHandler       *handler.ClaimHandler
	transactionHandler *handler.TransactionHandler
	uploadHandler      *handler.UploadHandler
	loggingMiddleware  *middleware.LoggingMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	dashboardHandler *handler.DashboardHandler,
	claimHandler *handler.ClaimHandler,
	transactionHandler *handler.TransactionHandler,
	uploadHandler *handler.UploadHandler,
	loggingMiddleware *middleware.LoggingMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		dashboardHandler:   dashboardHandler,
		claimHandler:       claimHandler,
		transactionHandler: transactionHandler,
		uploadHandler:      uploadHandler,
		loggingMiddleware:  loggingMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Dashboard
	api.HandleFunc("/dashboard/{userId}", r.dashboardHandler.GetDashboard).Methods(http.MethodGet)

	// Claims
	api.HandleFunc("/claims", r.claimHandler.CreateClaim).Methods(http.MethodPost)
	api.HandleFunc("/claims/detail/{id}", r.claimHandler.GetClaim).Methods(http.MethodGet)
	api.HandleFunc("/claims/{userId}", r.claimHandler.GetClaimsByUser).Methods(http.MethodGet)
	api.HandleFunc("/claims/{id}", r.claimHandler.UpdateClaimStatus).Methods(http.MethodPatch)

	// Smart contract transactions
	api.HandleFunc("/smart-contracts/tx/{id}", r.transactionHandler.GetTransaction).Methods(http.MethodGet)
	api.HandleFunc("/smart-contracts/{userId}", r.transactionHandler.GetTransactionsByUser).Methods(http.MethodGet)

	// Document upload
	api.HandleFunc("/upload", r.uploadHandler.Upload).Methods(http.MethodPost)

	// CORS preflight
	r.router.Methods(http.MethodOptions).HandlerFunc(r.preflight)

	// Middleware order: request id and logging outermost, then panic recovery
	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.loggingMiddleware.Recover)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) preflight(w http.ResponseWriter, req *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
