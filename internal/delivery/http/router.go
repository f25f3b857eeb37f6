package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/kelvinjuma/airtime-recharge-service/internal/auth"
	"github.com/kelvinjuma/airtime-recharge-service/internal/delivery/http/handlers"
	"github.com/kelvinjuma/airtime-recharge-service/internal/delivery/http/middleware"
	"github.com/kelvinjuma/airtime-recharge-service/internal/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter assembles the REST surface. Callback routes stay public: the
// provider calls them without our bearer tokens.
func NewRouter(
	authHandler *handlers.AuthHandler,
	rechargeHandler *handlers.RechargeHandler,
	callbackHandler *handlers.CallbackHandler,
	tokens *auth.TokenManager,
	users domain.UserRepository,
) http.Handler {

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})

	router.Route("/api/recharge", func(r chi.Router) {
		r.Post("/callback/validate", callbackHandler.Validate)
		r.Post("/callback/status", callbackHandler.Status)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(tokens, users))
			r.Post("/", rechargeHandler.Submit)
			r.Post("/bulk", rechargeHandler.Bulk)
			r.Get("/transactions", rechargeHandler.Transactions)
			r.Get("/statistics", rechargeHandler.Statistics)
		})
	})

	return router
}
