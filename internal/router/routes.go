package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/mirgames/donate-api/internal/config"
	"github.com/mirgames/donate-api/internal/handlers"
	"github.com/mirgames/donate-api/internal/middleware"
	"github.com/mirgames/donate-api/internal/reward"
	"github.com/mirgames/donate-api/internal/storage"
	"github.com/mirgames/donate-api/internal/usecase"
	"github.com/rs/zerolog"
)

const (
	DonationPrefix = "/api/donation"
	ConsumerPrefix = "/api/consumer"
	OrderPath      = "/order"
	ConfirmPath    = "/confirm"
	PendingPath    = "/pending"
	SettlePath     = "/settle"
	AccountPath    = "/api/account/{id}"
	PingPath       = "/ping"
)

func SetupRoutes(cfg *config.Config, store *storage.Storage, gw usecase.GatewayClient, logger zerolog.Logger) (*chi.Mux, error) {
	calc, err := reward.NewCalculator(cfg.CoinRate, cfg.MoneyRate)
	if err != nil {
		return nil, err
	}

	intentUC := usecase.NewIntentUseCase(store, gw, calc)
	ledgerUC := usecase.NewLedgerUseCase(store, gw, calc)
	queue := usecase.NewSettlementQueue(store)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	r.Get(PingPath, handlers.NewPingHandler(store).ServeHTTP)
	r.Get(AccountPath, handlers.NewAccountHandler(store).ServeHTTP)
	r.Post(DonationPrefix+OrderPath, handlers.NewOrderHandler(intentUC).ServeHTTP)
	r.Post(DonationPrefix+ConfirmPath, handlers.NewConfirmHandler(ledgerUC).ServeHTTP)

	r.Group(func(r chi.Router) {
		r.Use(middleware.ConsumerAuth(cfg.ConsumerToken))
		r.Get(ConsumerPrefix+PendingPath, handlers.NewPendingHandler(queue).ServeHTTP)
		r.Post(ConsumerPrefix+SettlePath, handlers.NewSettleHandler(queue).ServeHTTP)
	})

	return r, nil
}
