package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelvinjuma/airtime-recharge-service/internal/auth"
	"github.com/kelvinjuma/airtime-recharge-service/internal/client"
	"github.com/kelvinjuma/airtime-recharge-service/internal/config"
	httpapi "github.com/kelvinjuma/airtime-recharge-service/internal/delivery/http"
	"github.com/kelvinjuma/airtime-recharge-service/internal/delivery/http/handlers"
	"github.com/kelvinjuma/airtime-recharge-service/internal/infrastructure/kafka"
	"github.com/kelvinjuma/airtime-recharge-service/internal/infrastructure/logger"
	"github.com/kelvinjuma/airtime-recharge-service/internal/infrastructure/metrics"
	"github.com/kelvinjuma/airtime-recharge-service/internal/infrastructure/migrate"
	"github.com/kelvinjuma/airtime-recharge-service/internal/infrastructure/postgres"
	"github.com/kelvinjuma/airtime-recharge-service/internal/infrastructure/postgres/repository"
	"github.com/kelvinjuma/airtime-recharge-service/internal/txid"
	"github.com/kelvinjuma/airtime-recharge-service/internal/usecase"
	rechargeuc "github.com/kelvinjuma/airtime-recharge-service/internal/usecase/recharge"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)

	if migrationPath := os.Getenv("RECHARGE_MIGRATIONS_PATH"); migrationPath != "" {
		if err := migrate.RunMigrations(db, migrationPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	pub := kafka.NewDefaultKafkaPublisher(brokers, cfg.KafkaService.Topic)

	// Init repositories
	rechargeRepo := repository.NewDefaultRechargeRepository(db)
	userRepo := repository.NewDefaultUserRepository(db)

	// Init provider client
	airtimeClient := client.NewAirtimeClient(&cfg.AirtimeProvider)

	// Init transaction id generator
	txidGen, err := txid.NewGenerator()
	if err != nil {
		log.Fatalf("failed to init txid generator: %v", err)
	}

	rechargeMetrics := metrics.NewRechargeMetrics()
	eventLogger := logger.NewPGRechargeEventLogger(db)

	// Init usecases
	rechargeUsecase := rechargeuc.NewDefaultRechargeUsecase(
		rechargeRepo,
		airtimeClient,
		txidGen,
		pub,
		eventLogger,
		rechargeMetrics,
		cfg.AirtimeProvider.Name,
		cfg.Bulk.Workers,
	)
	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL)
	userUsecase := usecase.NewDefaultUserUsecase(userRepo, tokens)

	// Init handlers and router
	authHandler := handlers.NewAuthHandler(userUsecase)
	rechargeHandler := handlers.NewRechargeHandler(rechargeUsecase)
	callbackHandler := handlers.NewCallbackHandler(rechargeUsecase)
	router := httpapi.NewRouter(authHandler, rechargeHandler, callbackHandler, tokens, userRepo)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("recharge service listening on %s\n", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
