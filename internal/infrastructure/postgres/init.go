package postgres

import (
	"log"

	"github.com/kelvinjuma/airtime-recharge-service/internal/config"
	"github.com/kelvinjuma/airtime-recharge-service/internal/infrastructure/logger"
	"github.com/kelvinjuma/airtime-recharge-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.RechargeConfig) *gorm.DB {
	dsn := cfg.RechargeDB.Dsn
	// TranslateError turns unique-key violations into gorm.ErrDuplicatedKey,
	// which the recharge repo maps to ErrDuplicateTransaction.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.RechargeModel{},
		&models.UserModel{},
		&logger.RechargeCreatedEvent{},
		&logger.RechargeFailedEvent{},
	)

	return db
}
