package usecase

import (
	"context"
	"io"

	"github.com/kelvinjuma/airtime-recharge-service/internal/domain"
	"github.com/kelvinjuma/airtime-recharge-service/internal/infrastructure/kafka"
	"github.com/kelvinjuma/airtime-recharge-service/internal/infrastructure/logger"
	"github.com/kelvinjuma/airtime-recharge-service/internal/infrastructure/metrics"
	"github.com/kelvinjuma/airtime-recharge-service/internal/txid"
	rechargedto "github.com/kelvinjuma/airtime-recharge-service/internal/usecase/dto/recharge"
)

type RechargeUsecase interface {
	SubmitRecharge(ctx context.Context, input *rechargedto.SubmitRechargeInput) (*rechargedto.SubmitRechargeOutput, error)
	SubmitBulk(ctx context.Context, csvInput io.Reader, servicePin string, caller domain.AuthUser) (*rechargedto.BulkOutput, error)
	HandleValidateCallback(input *rechargedto.ValidateCallbackInput) (*rechargedto.ValidateCallbackOutput, error)
	HandleStatusCallback(ctx context.Context, input *rechargedto.StatusCallbackInput) (*rechargedto.StatusCallbackOutput, error)
	ListTransactions(input *rechargedto.ListTransactionsInput) (*rechargedto.ListTransactionsOutput, error)
	GetStatistics(ownerID string) (*domain.RechargeStatistics, error)
}

type EventPublisher interface {
	PublishRecharge(event kafka.RechargeEvent) error
}

type DefaultRechargeUsecase struct {
	RechargeRepo domain.RechargeRepository
	Provisioning domain.ProvisioningPort
	TxidGen      *txid.Generator
	Publisher    EventPublisher
	EventLogger  logger.RechargeEventLogger
	Metrics      *metrics.RechargeMetrics
	ProviderName string
	BulkWorkers  int
}

func NewDefaultRechargeUsecase(
	rechargeRepo domain.RechargeRepository,
	provisioning domain.ProvisioningPort,
	txidGen *txid.Generator,
	publisher EventPublisher,
	eventLogger logger.RechargeEventLogger,
	rechargeMetrics *metrics.RechargeMetrics,
	providerName string,
	bulkWorkers int) *DefaultRechargeUsecase {

	if bulkWorkers < 1 {
		bulkWorkers = 4
	}

	return &DefaultRechargeUsecase{
		RechargeRepo: rechargeRepo,
		Provisioning: provisioning,
		TxidGen:      txidGen,
		Publisher:    publisher,
		EventLogger:  eventLogger,
		Metrics:      rechargeMetrics,
		ProviderName: providerName,
		BulkWorkers:  bulkWorkers,
	}
}
