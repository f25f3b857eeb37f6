package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kelvinjuma/airtime-recharge-service/internal/domain"
	"github.com/kelvinjuma/airtime-recharge-service/internal/infrastructure/kafka"
	"github.com/kelvinjuma/airtime-recharge-service/internal/infrastructure/logger"
	"github.com/kelvinjuma/airtime-recharge-service/internal/msisdn"
	rechargedto "github.com/kelvinjuma/airtime-recharge-service/internal/usecase/dto/recharge"
)

// SubmitRecharge runs one submission end to end: validate, normalize,
// authenticate against the provider, submit, record the outcome. The
// transaction id is generated before the first upstream call and never
// regenerated.
func (uc *DefaultRechargeUsecase) SubmitRecharge(ctx context.Context, input *rechargedto.SubmitRechargeInput) (*rechargedto.SubmitRechargeOutput, error) {
	// Validating
	if input.ReceiverMsisdn == "" {
		return nil, fmt.Errorf("receiverMsisdn is required: %w", domain.ErrInvalidInput)
	}
	if input.Amount <= 0 {
		return nil, fmt.Errorf("amount must be positive: %w", domain.ErrInvalidInput)
	}
	if input.ServicePin == "" {
		return nil, fmt.Errorf("servicePin is required: %w", domain.ErrInvalidInput)
	}
	if input.Caller.Phone == "" {
		return nil, fmt.Errorf("sender phone number not found in session: %w", domain.ErrInvalidInput)
	}

	// Normalizing. Both numbers are validated against the raw input.
	if !msisdn.IsValid(input.ReceiverMsisdn) {
		return nil, fmt.Errorf("invalid receiver phone number: %w", domain.ErrInvalidFormat)
	}
	if !msisdn.IsValid(input.Caller.Phone) {
		return nil, fmt.Errorf("invalid sender phone number: %w", domain.ErrInvalidFormat)
	}
	receiverMsisdn, err := msisdn.Normalize(input.ReceiverMsisdn)
	if err != nil {
		return nil, err
	}
	senderMsisdn, err := msisdn.Normalize(input.Caller.Phone)
	if err != nil {
		return nil, err
	}

	transactionID := uc.TxidGen.Next()

	// Authenticating
	authStart := time.Now()
	token, err := uc.Provisioning.Authenticate()
	uc.Metrics.RecordProviderDuration("token", time.Since(authStart).Seconds())
	if err != nil {
		uc.recordFailure(ctx, transactionID, input, receiverMsisdn, "provider auth failed", err)
		return nil, err
	}

	// Submitting
	submitStart := time.Now()
	result, err := uc.Provisioning.Submit(senderMsisdn, receiverMsisdn, input.Amount, input.ServicePin, token)
	uc.Metrics.RecordProviderDuration("recharge", time.Since(submitStart).Seconds())
	if err != nil {
		if errors.Is(err, domain.ErrUpstreamUnreachable) {
			// The outcome upstream is unknown and no record is written;
			// the ledger gap must stay visible for reconciliation.
			slog.Error("provider unreachable, recharge outcome unknown",
				"transaction_id", transactionID,
				"receiver", receiverMsisdn,
				"amount", input.Amount,
			)
		}
		uc.recordFailure(ctx, transactionID, input, receiverMsisdn, "provider submit failed", err)
		return nil, err
	}

	// Recording
	recharge := &domain.Recharge{
		TransactionID:  transactionID,
		SenderMsisdn:   senderMsisdn,
		ReceiverMsisdn: receiverMsisdn,
		Amount:         input.Amount,
		Status:         domain.RechargeStatus(result.ResponseStatus),
		OwnerID:        input.Caller.ID,
		Provider:       uc.ProviderName,
	}
	if err := uc.RechargeRepo.CreateRecharge(recharge); err != nil {
		if errors.Is(err, domain.ErrDuplicateTransaction) {
			uc.Metrics.RecordError("duplicate_transaction")
			return nil, err
		}
		// The provider already accepted the recharge; a ledger failure here
		// is a divergence between upstream state and our records.
		slog.Error("ledger write failed after provider accepted recharge",
			"transaction_id", transactionID,
			"provider_trans_id", result.TransID,
			"provider_status", result.ResponseStatus,
			"error", err.Error(),
		)
		uc.recordFailure(ctx, transactionID, input, receiverMsisdn, "ledger write failed after upstream success", err)
		return nil, err
	}

	uc.Metrics.RecordSubmission(uc.ProviderName, result.ResponseStatus, input.Amount)
	uc.logCreated(ctx, recharge)
	uc.publishEvent(recharge, "submission")

	// Completed
	return &rechargedto.SubmitRechargeOutput{
		Success:        true,
		ResponseID:     result.ResponseID,
		ResponseStatus: result.ResponseStatus,
		TransactionID:  transactionID,
		ResponseDesc:   result.ResponseDesc,
	}, nil
}

func (uc *DefaultRechargeUsecase) recordFailure(ctx context.Context, transactionID string, input *rechargedto.SubmitRechargeInput, receiverMsisdn, reason string, cause error) {
	uc.Metrics.RecordError(errorType(cause))
	if err := uc.EventLogger.LogRechargeFailed(ctx, logger.RechargeFailedEvent{
		TransactionID:  transactionID,
		OwnerID:        input.Caller.ID,
		ReceiverMsisdn: receiverMsisdn,
		Amount:         input.Amount,
		Reason:         reason,
		Detail:         cause.Error(),
		Timestamp:      time.Now(),
	}); err != nil {
		slog.Error("failed to log recharge failure event", "transaction_id", transactionID, "error", err.Error())
	}
}

func (uc *DefaultRechargeUsecase) logCreated(ctx context.Context, recharge *domain.Recharge) {
	if err := uc.EventLogger.LogRechargeCreated(ctx, logger.RechargeCreatedEvent{
		TransactionID:  recharge.TransactionID,
		OwnerID:        recharge.OwnerID,
		SenderMsisdn:   recharge.SenderMsisdn,
		ReceiverMsisdn: recharge.ReceiverMsisdn,
		Amount:         recharge.Amount,
		Status:         string(recharge.Status),
		Provider:       recharge.Provider,
		Timestamp:      time.Now(),
	}); err != nil {
		slog.Error("failed to log recharge created event", "transaction_id", recharge.TransactionID, "error", err.Error())
	}
}

func (uc *DefaultRechargeUsecase) publishEvent(recharge *domain.Recharge, source string) {
	err := uc.Publisher.PublishRecharge(kafka.RechargeEvent{
		TransactionID:  recharge.TransactionID,
		OwnerID:        recharge.OwnerID,
		SenderMsisdn:   recharge.SenderMsisdn,
		ReceiverMsisdn: recharge.ReceiverMsisdn,
		Amount:         recharge.Amount,
		Status:         string(recharge.Status),
		Provider:       recharge.Provider,
		Source:         source,
	})
	if err != nil {
		slog.Error("failed to publish recharge event", "transaction_id", recharge.TransactionID, "error", err.Error())
	}
}

func errorType(err error) string {
	switch {
	case errors.Is(err, domain.ErrUpstreamAuthFailure):
		return "upstream_auth"
	case errors.Is(err, domain.ErrUpstreamUnreachable):
		return "upstream_unreachable"
	case errors.Is(err, domain.ErrUpstreamError):
		return "upstream_error"
	case errors.Is(err, domain.ErrLedgerWriteFailure):
		return "ledger_write"
	case errors.Is(err, domain.ErrDuplicateTransaction):
		return "duplicate_transaction"
	default:
		return "internal"
	}
}
