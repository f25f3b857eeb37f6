package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelvinjuma/airtime-recharge-service/internal/domain"
	"github.com/kelvinjuma/airtime-recharge-service/internal/msisdn"
	rechargedto "github.com/kelvinjuma/airtime-recharge-service/internal/usecase/dto/recharge"
)

const callbackSuccessStatus = "200"

// HandleValidateCallback is the provider's pre-delivery sanity check. It
// never touches the ledger; it validates shape and echoes the payload back.
func (uc *DefaultRechargeUsecase) HandleValidateCallback(input *rechargedto.ValidateCallbackInput) (*rechargedto.ValidateCallbackOutput, error) {
	if input.TransactionID == "" || input.PhoneNumber == "" || input.CurrencyCode == "" {
		uc.Metrics.RecordCallback("validate", "invalid")
		return nil, fmt.Errorf("transactionId, phoneNumber and currencyCode are required: %w", domain.ErrInvalidInput)
	}
	if input.Amount <= 0 {
		uc.Metrics.RecordCallback("validate", "invalid")
		return nil, fmt.Errorf("amount must be positive: %w", domain.ErrInvalidInput)
	}
	if !msisdn.IsValid(input.PhoneNumber) {
		uc.Metrics.RecordCallback("validate", "invalid")
		return nil, fmt.Errorf("invalid phone number: %w", domain.ErrInvalidFormat)
	}

	uc.Metrics.RecordCallback("validate", "ok")
	return &rechargedto.ValidateCallbackOutput{
		Success:       true,
		TransactionID: input.TransactionID,
		PhoneNumber:   input.PhoneNumber,
		Amount:        input.Amount,
		CurrencyCode:  input.CurrencyCode,
	}, nil
}

// HandleStatusCallback reconciles an asynchronous delivery report against
// the ledger. Unknown transaction ids are acknowledged without creating a
// record; terminal records are never overwritten, so duplicate or late
// callbacks are idempotent.
func (uc *DefaultRechargeUsecase) HandleStatusCallback(ctx context.Context, input *rechargedto.StatusCallbackInput) (*rechargedto.StatusCallbackOutput, error) {
	if input.TransactionID == "" || input.PhoneNumber == "" || input.Status == "" {
		uc.Metrics.RecordCallback("status", "invalid")
		return nil, fmt.Errorf("transactionId, phoneNumber and status are required: %w", domain.ErrInvalidInput)
	}
	if !msisdn.IsValid(input.PhoneNumber) {
		uc.Metrics.RecordCallback("status", "invalid")
		return nil, fmt.Errorf("invalid phone number: %w", domain.ErrInvalidFormat)
	}

	recharge, err := uc.RechargeRepo.GetRechargeByTransactionID(input.TransactionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Never fabricate a record from a callback. The provider still
			// expects a 2xx, so this is an anomaly, not a failure.
			slog.Warn("status callback for unknown transaction",
				"transaction_id", input.TransactionID,
				"status", input.Status,
			)
			uc.Metrics.RecordCallback("status", "unknown_transaction")
			return &rechargedto.StatusCallbackOutput{
				Success:       true,
				TransactionID: input.TransactionID,
			}, nil
		}
		return nil, err
	}

	newStatus := domain.StatusFailed
	errorMessage := input.ErrorMessage
	if strings.TrimSpace(input.Status) == callbackSuccessStatus {
		newStatus = domain.StatusSuccess
		errorMessage = ""
	} else if errorMessage == "" {
		errorMessage = fmt.Sprintf("provider reported status %s", input.Status)
	}

	if recharge.Status.IsTerminal() {
		if recharge.Status != newStatus {
			slog.Warn("status callback would overwrite terminal status, ignoring",
				"transaction_id", input.TransactionID,
				"current_status", string(recharge.Status),
				"reported_status", input.Status,
			)
		}
		uc.Metrics.RecordCallback("status", "noop")
		return &rechargedto.StatusCallbackOutput{
			Success:       true,
			TransactionID: input.TransactionID,
		}, nil
	}

	if err := uc.RechargeRepo.UpdateRechargeStatus(input.TransactionID, newStatus, errorMessage); err != nil {
		return nil, err
	}

	recharge.Status = newStatus
	recharge.ErrorMessage = errorMessage
	uc.Metrics.RecordCallback("status", "reconciled")
	uc.publishEvent(recharge, "callback")

	return &rechargedto.StatusCallbackOutput{
		Success:       true,
		TransactionID: input.TransactionID,
	}, nil
}
