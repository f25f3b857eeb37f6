package usecase

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/kelvinjuma/airtime-recharge-service/internal/domain"
	rechargedto "github.com/kelvinjuma/airtime-recharge-service/internal/usecase/dto/recharge"
)

type bulkRow struct {
	raw      []string
	receiver string
	amount   string
}

// SubmitBulk processes a headerless two-column CSV of (receiverMsisdn,
// amount) rows sharing one service pin and sender identity. Rows run through
// a bounded worker pool; a failing row never aborts the batch, and every
// input row yields exactly one outcome in Results or Errors.
func (uc *DefaultRechargeUsecase) SubmitBulk(ctx context.Context, csvInput io.Reader, servicePin string, caller domain.AuthUser) (*rechargedto.BulkOutput, error) {
	if servicePin == "" {
		return nil, fmt.Errorf("servicePin is required: %w", domain.ErrInvalidInput)
	}
	if caller.Phone == "" {
		return nil, fmt.Errorf("sender phone number not found in session: %w", domain.ErrInvalidInput)
	}

	reader := csv.NewReader(csvInput)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows []bulkRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed CSV input: %w", domain.ErrInvalidInput)
		}
		row := bulkRow{raw: record}
		if len(record) > 0 {
			row.receiver = strings.TrimSpace(record[0])
		}
		if len(record) > 1 {
			row.amount = strings.TrimSpace(record[1])
		}
		rows = append(rows, row)
	}

	output := &rechargedto.BulkOutput{
		Results: make([]rechargedto.SubmitRechargeOutput, 0, len(rows)),
		Errors:  make([]rechargedto.BulkRowError, 0),
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	jobs := make(chan bulkRow)

	workers := uc.BulkWorkers
	if workers > len(rows) && len(rows) > 0 {
		workers = len(rows)
	}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for row := range jobs {
				result, rowErr := uc.processBulkRow(ctx, row, servicePin, caller)
				mu.Lock()
				if rowErr != nil {
					output.Errors = append(output.Errors, *rowErr)
					uc.Metrics.RecordBulkRow("failed")
				} else {
					output.Results = append(output.Results, *result)
					uc.Metrics.RecordBulkRow("ok")
				}
				mu.Unlock()
			}
		}()
	}

	for _, row := range rows {
		jobs <- row
	}
	close(jobs)
	wg.Wait()

	output.SuccessfulCount = len(output.Results)
	output.FailedCount = len(output.Errors)
	output.TotalProcessed = output.SuccessfulCount + output.FailedCount

	return output, nil
}

func (uc *DefaultRechargeUsecase) processBulkRow(ctx context.Context, row bulkRow, servicePin string, caller domain.AuthUser) (*rechargedto.SubmitRechargeOutput, *rechargedto.BulkRowError) {
	if row.receiver == "" {
		return nil, &rechargedto.BulkRowError{
			Row:    row.raw,
			Tag:    domain.RowErrMissingReceiver,
			Detail: "receiver phone number is missing",
		}
	}

	amount, err := strconv.ParseFloat(row.amount, 64)
	if err != nil || amount <= 0 {
		return nil, &rechargedto.BulkRowError{
			Row:    row.raw,
			Tag:    domain.RowErrInvalidAmount,
			Detail: fmt.Sprintf("amount %q is not a positive number", row.amount),
		}
	}

	result, err := uc.SubmitRecharge(ctx, &rechargedto.SubmitRechargeInput{
		Caller:         caller,
		ReceiverMsisdn: row.receiver,
		Amount:         amount,
		ServicePin:     servicePin,
	})
	if err != nil {
		return nil, &rechargedto.BulkRowError{
			Row:    row.raw,
			Tag:    rowErrorTag(err),
			Detail: err.Error(),
		}
	}

	return result, nil
}

func rowErrorTag(err error) domain.RowErrorTag {
	switch {
	case errors.Is(err, domain.ErrInvalidFormat):
		return domain.RowErrInvalidFormat
	case errors.Is(err, domain.ErrUpstreamAuthFailure):
		return domain.RowErrUpstreamAuth
	case errors.Is(err, domain.ErrUpstreamUnreachable):
		return domain.RowErrUpstreamUnreachable
	case errors.Is(err, domain.ErrUpstreamError):
		return domain.RowErrUpstreamError
	case errors.Is(err, domain.ErrLedgerWriteFailure), errors.Is(err, domain.ErrDuplicateTransaction):
		return domain.RowErrLedgerWrite
	default:
		return domain.RowErrUpstreamError
	}
}
