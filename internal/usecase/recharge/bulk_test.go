package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kelvinjuma/airtime-recharge-service/internal/domain"
)

var bulkCaller = domain.AuthUser{ID: "owner-1", Phone: "0799999999"}

func TestSubmitBulk_MixedBatch(t *testing.T) {
	env := newTestEnv()
	csvInput := strings.NewReader(strings.Join([]string{
		"0712345678,100",
		",50",              // missing receiver
		"0722000000,abc",   // non-numeric amount
		"0733000000,-10",   // negative amount
		"254512345678,100", // invalid subscriber prefix
		"0744000000,250",
	}, "\n"))

	output, err := env.uc.SubmitBulk(context.Background(), csvInput, "1234", bulkCaller)
	if err != nil {
		t.Fatalf("SubmitBulk failed: %v", err)
	}

	if output.TotalProcessed != 6 {
		t.Errorf("totalProcessed = %d, want 6", output.TotalProcessed)
	}
	if output.SuccessfulCount != 2 || output.FailedCount != 4 {
		t.Errorf("counts = %d/%d, want 2/4", output.SuccessfulCount, output.FailedCount)
	}
	if output.SuccessfulCount+output.FailedCount != output.TotalProcessed {
		t.Error("counting invariant violated")
	}
	if len(output.Results) != 2 || len(output.Errors) != 4 {
		t.Fatalf("results/errors = %d/%d, want 2/4", len(output.Results), len(output.Errors))
	}

	tags := make(map[domain.RowErrorTag]int)
	for _, rowErr := range output.Errors {
		tags[rowErr.Tag]++
	}
	if tags[domain.RowErrMissingReceiver] != 1 {
		t.Errorf("expected one MISSING_RECEIVER, got %d", tags[domain.RowErrMissingReceiver])
	}
	if tags[domain.RowErrInvalidAmount] != 2 {
		t.Errorf("expected two INVALID_AMOUNT, got %d", tags[domain.RowErrInvalidAmount])
	}
	if tags[domain.RowErrInvalidFormat] != 1 {
		t.Errorf("expected one INVALID_FORMAT, got %d", tags[domain.RowErrInvalidFormat])
	}

	if env.repo.count() != 2 {
		t.Errorf("ledger records = %d, want 2", env.repo.count())
	}
	// The baseline re-authenticates per row.
	if env.provider.authCalls != 2 {
		t.Errorf("auth calls = %d, want 2", env.provider.authCalls)
	}
}

func TestSubmitBulk_EmptyBatch(t *testing.T) {
	env := newTestEnv()

	output, err := env.uc.SubmitBulk(context.Background(), strings.NewReader(""), "1234", bulkCaller)
	if err != nil {
		t.Fatalf("SubmitBulk failed: %v", err)
	}

	if output.TotalProcessed != 0 || output.SuccessfulCount != 0 || output.FailedCount != 0 {
		t.Errorf("empty batch produced non-zero counts: %+v", output)
	}
	if len(output.Results) != 0 || len(output.Errors) != 0 {
		t.Error("empty batch produced outcomes")
	}
}

func TestSubmitBulk_AllFailingBatch(t *testing.T) {
	env := newTestEnv()
	env.provider.submitErr = &domain.ProviderError{Status: "500", Description: "Service down"}

	csvInput := strings.NewReader("0712345678,100\n0722000000,200\n0733000000,300")
	output, err := env.uc.SubmitBulk(context.Background(), csvInput, "1234", bulkCaller)
	if err != nil {
		t.Fatalf("SubmitBulk failed: %v", err)
	}

	if output.TotalProcessed != 3 || output.FailedCount != 3 || output.SuccessfulCount != 0 {
		t.Errorf("counts = %+v, want 3 failures", output)
	}
	for _, rowErr := range output.Errors {
		if rowErr.Tag != domain.RowErrUpstreamError {
			t.Errorf("tag = %q, want UPSTREAM_ERROR", rowErr.Tag)
		}
	}
	if env.repo.count() != 0 {
		t.Error("failing rows must not be recorded")
	}
}

func TestSubmitBulk_SharedInputValidation(t *testing.T) {
	env := newTestEnv()

	if _, err := env.uc.SubmitBulk(context.Background(), strings.NewReader("0712345678,100"), "", bulkCaller); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("missing pin: error = %v, want ErrInvalidInput", err)
	}

	noPhone := domain.AuthUser{ID: "owner-1"}
	if _, err := env.uc.SubmitBulk(context.Background(), strings.NewReader("0712345678,100"), "1234", noPhone); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("missing sender phone: error = %v, want ErrInvalidInput", err)
	}
}
