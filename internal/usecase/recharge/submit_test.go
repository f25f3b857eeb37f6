package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kelvinjuma/airtime-recharge-service/internal/domain"
	rechargedto "github.com/kelvinjuma/airtime-recharge-service/internal/usecase/dto/recharge"
)

func validInput() *rechargedto.SubmitRechargeInput {
	return &rechargedto.SubmitRechargeInput{
		Caller:         domain.AuthUser{ID: "owner-1", Phone: "0799999999"},
		ReceiverMsisdn: "0712345678",
		Amount:         100,
		ServicePin:     "1234",
	}
}

func TestSubmitRecharge_Success(t *testing.T) {
	env := newTestEnv()

	output, err := env.uc.SubmitRecharge(context.Background(), validInput())
	if err != nil {
		t.Fatalf("SubmitRecharge failed: %v", err)
	}

	if !output.Success {
		t.Error("expected success output")
	}
	if !strings.HasPrefix(output.TransactionID, "TXN") {
		t.Errorf("transaction id %q does not carry the TXN prefix", output.TransactionID)
	}
	if output.ResponseStatus != "200" || output.ResponseDesc != "Recharge successful" {
		t.Errorf("output does not echo provider result: %+v", output)
	}

	if env.provider.lastSender != "254799999999" {
		t.Errorf("sender sent to provider = %q, want %q", env.provider.lastSender, "254799999999")
	}
	if env.provider.lastRecv != "254712345678" {
		t.Errorf("receiver sent to provider = %q, want %q", env.provider.lastRecv, "254712345678")
	}
	if env.provider.lastToken != "test-token" {
		t.Errorf("provider token = %q", env.provider.lastToken)
	}

	recharge, err := env.repo.GetRechargeByTransactionID(output.TransactionID)
	if err != nil {
		t.Fatalf("ledger record missing: %v", err)
	}
	if recharge.SenderMsisdn != "254799999999" || recharge.ReceiverMsisdn != "254712345678" {
		t.Errorf("record carries unnormalized numbers: %+v", recharge)
	}
	if recharge.Status != domain.StatusSuccess {
		t.Errorf("record status = %q, want 200", recharge.Status)
	}
	if recharge.OwnerID != "owner-1" {
		t.Errorf("record owner = %q, want owner-1", recharge.OwnerID)
	}
	if recharge.Provider != "safaricom" {
		t.Errorf("record provider = %q", recharge.Provider)
	}

	if len(env.publisher.events) != 1 || env.publisher.events[0].Source != "submission" {
		t.Errorf("expected one submission event, got %+v", env.publisher.events)
	}
	if len(env.events.created) != 1 {
		t.Errorf("expected one created event log row, got %d", len(env.events.created))
	}
}

func TestSubmitRecharge_Validation(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*rechargedto.SubmitRechargeInput)
		wantErr error
	}{
		{"missing receiver", func(in *rechargedto.SubmitRechargeInput) { in.ReceiverMsisdn = "" }, domain.ErrInvalidInput},
		{"zero amount", func(in *rechargedto.SubmitRechargeInput) { in.Amount = 0 }, domain.ErrInvalidInput},
		{"negative amount", func(in *rechargedto.SubmitRechargeInput) { in.Amount = -5 }, domain.ErrInvalidInput},
		{"missing pin", func(in *rechargedto.SubmitRechargeInput) { in.ServicePin = "" }, domain.ErrInvalidInput},
		{"missing sender phone", func(in *rechargedto.SubmitRechargeInput) { in.Caller.Phone = "" }, domain.ErrInvalidInput},
		{"malformed receiver", func(in *rechargedto.SubmitRechargeInput) { in.ReceiverMsisdn = "254512345678" }, domain.ErrInvalidFormat},
		{"malformed sender", func(in *rechargedto.SubmitRechargeInput) { in.Caller.Phone = "12345" }, domain.ErrInvalidFormat},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv()
			input := validInput()
			tc.mutate(input)

			_, err := env.uc.SubmitRecharge(context.Background(), input)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("error = %v, want %v", err, tc.wantErr)
			}
			if env.provider.authCalls != 0 {
				t.Error("provider must not be called for invalid input")
			}
			if env.repo.count() != 0 {
				t.Error("no record may be written for invalid input")
			}
		})
	}
}

func TestSubmitRecharge_ProviderFailures(t *testing.T) {
	t.Run("auth failure is terminal, nothing recorded", func(t *testing.T) {
		env := newTestEnv()
		env.provider.authErr = domain.ErrUpstreamAuthFailure

		_, err := env.uc.SubmitRecharge(context.Background(), validInput())
		if !errors.Is(err, domain.ErrUpstreamAuthFailure) {
			t.Fatalf("error = %v, want ErrUpstreamAuthFailure", err)
		}
		if env.provider.submitCalls != 0 {
			t.Error("submit must not run after a failed token exchange")
		}
		if env.repo.count() != 0 {
			t.Error("no record may be written on auth failure")
		}
	})

	t.Run("provider rejection surfaces detail, nothing recorded", func(t *testing.T) {
		env := newTestEnv()
		env.provider.submitErr = &domain.ProviderError{Status: "4001", Description: "Insufficient float"}

		_, err := env.uc.SubmitRecharge(context.Background(), validInput())
		if !errors.Is(err, domain.ErrUpstreamError) {
			t.Fatalf("error = %v, want ErrUpstreamError", err)
		}
		if env.repo.count() != 0 {
			t.Error("no record may be written on provider rejection")
		}
		if len(env.events.failed) != 1 {
			t.Errorf("expected one failed event log row, got %d", len(env.events.failed))
		}
	})

	t.Run("unreachable provider leaves no record but a failed event", func(t *testing.T) {
		env := newTestEnv()
		env.provider.submitErr = domain.ErrUpstreamUnreachable

		_, err := env.uc.SubmitRecharge(context.Background(), validInput())
		if !errors.Is(err, domain.ErrUpstreamUnreachable) {
			t.Fatalf("error = %v, want ErrUpstreamUnreachable", err)
		}
		if env.repo.count() != 0 {
			t.Error("outcome is unknown, no record may be written")
		}
		if len(env.events.failed) != 1 {
			t.Errorf("expected one failed event log row, got %d", len(env.events.failed))
		}
	})
}

func TestSubmitRecharge_LedgerFailures(t *testing.T) {
	t.Run("ledger write failure is distinct from provider errors", func(t *testing.T) {
		env := newTestEnv()
		env.repo.createErr = domain.ErrLedgerWriteFailure

		_, err := env.uc.SubmitRecharge(context.Background(), validInput())
		if !errors.Is(err, domain.ErrLedgerWriteFailure) {
			t.Fatalf("error = %v, want ErrLedgerWriteFailure", err)
		}
		if errors.Is(err, domain.ErrUpstreamError) {
			t.Error("ledger failure must not be conflated with provider failure")
		}
		if len(env.events.failed) != 1 {
			t.Error("divergence must land in the failed event log")
		}
	})

	t.Run("duplicate transaction id surfaces as DuplicateTransaction", func(t *testing.T) {
		env := newTestEnv()
		env.repo.createErr = domain.ErrDuplicateTransaction

		_, err := env.uc.SubmitRecharge(context.Background(), validInput())
		if !errors.Is(err, domain.ErrDuplicateTransaction) {
			t.Fatalf("error = %v, want ErrDuplicateTransaction", err)
		}
	})
}
