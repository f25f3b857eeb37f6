package domain

import "errors"

var (
	ErrInvalidInput         = errors.New("missing or malformed request fields")
	ErrInvalidFormat        = errors.New("invalid phone number format")
	ErrUpstreamAuthFailure  = errors.New("provider token exchange failed")
	ErrUpstreamError        = errors.New("provider rejected the recharge")
	ErrUpstreamUnreachable  = errors.New("provider unreachable")
	ErrLedgerWriteFailure   = errors.New("failed to record transaction")
	ErrDuplicateTransaction = errors.New("duplicate transaction id")
	ErrNotFound             = errors.New("transaction not found")
)

// RowErrorTag is the closed set of reasons a bulk row can fail with.
type RowErrorTag string

const (
	RowErrMissingReceiver     RowErrorTag = "MISSING_RECEIVER"
	RowErrInvalidAmount       RowErrorTag = "INVALID_AMOUNT"
	RowErrInvalidFormat       RowErrorTag = "INVALID_FORMAT"
	RowErrUpstreamAuth        RowErrorTag = "UPSTREAM_AUTH"
	RowErrUpstreamError       RowErrorTag = "UPSTREAM_ERROR"
	RowErrUpstreamUnreachable RowErrorTag = "UPSTREAM_UNREACHABLE"
	RowErrLedgerWrite         RowErrorTag = "LEDGER_WRITE"
)
