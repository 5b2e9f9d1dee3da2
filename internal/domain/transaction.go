package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind represents the kind of balance-affecting event
type TransactionKind string

const (
	TransactionKindDeposit          TransactionKind = "Deposit"
	TransactionKindWithdrawal       TransactionKind = "Withdrawal"
	TransactionKindTransferSent     TransactionKind = "Transfer Sent"
	TransactionKindTransferReceived TransactionKind = "Transfer Received"
)

// TransactionStatus represents the settlement status of a record.
// Only Completed exists: records are written after the balance has changed.
type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "Completed"
)

// TransactionRecord is one immutable ledger entry
type TransactionRecord struct {
	ID           uuid.UUID
	Kind         TransactionKind
	Amount       decimal.Decimal // Always positive
	Timestamp    time.Time
	Status       TransactionStatus
	Counterparty string // Recipient label for transfers, empty otherwise
}

// IsTransfer reports whether the record is one half of a transfer
func (r TransactionRecord) IsTransfer() bool {
	return r.Kind == TransactionKindTransferSent || r.Kind == TransactionKindTransferReceived
}

func newRecord(kind TransactionKind, amount decimal.Decimal, at time.Time, counterparty string) TransactionRecord {
	return TransactionRecord{
		ID:           uuid.New(),
		Kind:         kind,
		Amount:       amount,
		Timestamp:    at,
		Status:       TransactionStatusCompleted,
		Counterparty: counterparty,
	}
}
