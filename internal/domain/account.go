package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AccountType represents the kind of account chosen at login
type AccountType string

const (
	AccountTypeSavings  AccountType = "Savings"
	AccountTypeChecking AccountType = "Checking"
	AccountTypeBusiness AccountType = "Business"
)

// AccountTypes lists the selectable account types, default first
var AccountTypes = []AccountType{AccountTypeSavings, AccountTypeChecking, AccountTypeBusiness}

// ParseAccountType resolves a case-insensitive account type name.
// An empty name selects Savings.
func ParseAccountType(name string) (AccountType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return AccountTypeSavings, nil
	}
	for _, t := range AccountTypes {
		if strings.EqualFold(string(t), name) {
			return t, nil
		}
	}
	return "", ErrInvalidAccountType
}

// Valid reports whether t is one of AccountTypes
func (t AccountType) Valid() bool {
	for _, known := range AccountTypes {
		if t == known {
			return true
		}
	}
	return false
}

// AccountSummary is a read-only snapshot of an account for display
type AccountSummary struct {
	Holder      string
	AccountType AccountType
	Balance     decimal.Decimal
}

// Account holds one account's identity, balance and transaction log.
// It is not safe for concurrent use; callers serialize access.
type Account struct {
	holder       string
	accountType  AccountType
	balance      decimal.Decimal
	transactions []TransactionRecord
	now          func() time.Time
}

// AccountOption configures an Account at open time
type AccountOption func(*Account)

// WithClock overrides the time source used to stamp transaction records
func WithClock(now func() time.Time) AccountOption {
	return func(a *Account) {
		if now != nil {
			a.now = now
		}
	}
}

// OpenAccount creates an account with the given identity and initial balance
// and an empty transaction log
func OpenAccount(holder string, initialBalance decimal.Decimal, accountType AccountType, opts ...AccountOption) (*Account, error) {
	if strings.TrimSpace(holder) == "" {
		return nil, ErrEmptyHolderName
	}
	if initialBalance.IsNegative() {
		return nil, ErrInvalidAmount
	}
	if !accountType.Valid() {
		return nil, ErrInvalidAccountType
	}

	a := &Account{
		holder:      holder,
		accountType: accountType,
		balance:     initialBalance,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Holder returns the account holder's display name
func (a *Account) Holder() string { return a.holder }

// Type returns the account type
func (a *Account) Type() AccountType { return a.accountType }

// Balance returns the current balance
func (a *Account) Balance() decimal.Decimal { return a.balance }

// Deposit adds amount to the balance and records a Deposit
func (a *Account) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	a.balance = a.balance.Add(amount)
	a.transactions = append(a.transactions, newRecord(TransactionKindDeposit, amount, a.now(), ""))
	return nil
}

// Withdraw removes amount from the balance and records a Withdrawal
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if err := a.checkDebit(amount); err != nil {
		return err
	}

	a.balance = a.balance.Sub(amount)
	a.transactions = append(a.transactions, newRecord(TransactionKindWithdrawal, amount, a.now(), ""))
	return nil
}

// Transfer removes amount from the balance and records a Transfer Sent followed by a
// Transfer Received sharing one timestamp. The recipient is a display label only:
// no other account is credited.
func (a *Account) Transfer(amount decimal.Decimal, recipient string) error {
	if err := a.checkDebit(amount); err != nil {
		return err
	}

	a.balance = a.balance.Sub(amount)
	at := a.now()
	a.transactions = append(a.transactions,
		newRecord(TransactionKindTransferSent, amount, at, recipient),
		newRecord(TransactionKindTransferReceived, amount, at, recipient),
	)
	return nil
}

// checkDebit validates an amount leaving the account
func (a *Account) checkDebit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(a.balance) {
		return ErrInsufficientFunds
	}
	return nil
}

// Summary returns the holder, type and balance
func (a *Account) Summary() AccountSummary {
	return AccountSummary{
		Holder:      a.holder,
		AccountType: a.accountType,
		Balance:     a.balance,
	}
}

// History returns a copy of the transaction log in chronological order
func (a *Account) History() []TransactionRecord {
	out := make([]TransactionRecord, len(a.transactions))
	copy(out, a.transactions)
	return out
}

// Recent returns a copy of the last n records in chronological order.
// n <= 0 returns the whole log.
func (a *Account) Recent(n int) []TransactionRecord {
	if n <= 0 || n >= len(a.transactions) {
		return a.History()
	}
	out := make([]TransactionRecord, n)
	copy(out, a.transactions[len(a.transactions)-n:])
	return out
}

// Len returns the number of records in the log
func (a *Account) Len() int { return len(a.transactions) }
