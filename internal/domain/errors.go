package domain

import "errors"

var (
	// ErrInvalidAmount is returned when an amount is zero, negative or not a number
	ErrInvalidAmount = errors.New("amount must be a positive number")

	// ErrInsufficientFunds is returned when a withdrawal or transfer exceeds the balance
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrEmptyHolderName is returned when an account is opened without a holder name
	ErrEmptyHolderName = errors.New("account holder name is required")

	// ErrMissingDeposit is returned when an account is opened without an initial deposit
	ErrMissingDeposit = errors.New("initial deposit is required")

	// ErrInvalidAccountType is returned for an account type outside Savings, Checking and Business
	ErrInvalidAccountType = errors.New("invalid account type")

	// ErrMissingRecipient is returned when a transfer has no recipient
	ErrMissingRecipient = errors.New("transfer recipient is required")

	// ErrSessionNotFound is returned when no logged-in session matches the given ID
	ErrSessionNotFound = errors.New("session not found")
)
