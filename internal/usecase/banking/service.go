package banking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/passbook-backend/internal/domain"
	"github.com/simaogato/passbook-backend/internal/usecase/dashboard"
	"go.uber.org/zap"
)

// TransferInput represents the input for a transfer
type TransferInput struct {
	SessionID uuid.UUID
	Amount    decimal.Decimal
	Recipient string
}

// ActionResult is returned after a successful mutation so the caller can refresh its views
type ActionResult struct {
	Summary domain.AccountSummary
	Records []domain.TransactionRecord // Records appended by this action
	Message string
}

// BankingService applies deposits, withdrawals and transfers to the logged-in account
type BankingService struct {
	SessionRepo domain.SessionRepository
	Logger      *zap.Logger
}

// NewBankingService creates a new BankingService instance
func NewBankingService(sessionRepo domain.SessionRepository, logger *zap.Logger) *BankingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BankingService{
		SessionRepo: sessionRepo,
		Logger:      logger,
	}
}

// Deposit adds amount to the session's account
func (s *BankingService) Deposit(ctx context.Context, sessionID uuid.UUID, amount decimal.Decimal) (*ActionResult, error) {
	return s.apply(ctx, "deposit", sessionID, amount, func(account *domain.Account) (string, error) {
		if err := account.Deposit(amount); err != nil {
			return "", err
		}
		return fmt.Sprintf("Deposited %s successfully.", dashboard.FormatPlainCurrency(amount)), nil
	})
}

// Withdraw removes amount from the session's account
func (s *BankingService) Withdraw(ctx context.Context, sessionID uuid.UUID, amount decimal.Decimal) (*ActionResult, error) {
	return s.apply(ctx, "withdraw", sessionID, amount, func(account *domain.Account) (string, error) {
		if err := account.Withdraw(amount); err != nil {
			return "", err
		}
		return fmt.Sprintf("Withdrew %s successfully.", dashboard.FormatPlainCurrency(amount)), nil
	})
}

// Transfer sends amount from the session's account to a recipient label.
// The recipient is required but is not resolved to any account.
func (s *BankingService) Transfer(ctx context.Context, input TransferInput) (*ActionResult, error) {
	recipient := strings.TrimSpace(input.Recipient)
	if recipient == "" {
		return nil, domain.ErrMissingRecipient
	}

	return s.apply(ctx, "transfer", input.SessionID, input.Amount, func(account *domain.Account) (string, error) {
		if err := account.Transfer(input.Amount, recipient); err != nil {
			return "", err
		}
		return fmt.Sprintf("Transferred %s to %s.", dashboard.FormatPlainCurrency(input.Amount), recipient), nil
	})
}

// apply runs one mutation with exclusive access to the session and collects the result
func (s *BankingService) apply(
	ctx context.Context,
	action string,
	sessionID uuid.UUID,
	amount decimal.Decimal,
	mutate func(*domain.Account) (string, error),
) (*ActionResult, error) {
	var result *ActionResult
	err := s.SessionRepo.WithSession(ctx, sessionID, func(session *domain.Session) error {
		account := session.Account
		before := account.Len()

		msg, err := mutate(account)
		if err != nil {
			return err
		}

		history := account.History()
		result = &ActionResult{
			Summary: account.Summary(),
			Records: history[before:],
			Message: msg,
		}
		return nil
	})

	fields := []zap.Field{
		zap.String("action", action),
		zap.Stringer("session_id", sessionID),
		zap.Stringer("amount", amount),
	}
	if err != nil {
		if isUserError(err) {
			s.Logger.Info("action rejected", append(fields, zap.Error(err))...)
		} else {
			s.Logger.Error("action failed", append(fields, zap.Error(err))...)
		}
		return nil, err
	}

	s.Logger.Info("action completed", append(fields, zap.Stringer("balance", result.Summary.Balance))...)
	return result, nil
}

// isUserError reports whether err is an expected rejection of user input
func isUserError(err error) bool {
	return errors.Is(err, domain.ErrInvalidAmount) ||
		errors.Is(err, domain.ErrInsufficientFunds) ||
		errors.Is(err, domain.ErrSessionNotFound)
}
