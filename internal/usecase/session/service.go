package session

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/simaogato/passbook-backend/internal/domain"
	"go.uber.org/zap"
)

// LoginInput represents the raw values entered on the login screen
type LoginInput struct {
	Holder         string
	AccountType    string
	InitialDeposit string
}

// SessionService opens and closes the logged-in user's account
type SessionService struct {
	SessionRepo domain.SessionRepository
	Logger      *zap.Logger
}

// NewSessionService creates a new SessionService instance
func NewSessionService(sessionRepo domain.SessionRepository, logger *zap.Logger) *SessionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionService{
		SessionRepo: sessionRepo,
		Logger:      logger,
	}
}

// Login validates the login form, opens a fresh account and starts a session for it
// Logic:
//  1. Holder is required (trimmed)
//  2. Initial deposit is required and must be a non-negative number
//  3. Account type defaults to Savings when blank
//  4. Open the account and store the session
func (s *SessionService) Login(ctx context.Context, input LoginInput) (*domain.Session, error) {
	holder := strings.TrimSpace(input.Holder)
	if holder == "" {
		return nil, domain.ErrEmptyHolderName
	}

	if strings.TrimSpace(input.InitialDeposit) == "" {
		return nil, domain.ErrMissingDeposit
	}
	deposit, err := domain.ParseAmount(input.InitialDeposit)
	if err != nil {
		return nil, err
	}
	if deposit.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}

	accountType, err := domain.ParseAccountType(input.AccountType)
	if err != nil {
		return nil, err
	}

	account, err := domain.OpenAccount(holder, deposit, accountType)
	if err != nil {
		return nil, err
	}

	session := domain.NewSession(account)
	if err := s.SessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	s.Logger.Info("session started",
		zap.Stringer("session_id", session.ID),
		zap.String("holder", holder),
		zap.String("account_type", string(accountType)),
		zap.Stringer("initial_deposit", deposit),
	)
	return session, nil
}

// Logout discards the session and its account
func (s *SessionService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.SessionRepo.Delete(ctx, sessionID); err != nil {
		if !errors.Is(err, domain.ErrSessionNotFound) {
			s.Logger.Error("failed to end session", zap.Stringer("session_id", sessionID), zap.Error(err))
		}
		return err
	}

	s.Logger.Info("session ended", zap.Stringer("session_id", sessionID))
	return nil
}
