package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/simaogato/passbook-backend/internal/domain"
)

const (
	// PassbookMaxEntries caps the passbook preview
	PassbookMaxEntries = 15

	passbookTitle  = "Passbook"
	passbookFooter = "End of Passbook Preview"
	thankYouText   = "Thank you!"
)

// Overview is the account overview card
type Overview struct {
	Holder      string
	Initials    string
	AccountType string
	Balance     string
}

// TransactionRow is one formatted ledger line
type TransactionRow struct {
	ID           string
	Type         string
	Amount       string
	Date         string
	Status       string
	Counterparty string
}

// Passbook is the passbook preview: the most recent entries, newest first
type Passbook struct {
	Title  string
	Rows   []TransactionRow
	Footer string
}

// ThankYou is the closing screen
type ThankYou struct {
	Message string
}

// DashboardService builds read-only views of the logged-in account
type DashboardService struct {
	SessionRepo domain.SessionRepository
}

// NewDashboardService creates a new DashboardService instance
func NewDashboardService(sessionRepo domain.SessionRepository) *DashboardService {
	return &DashboardService{SessionRepo: sessionRepo}
}

// Overview returns the holder, initials, account type and formatted balance
func (s *DashboardService) Overview(ctx context.Context, sessionID uuid.UUID) (*Overview, error) {
	var out *Overview
	err := s.SessionRepo.WithSession(ctx, sessionID, func(session *domain.Session) error {
		summary := session.Account.Summary()
		out = &Overview{
			Holder:      summary.Holder,
			Initials:    Initials(summary.Holder),
			AccountType: string(summary.AccountType),
			Balance:     FormatCurrency(summary.Balance),
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load overview: %w", err)
	}
	return out, nil
}

// Transactions returns the full transaction table, newest first
func (s *DashboardService) Transactions(ctx context.Context, sessionID uuid.UUID) ([]TransactionRow, error) {
	var rows []TransactionRow
	err := s.SessionRepo.WithSession(ctx, sessionID, func(session *domain.Session) error {
		rows = newestFirst(session.Account.History(), TableTimeLayout)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	return rows, nil
}

// Passbook returns the last PassbookMaxEntries records, newest first
func (s *DashboardService) Passbook(ctx context.Context, sessionID uuid.UUID) (*Passbook, error) {
	var out *Passbook
	err := s.SessionRepo.WithSession(ctx, sessionID, func(session *domain.Session) error {
		out = &Passbook{
			Title:  passbookTitle,
			Rows:   newestFirst(session.Account.Recent(PassbookMaxEntries), PassbookTimeLayout),
			Footer: passbookFooter,
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load passbook: %w", err)
	}
	return out, nil
}

// ThankYou returns the closing screen. It needs no session.
func (s *DashboardService) ThankYou() ThankYou {
	return ThankYou{Message: thankYouText}
}

// newestFirst formats records in reverse chronological order
func newestFirst(records []domain.TransactionRecord, layout string) []TransactionRow {
	rows := make([]TransactionRow, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		r := records[i]
		rows = append(rows, TransactionRow{
			ID:           r.ID.String(),
			Type:         string(r.Kind),
			Amount:       FormatCurrency(r.Amount),
			Date:         FormatTime(r.Timestamp, layout),
			Status:       string(r.Status),
			Counterparty: r.Counterparty,
		})
	}
	return rows
}
