package grpc

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/simaogato/passbook-backend/internal/domain"
	"github.com/simaogato/passbook-backend/internal/usecase/banking"
	"github.com/simaogato/passbook-backend/internal/usecase/dashboard"
	"github.com/simaogato/passbook-backend/internal/usecase/session"
)

// Server implements the BankService gRPC server
type Server struct {
	SessionService   *session.SessionService
	BankingService   *banking.BankingService
	DashboardService *dashboard.DashboardService
}

var _ BankServiceServer = (*Server)(nil)

// NewServer creates a new gRPC server instance
func NewServer(
	sessionService *session.SessionService,
	bankingService *banking.BankingService,
	dashboardService *dashboard.DashboardService,
) *Server {
	return &Server{
		SessionService:   sessionService,
		BankingService:   bankingService,
		DashboardService: dashboardService,
	}
}

// Login handles the Login RPC.
// Request fields: holder, account_type, initial_deposit.
func (s *Server) Login(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	input := session.LoginInput{
		Holder:         stringField(req, "holder"),
		AccountType:    stringField(req, "account_type"),
		InitialDeposit: rawAmountField(req, "initial_deposit"),
	}

	sess, err := s.SessionService.Login(ctx, input)
	if err != nil {
		return nil, mapError(err)
	}

	summary := sess.Account.Summary()
	return newStruct(map[string]any{
		"session_id":   sess.ID.String(),
		"started_at":   sess.StartedAt.UTC().Format(time.RFC3339),
		"holder":       summary.Holder,
		"initials":     dashboard.Initials(summary.Holder),
		"account_type": string(summary.AccountType),
		"balance":      dashboard.FormatCurrency(summary.Balance),
	})
}

// Logout handles the Logout RPC
func (s *Server) Logout(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	sessionID, err := SessionIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.SessionService.Logout(ctx, sessionID); err != nil {
		return nil, mapError(err)
	}

	return newStruct(map[string]any{"logged_out": true})
}

// Deposit handles the Deposit RPC. Request fields: amount.
func (s *Server) Deposit(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sessionID, err := SessionIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	amount, err := amountField(req, "amount")
	if err != nil {
		return nil, mapError(err)
	}

	result, err := s.BankingService.Deposit(ctx, sessionID, amount)
	if err != nil {
		return nil, mapError(err)
	}
	return actionResponse(result)
}

// Withdraw handles the Withdraw RPC. Request fields: amount.
func (s *Server) Withdraw(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sessionID, err := SessionIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	amount, err := amountField(req, "amount")
	if err != nil {
		return nil, mapError(err)
	}

	result, err := s.BankingService.Withdraw(ctx, sessionID, amount)
	if err != nil {
		return nil, mapError(err)
	}
	return actionResponse(result)
}

// Transfer handles the Transfer RPC. Request fields: amount, recipient.
func (s *Server) Transfer(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sessionID, err := SessionIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	amount, err := amountField(req, "amount")
	if err != nil {
		return nil, mapError(err)
	}

	result, err := s.BankingService.Transfer(ctx, banking.TransferInput{
		SessionID: sessionID,
		Amount:    amount,
		Recipient: stringField(req, "recipient"),
	})
	if err != nil {
		return nil, mapError(err)
	}
	return actionResponse(result)
}

// Overview handles the Overview RPC
func (s *Server) Overview(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	sessionID, err := SessionIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	overview, err := s.DashboardService.Overview(ctx, sessionID)
	if err != nil {
		return nil, mapError(err)
	}

	return newStruct(map[string]any{
		"holder":       overview.Holder,
		"initials":     overview.Initials,
		"account_type": overview.AccountType,
		"balance":      overview.Balance,
	})
}

// Transactions handles the Transactions RPC
func (s *Server) Transactions(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	sessionID, err := SessionIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.DashboardService.Transactions(ctx, sessionID)
	if err != nil {
		return nil, mapError(err)
	}

	return newStruct(map[string]any{"transactions": rowsToList(rows)})
}

// Passbook handles the Passbook RPC
func (s *Server) Passbook(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	sessionID, err := SessionIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	passbook, err := s.DashboardService.Passbook(ctx, sessionID)
	if err != nil {
		return nil, mapError(err)
	}

	return newStruct(map[string]any{
		"title":  passbook.Title,
		"rows":   rowsToList(passbook.Rows),
		"footer": passbook.Footer,
	})
}

// ThankYou handles the ThankYou RPC
func (s *Server) ThankYou(_ context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	return newStruct(map[string]any{"message": s.DashboardService.ThankYou().Message})
}

// actionResponse converts a banking result into a response message
func actionResponse(result *banking.ActionResult) (*structpb.Struct, error) {
	records := make([]any, 0, len(result.Records))
	for _, r := range result.Records {
		records = append(records, map[string]any{
			"id":           r.ID.String(),
			"type":         string(r.Kind),
			"amount":       r.Amount.String(),
			"timestamp":    r.Timestamp.UTC().Format(time.RFC3339Nano),
			"status":       string(r.Status),
			"counterparty": r.Counterparty,
		})
	}

	return newStruct(map[string]any{
		"message":       result.Message,
		"holder":        result.Summary.Holder,
		"account_type":  string(result.Summary.AccountType),
		"balance":       dashboard.FormatCurrency(result.Summary.Balance),
		"balance_exact": result.Summary.Balance.String(),
		"records":       records,
	})
}

func rowsToList(rows []dashboard.TransactionRow) []any {
	out := make([]any, 0, len(rows))
	for _, row := range rows {
		out = append(out, map[string]any{
			"id":           row.ID,
			"type":         row.Type,
			"amount":       row.Amount,
			"date":         row.Date,
			"status":       row.Status,
			"counterparty": row.Counterparty,
		})
	}
	return out
}

func newStruct(fields map[string]any) (*structpb.Struct, error) {
	out, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to build response: %v", err)
	}
	return out, nil
}

// stringField returns a string field or "" when absent or not a string
func stringField(req *structpb.Struct, key string) string {
	return req.GetFields()[key].GetStringValue()
}

// rawAmountField returns an amount field as text, accepting string or number values.
// NaN and infinities have no decimal form and come back as "".
func rawAmountField(req *structpb.Struct, key string) string {
	v, ok := req.GetFields()[key]
	if !ok {
		return ""
	}
	switch kind := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		return kind.StringValue
	case *structpb.Value_NumberValue:
		f := kind.NumberValue
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return ""
		}
		return decimal.NewFromFloat(f).String()
	default:
		return ""
	}
}

// amountField parses an amount field
func amountField(req *structpb.Struct, key string) (decimal.Decimal, error) {
	return domain.ParseAmount(rawAmountField(req, key))
}

// mapError converts domain errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrEmptyHolderName),
		errors.Is(err, domain.ErrMissingDeposit),
		errors.Is(err, domain.ErrMissingRecipient),
		errors.Is(err, domain.ErrInvalidAccountType):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrInsufficientFunds):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, domain.ErrSessionNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
