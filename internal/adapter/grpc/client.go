package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/structpb"
)

// Client is a typed client for BankService
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient wraps a client connection
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// WithSession attaches a session ID to outgoing calls made with the returned context
func WithSession(ctx context.Context, sessionID string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, SessionMetadataKey, sessionID)
}

// Login opens an account and returns the session ID along with the full response
func (c *Client) Login(ctx context.Context, holder, accountType, initialDeposit string) (string, *structpb.Struct, error) {
	resp, err := c.invoke(ctx, LoginMethod, map[string]any{
		"holder":          holder,
		"account_type":    accountType,
		"initial_deposit": initialDeposit,
	})
	if err != nil {
		return "", nil, err
	}

	sessionID := resp.GetFields()["session_id"].GetStringValue()
	if sessionID == "" {
		return "", nil, errors.New("login response has no session_id")
	}
	return sessionID, resp, nil
}

// Logout ends the session carried by ctx
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.invoke(ctx, LogoutMethod, nil)
	return err
}

// Deposit deposits amount into the session's account
func (c *Client) Deposit(ctx context.Context, amount string) (*structpb.Struct, error) {
	return c.invoke(ctx, DepositMethod, map[string]any{"amount": amount})
}

// Withdraw withdraws amount from the session's account
func (c *Client) Withdraw(ctx context.Context, amount string) (*structpb.Struct, error) {
	return c.invoke(ctx, WithdrawMethod, map[string]any{"amount": amount})
}

// Transfer transfers amount to recipient
func (c *Client) Transfer(ctx context.Context, amount, recipient string) (*structpb.Struct, error) {
	return c.invoke(ctx, TransferMethod, map[string]any{"amount": amount, "recipient": recipient})
}

// Overview returns the account overview
func (c *Client) Overview(ctx context.Context) (*structpb.Struct, error) {
	return c.invoke(ctx, OverviewMethod, nil)
}

// Transactions returns the transaction table
func (c *Client) Transactions(ctx context.Context) (*structpb.Struct, error) {
	return c.invoke(ctx, TransactionsMethod, nil)
}

// Passbook returns the passbook preview
func (c *Client) Passbook(ctx context.Context) (*structpb.Struct, error) {
	return c.invoke(ctx, PassbookMethod, nil)
}

// ThankYou returns the thank-you screen
func (c *Client) ThankYou(ctx context.Context) (*structpb.Struct, error) {
	return c.invoke(ctx, ThankYouMethod, nil)
}

func (c *Client) invoke(ctx context.Context, method string, fields map[string]any, opts ...grpc.CallOption) (*structpb.Struct, error) {
	in, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, err
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
