package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertBalance(t *testing.T, want string, a *Account) {
	t.Helper()
	assert.True(t, dec(want).Equal(a.Balance()), "balance: want %s, got %s", want, a.Balance())
}

func openAlice(t *testing.T) *Account {
	t.Helper()
	a, err := OpenAccount("Alice", decimal.NewFromInt(100), AccountTypeSavings)
	require.NoError(t, err)
	return a
}

func TestOpenAccount(t *testing.T) {
	tests := []struct {
		name        string
		holder      string
		balance     decimal.Decimal
		accountType AccountType
		wantErr     error
	}{
		{
			name:        "Valid savings account",
			holder:      "Alice",
			balance:     decimal.NewFromInt(100),
			accountType: AccountTypeSavings,
		},
		{
			name:        "Zero initial balance is allowed",
			holder:      "Bob",
			balance:     decimal.Zero,
			accountType: AccountTypeBusiness,
		},
		{
			name:        "Blank holder fails",
			holder:      "   ",
			balance:     decimal.NewFromInt(10),
			accountType: AccountTypeChecking,
			wantErr:     ErrEmptyHolderName,
		},
		{
			name:        "Negative initial balance fails",
			holder:      "Alice",
			balance:     decimal.NewFromInt(-1),
			accountType: AccountTypeSavings,
			wantErr:     ErrInvalidAmount,
		},
		{
			name:        "Unknown account type fails",
			holder:      "Alice",
			balance:     decimal.NewFromInt(1),
			accountType: AccountType("Crypto"),
			wantErr:     ErrInvalidAccountType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := OpenAccount(tt.holder, tt.balance, tt.accountType)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, a)
				return
			}
			require.NoError(t, err)
			summary := a.Summary()
			assert.Equal(t, tt.holder, summary.Holder)
			assert.Equal(t, tt.accountType, summary.AccountType)
			assert.True(t, tt.balance.Equal(summary.Balance))
			assert.Empty(t, a.History())
		})
	}
}

func TestAccount_Scenario(t *testing.T) {
	a := openAlice(t)
	assertBalance(t, "100", a)
	assert.Empty(t, a.History())

	require.NoError(t, a.Deposit(decimal.NewFromInt(50)))
	assertBalance(t, "150", a)
	history := a.History()
	require.Len(t, history, 1)
	assert.Equal(t, TransactionKindDeposit, history[0].Kind)
	assert.True(t, decimal.NewFromInt(50).Equal(history[0].Amount))
	assert.Equal(t, TransactionStatusCompleted, history[0].Status)

	require.NoError(t, a.Withdraw(decimal.NewFromInt(30)))
	assertBalance(t, "120", a)
	history = a.History()
	require.Len(t, history, 2)
	assert.Equal(t, TransactionKindWithdrawal, history[1].Kind)
	assert.True(t, decimal.NewFromInt(30).Equal(history[1].Amount))

	require.NoError(t, a.Transfer(decimal.NewFromInt(20), "Bob"))
	assertBalance(t, "100", a)
	history = a.History()
	require.Len(t, history, 4)
	sent, received := history[2], history[3]
	assert.Equal(t, TransactionKindTransferSent, sent.Kind)
	assert.Equal(t, TransactionKindTransferReceived, received.Kind)
	assert.True(t, decimal.NewFromInt(20).Equal(sent.Amount))
	assert.True(t, decimal.NewFromInt(20).Equal(received.Amount))
	assert.Equal(t, sent.Timestamp, received.Timestamp)
	assert.Equal(t, "Bob", sent.Counterparty)
	assert.Equal(t, TransactionStatusCompleted, received.Status)
	assert.NotEqual(t, sent.ID, received.ID)
}

func TestAccount_RejectsNonPositiveAmounts(t *testing.T) {
	amounts := []string{"0", "-0.01", "-50"}
	ops := map[string]func(*Account, decimal.Decimal) error{
		"Deposit":  (*Account).Deposit,
		"Withdraw": (*Account).Withdraw,
		"Transfer": func(a *Account, amt decimal.Decimal) error { return a.Transfer(amt, "Bob") },
	}

	for opName, op := range ops {
		for _, raw := range amounts {
			t.Run(opName+" "+raw, func(t *testing.T) {
				a := openAlice(t)
				err := op(a, dec(raw))
				assert.ErrorIs(t, err, ErrInvalidAmount)
				assertBalance(t, "100", a)
				assert.Equal(t, 0, a.Len())
			})
		}
	}
}

func TestAccount_RejectsOverdraft(t *testing.T) {
	ops := map[string]func(*Account, decimal.Decimal) error{
		"Withdraw": (*Account).Withdraw,
		"Transfer": func(a *Account, amt decimal.Decimal) error { return a.Transfer(amt, "Bob") },
	}

	for opName, op := range ops {
		t.Run(opName, func(t *testing.T) {
			a := openAlice(t)
			require.NoError(t, a.Deposit(decimal.NewFromInt(5)))

			err := op(a, dec("105.01"))
			assert.ErrorIs(t, err, ErrInsufficientFunds)
			assertBalance(t, "105", a)
			assert.Equal(t, 1, a.Len())
		})
	}
}

func TestAccount_WithdrawExactBalance(t *testing.T) {
	a := openAlice(t)

	require.NoError(t, a.Withdraw(decimal.NewFromInt(100)))
	assertBalance(t, "0", a)

	err := a.Withdraw(dec("0.01"))
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assertBalance(t, "0", a)
	assert.Equal(t, 1, a.Len())
}

func TestAccount_FractionalAmounts(t *testing.T) {
	a := openAlice(t)

	require.NoError(t, a.Deposit(dec("0.10")))
	require.NoError(t, a.Deposit(dec("0.20")))
	assertBalance(t, "100.30", a)

	require.NoError(t, a.Transfer(dec("100.30"), "Carol"))
	assertBalance(t, "0", a)
}

func TestAccount_HistoryIsACopy(t *testing.T) {
	a := openAlice(t)
	require.NoError(t, a.Deposit(decimal.NewFromInt(1)))

	history := a.History()
	history[0].Kind = TransactionKindWithdrawal

	again := a.History()
	require.Len(t, again, 1)
	assert.Equal(t, TransactionKindDeposit, again[0].Kind)

	// Reads do not mutate
	assert.Equal(t, a.Summary(), a.Summary())
	assert.Equal(t, again, a.History())
}

func TestAccount_OrderFollowsInvocation(t *testing.T) {
	a := openAlice(t)
	require.NoError(t, a.Withdraw(decimal.NewFromInt(10)))
	require.NoError(t, a.Deposit(decimal.NewFromInt(10)))

	history := a.History()
	require.Len(t, history, 2)
	assert.Equal(t, TransactionKindWithdrawal, history[0].Kind)
	assert.Equal(t, TransactionKindDeposit, history[1].Kind)
}

func TestAccount_Recent(t *testing.T) {
	a := openAlice(t)
	for i := 1; i <= 5; i++ {
		require.NoError(t, a.Deposit(decimal.NewFromInt(int64(i))))
	}

	recent := a.Recent(2)
	require.Len(t, recent, 2)
	assert.True(t, decimal.NewFromInt(4).Equal(recent[0].Amount))
	assert.True(t, decimal.NewFromInt(5).Equal(recent[1].Amount))

	assert.Len(t, a.Recent(0), 5)
	assert.Len(t, a.Recent(50), 5)
}

func TestAccount_WithClock(t *testing.T) {
	fixed := time.Date(2024, time.March, 1, 9, 30, 0, 0, time.UTC)
	a, err := OpenAccount("Alice", decimal.Zero, AccountTypeChecking, WithClock(func() time.Time { return fixed }))
	require.NoError(t, err)

	require.NoError(t, a.Deposit(decimal.NewFromInt(10)))
	assert.Equal(t, fixed, a.History()[0].Timestamp)
}

func TestParseAccountType(t *testing.T) {
	tests := []struct {
		input   string
		want    AccountType
		wantErr bool
	}{
		{input: "", want: AccountTypeSavings},
		{input: "savings", want: AccountTypeSavings},
		{input: " Checking ", want: AccountTypeChecking},
		{input: "BUSINESS", want: AccountTypeBusiness},
		{input: "Brokerage", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAccountType(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAccountType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "Integer", input: "50", want: "50"},
		{name: "Decimal with spaces", input: " 12.34 ", want: "12.34"},
		{name: "Negative parses", input: "-3", want: "-3"},
		{name: "Blank", input: "  ", wantErr: true},
		{name: "Garbage", input: "ten", wantErr: true},
		{name: "Trailing zeros beyond cents", input: "1.500", want: "1.5"},
		{name: "Largest integer part", input: "999999999999999.99", want: "999999999999999.99"},
		{name: "Small exponent notation", input: "5e3", want: "5000"},
		{name: "Zero with huge exponent", input: "0e5000000", want: "0"},
		{name: "Sub-cent amount", input: "0.001", wantErr: true},
		{name: "Sixteen integer digits", input: "1000000000000000", wantErr: true},
		{name: "Huge exponent", input: "1e5000000", wantErr: true},
		{name: "Huge negative exponent", input: "1e-5000000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.True(t, dec(tt.want).Equal(got))
		})
	}
}
