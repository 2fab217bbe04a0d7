package view_test

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/larriantoniy/sms_miniapp/internal/adapters/view"
	"github.com/larriantoniy/sms_miniapp/internal/domain"
)

func newTerminal() (*view.Terminal, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return view.NewTerminal(buf, logger), buf
}

func TestShowSnapshotNewestFirst(t *testing.T) {
	term, buf := newTerminal()

	term.ShowSnapshot(&domain.AccountSnapshot{
		BalanceUSDT:  decimal.RequireFromString("5.5"),
		BalanceTON:   decimal.NewFromInt(1),
		SMSPriceUSDT: decimal.RequireFromString("0.05"),
		SMSPriceTON:  decimal.RequireFromString("0.2"),
		Transactions: []domain.Transaction{
			{
				Kind:      domain.TransactionDeposit,
				Amount:    decimal.NewFromInt(100),
				Currency:  "USDT",
				Timestamp: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			},
			{
				Kind:      domain.TransactionDebit,
				Amount:    decimal.RequireFromString("2.5"),
				Currency:  "TON",
				Timestamp: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
			},
		},
	})

	out := buf.String()
	require.Contains(t, out, "5.50 USDT")
	require.Contains(t, out, "1.00 TON")
	require.Contains(t, out, "05.01.2024")
	require.Contains(t, out, "10.02.2024")
	// последняя транзакция печатается первой
	require.Less(t, strings.Index(out, "Списание"), strings.Index(out, "Пополнение"))
}

func TestShowSnapshotEmpty(t *testing.T) {
	term, buf := newTerminal()
	term.ShowSnapshot(&domain.AccountSnapshot{})
	require.Contains(t, buf.String(), "Нет транзакций")
}

func TestNotifyKeepsCurrentUntilTTL(t *testing.T) {
	term, buf := newTerminal()

	n := domain.NewNotice(domain.NoticeError, "not found")
	term.Notify(n)

	require.Contains(t, buf.String(), "[error] not found")
	cur := term.Current()
	require.NotNil(t, cur)
	require.Equal(t, n.ID, cur.ID)

	// новое уведомление вытесняет старое сразу
	term.Notify(domain.NewNotice(domain.NoticeSuccess, "ок"))
	cur = term.Current()
	require.NotNil(t, cur)
	require.Equal(t, "ок", cur.Text)
}

func TestShowSession(t *testing.T) {
	term, buf := newTerminal()
	term.ShowSession(&domain.Session{UserID: "42", Token: "abc"})
	require.Equal(t, "ID: 42\n", buf.String())
}
