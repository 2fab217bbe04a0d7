package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/larriantoniy/sms_miniapp/internal/domain"
)

func TestDepositDraftValidate(t *testing.T) {
	d := domain.DepositDraft{
		Currency: "USDT",
		Amount:   decimal.NewFromInt(5),
		TxHash:   "abcdef0123456789",
	}
	require.ErrorIs(t, d.Validate(), domain.ErrAmountTooSmall)

	// минимум не зависит от валюты
	d.Currency = "TON"
	require.ErrorIs(t, d.Validate(), domain.ErrAmountTooSmall)

	d.Amount = decimal.RequireFromString("9.99")
	require.ErrorIs(t, d.Validate(), domain.ErrAmountTooSmall)

	d.Amount = decimal.NewFromInt(10)
	require.NoError(t, d.Validate())

	d.TxHash = "  short1  "
	require.ErrorIs(t, d.Validate(), domain.ErrBadTxHash)

	d.TxHash = ""
	require.ErrorIs(t, d.Validate(), domain.ErrBadTxHash)

	d.TxHash = "0123456789"
	require.NoError(t, d.Validate())
}
