package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// MinDepositAmount — минимальная сумма пополнения, одна для всех валют.
var MinDepositAmount = decimal.NewFromInt(10)

// MinTxHashLen — минимальная длина хеша транзакции после обрезки пробелов.
const MinTxHashLen = 10

var (
	ErrAmountTooSmall = errors.New("deposit amount below minimum")
	ErrBadTxHash      = errors.New("invalid transaction hash")
)

// DepositDraft — несохранённый ввод формы пополнения.
type DepositDraft struct {
	Currency string
	Amount   decimal.Decimal
	TxHash   string
}

// Validate — клиентская проверка заявки на пополнение.
func (d *DepositDraft) Validate() error {
	if d.Amount.LessThan(MinDepositAmount) {
		return ErrAmountTooSmall
	}
	if len(strings.TrimSpace(d.TxHash)) < MinTxHashLen {
		return ErrBadTxHash
	}
	return nil
}
