package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionKind string

const (
	TransactionDeposit TransactionKind = "deposit"
	TransactionDebit   TransactionKind = "debit"
)

// Transaction — запись истории операций. Приходит с сервера, не меняется.
type Transaction struct {
	Kind      TransactionKind
	Amount    decimal.Decimal
	Currency  string
	Timestamp time.Time
}

// AccountSnapshot — последнее известное состояние счёта. Заменяется
// целиком при каждой успешной загрузке, частичных обновлений нет.
type AccountSnapshot struct {
	BalanceUSDT  decimal.Decimal
	BalanceTON   decimal.Decimal
	SMSPriceUSDT decimal.Decimal
	SMSPriceTON  decimal.Decimal
	Transactions []Transaction
}
