package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxMessageChars — длина, относительно которой показывается счётчик
// символов. Клиент её не принуждает, решает сервер.
const MaxMessageChars = 1000

var (
	ErrEmptyNumbers = errors.New("empty numbers list")
	ErrEmptyMessage = errors.New("empty message")

	phoneRe = regexp.MustCompile(`^(\+7|7|8)\d{10}$`)
	wsRe    = regexp.MustCompile(`\s+`)
)

// InvalidNumberError — первый номер, не прошедший проверку формата.
type InvalidNumberError struct {
	Number string
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("invalid phone number: %s", e.Number)
}

// SmsDraft — несохранённый ввод формы рассылки.
type SmsDraft struct {
	NumbersRaw string
	Message    string
}

// SplitNumbers режет строку по ';', отбрасывая пустые сегменты.
func SplitNumbers(raw string) []string {
	parts := strings.Split(raw, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ValidPhone проверяет номер после удаления пробельных символов:
// +7/7/8 и ровно десять цифр.
func ValidPhone(number string) bool {
	return phoneRe.MatchString(wsRe.ReplaceAllString(number, ""))
}

// Numbers возвращает номера черновика без пустых сегментов.
func (d *SmsDraft) Numbers() []string {
	return SplitNumbers(d.NumbersRaw)
}

// Validate — клиентская проверка перед отправкой. Сервер всё равно
// проверит сам; здесь только ранний отказ с понятным сообщением.
// Первый невалидный номер прерывает всю отправку.
func (d *SmsDraft) Validate() error {
	if strings.TrimSpace(d.NumbersRaw) == "" {
		return ErrEmptyNumbers
	}
	if strings.TrimSpace(d.Message) == "" {
		return ErrEmptyMessage
	}
	for _, n := range d.Numbers() {
		if !ValidPhone(n) {
			return &InvalidNumberError{Number: n}
		}
	}
	return nil
}

// Stats — счётчик символов для формы.
func (d *SmsDraft) Stats() MessageStats {
	return MessageStats{Chars: len([]rune(d.Message)), Limit: MaxMessageChars}
}

type MessageStats struct {
	Chars int
	Limit int
}

// CostEstimate — стоимость рассылки в обеих валютах.
type CostEstimate struct {
	Numbers int
	USDT    decimal.Decimal
	TON     decimal.Decimal
}

// EstimateCost считает стоимость: количество номеров на цену за штуку,
// независимо по каждой валюте. Пока снапшота нет, цены нулевые.
func EstimateCost(numbersRaw string, snap *AccountSnapshot) CostEstimate {
	count := len(SplitNumbers(numbersRaw))
	est := CostEstimate{Numbers: count}
	if snap == nil {
		return est
	}
	n := decimal.NewFromInt(int64(count))
	est.USDT = n.Mul(snap.SMSPriceUSDT)
	est.TON = n.Mul(snap.SMSPriceTON)
	return est
}
