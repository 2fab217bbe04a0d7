package ports

import (
	"context"

	"github.com/larriantoniy/sms_miniapp/internal/domain"
)

// DepositInfo — адрес пополнения и имя сети для выбранной валюты.
type DepositInfo struct {
	Address string
	Network string
}

// BillingAPI определяет интерфейс удалённого биллинг-сервиса.
// Реализуется HTTP-адаптером; сервис для клиента непрозрачен.
type BillingAPI interface {
	// UserData загружает снапшот счёта (балансы, цены, транзакции)
	UserData(ctx context.Context, s *domain.Session) (*domain.AccountSnapshot, error)
	// SubmitSMS отправляет заявку на рассылку. Возвращает текст
	// подтверждения сервера (может быть пустым).
	SubmitSMS(ctx context.Context, s *domain.Session, numbers []string, message string) (string, error)
	// PaymentAddress возвращает адрес пополнения для валюты
	PaymentAddress(ctx context.Context, currency string) (*DepositInfo, error)
	// SubmitPayment отправляет платёж на проверку
	SubmitPayment(ctx context.Context, s *domain.Session, d domain.DepositDraft) (string, error)
}
