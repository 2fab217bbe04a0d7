package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/larriantoniy/sms_miniapp/internal/adapters/api"
	"github.com/larriantoniy/sms_miniapp/internal/domain"
	"github.com/larriantoniy/sms_miniapp/internal/ports"
)

// Тексты сообщений пользователю.
const (
	MsgNoSession = "Не удалось загрузить данные пользователя. Пожалуйста, откройте MiniApp через бота."

	msgConnection      = "Ошибка соединения с сервером"
	msgLoadFailed      = "Ошибка загрузки данных"
	msgSmsFailed       = "Ошибка при отправке заявки"
	msgSmsAccepted     = "Заявка успешно отправлена на модерацию"
	msgPaymentFailed   = "Ошибка при отправке платежа"
	msgPaymentAccepted = "Платеж отправлен на проверку"
	msgEnterNumbers    = "Введите номера телефонов"
	msgEnterMessage    = "Введите текст сообщения"
	msgMinDeposit      = "Минимальная сумма пополнения: 10"
	msgBadHash         = "Введите корректный хеш транзакции"
)

// DefaultCurrency — валюта формы пополнения при старте.
const DefaultCurrency = "USDT"

// Controller владеет сессией, последним снапшотом счёта и черновиками
// форм. Вся работа с сервером и представлением идёт через порты.
type Controller struct {
	log  *slog.Logger
	api  ports.BillingAPI
	view ports.View

	session *domain.Session

	mu          sync.Mutex
	snapshot    *domain.AccountSnapshot
	smsDraft    domain.SmsDraft
	deposit     domain.DepositDraft
	depositInfo *ports.DepositInfo
	tab         domain.Tab
	snapGen     uint64 // поколение последнего запроса снапшота
}

func New(log *slog.Logger, billing ports.BillingAPI, view ports.View, session *domain.Session) *Controller {
	return &Controller{
		log:     log,
		api:     billing,
		view:    view,
		session: session,
		deposit: domain.DepositDraft{
			Currency: DefaultCurrency,
			Amount:   domain.MinDepositAmount,
		},
		tab: domain.TabDashboard,
	}
}

// Init — первый рендер после запуска: шапка, снапшот, адрес пополнения.
func (c *Controller) Init(ctx context.Context) {
	c.view.ShowSession(c.session)
	c.view.ShowTab(domain.TabDashboard)
	c.RefreshSnapshot(ctx)
	c.RefreshDepositInfo(ctx)
	c.renderSmsForm()
}

// Snapshot возвращает последний загруженный снапшот (nil до первой загрузки).
func (c *Controller) Snapshot() *domain.AccountSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot
}

// RefreshSnapshot перечитывает состояние счёта. Ответ, который успел
// устареть (пока он шёл, ушёл более новый запрос), отбрасывается —
// применяется только последний выданный.
func (c *Controller) RefreshSnapshot(ctx context.Context) {
	c.mu.Lock()
	c.snapGen++
	gen := c.snapGen
	c.mu.Unlock()

	reqID := uuid.New()
	c.view.SetLoading(true)
	defer c.view.SetLoading(false)

	snap, err := c.api.UserData(ctx, c.session)

	c.mu.Lock()
	stale := gen != c.snapGen
	if err == nil && !stale {
		c.snapshot = snap
	}
	c.mu.Unlock()

	if stale {
		c.log.Debug("snapshot response superseded", "req_id", reqID)
		return
	}
	if err != nil {
		c.log.Error("user data fetch failed", "req_id", reqID, "error", err)
		c.notifyFailure(err, msgLoadFailed)
		return
	}

	c.view.ShowSnapshot(snap)
	// оценка стоимости зависит от цен из снапшота
	c.renderSmsForm()
}

// SetSmsNumbers обновляет поле номеров и пересчитывает стоимость.
func (c *Controller) SetSmsNumbers(raw string) {
	c.mu.Lock()
	c.smsDraft.NumbersRaw = raw
	c.mu.Unlock()
	c.renderSmsForm()
}

// SetSmsMessage обновляет текст сообщения и счётчик символов.
func (c *Controller) SetSmsMessage(text string) {
	c.mu.Lock()
	c.smsDraft.Message = text
	c.mu.Unlock()
	c.renderSmsForm()
}

// Estimate — текущая оценка стоимости рассылки.
func (c *Controller) Estimate() domain.CostEstimate {
	c.mu.Lock()
	defer c.mu.Unlock()
	return domain.EstimateCost(c.smsDraft.NumbersRaw, c.snapshot)
}

// SubmitSms проверяет черновик и отправляет заявку на рассылку.
// При успехе форма очищается и снапшот перечитывается (баланс мог
// измениться); при ошибке ввод сохраняется для исправления.
func (c *Controller) SubmitSms(ctx context.Context) {
	c.mu.Lock()
	draft := c.smsDraft
	c.mu.Unlock()

	if err := draft.Validate(); err != nil {
		c.view.Notify(domain.NewNotice(domain.NoticeError, validationText(err)))
		return
	}

	reqID := uuid.New()
	c.view.SetLoading(true)
	confirm, err := c.api.SubmitSMS(ctx, c.session, draft.Numbers(), draft.Message)
	c.view.SetLoading(false)

	if err != nil {
		c.log.Error("sms request failed", "req_id", reqID, "error", err)
		c.notifyFailure(err, msgSmsFailed)
		return
	}

	if confirm == "" {
		confirm = msgSmsAccepted
	}
	c.log.Info("sms request accepted", "req_id", reqID, "numbers", len(draft.Numbers()))
	c.view.Notify(domain.NewNotice(domain.NoticeSuccess, confirm))

	c.mu.Lock()
	c.smsDraft = domain.SmsDraft{}
	c.mu.Unlock()
	c.renderSmsForm()
	c.RefreshSnapshot(ctx)
}

// SetDepositCurrency меняет валюту пополнения и перечитывает адрес.
func (c *Controller) SetDepositCurrency(ctx context.Context, currency string) {
	c.mu.Lock()
	c.deposit.Currency = currency
	c.mu.Unlock()
	c.RefreshDepositInfo(ctx)
}

// SetDepositAmount обновляет сумму. Нечисловой ввод считается нулём
// и будет отвергнут при отправке.
func (c *Controller) SetDepositAmount(raw string) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		amount = decimal.Zero
	}
	c.mu.Lock()
	c.deposit.Amount = amount
	c.mu.Unlock()
	c.renderDepositForm()
}

// SetDepositTxHash обновляет хеш транзакции.
func (c *Controller) SetDepositTxHash(raw string) {
	c.mu.Lock()
	c.deposit.TxHash = raw
	c.mu.Unlock()
}

// RefreshDepositInfo загружает адрес пополнения для выбранной валюты.
// Ошибка не показывается пользователю, только пишется в лог — форма
// остаётся с прежним адресом (или без него).
func (c *Controller) RefreshDepositInfo(ctx context.Context) {
	c.mu.Lock()
	currency := c.deposit.Currency
	c.mu.Unlock()

	info, err := c.api.PaymentAddress(ctx, currency)
	if err != nil {
		c.log.Warn("payment address fetch failed", "currency", currency, "error", err)
		return
	}

	c.mu.Lock()
	c.depositInfo = info
	c.mu.Unlock()
	c.renderDepositForm()
}

// SubmitDeposit проверяет заявку и отправляет платёж на проверку.
// При успехе хеш очищается, сумма сбрасывается к минимуму.
func (c *Controller) SubmitDeposit(ctx context.Context) {
	c.mu.Lock()
	draft := c.deposit
	c.mu.Unlock()

	if err := draft.Validate(); err != nil {
		c.view.Notify(domain.NewNotice(domain.NoticeError, validationText(err)))
		return
	}

	reqID := uuid.New()
	c.view.SetLoading(true)
	confirm, err := c.api.SubmitPayment(ctx, c.session, draft)
	c.view.SetLoading(false)

	if err != nil {
		c.log.Error("payment submit failed", "req_id", reqID, "error", err)
		c.notifyFailure(err, msgPaymentFailed)
		return
	}

	if confirm == "" {
		confirm = msgPaymentAccepted
	}
	c.log.Info("payment submitted", "req_id", reqID, "currency", draft.Currency)
	c.view.Notify(domain.NewNotice(domain.NoticeSuccess, confirm))

	c.mu.Lock()
	c.deposit.TxHash = ""
	c.deposit.Amount = domain.MinDepositAmount
	c.mu.Unlock()
	c.renderDepositForm()
}

// SwitchTab делает видимой одну вкладку. Состояние скрытых форм
// не теряется. Дашборд и пополнение при показе обновляют свои данные.
func (c *Controller) SwitchTab(ctx context.Context, tab domain.Tab) {
	c.mu.Lock()
	c.tab = tab
	c.mu.Unlock()

	c.view.ShowTab(tab)

	switch tab {
	case domain.TabDashboard:
		c.RefreshSnapshot(ctx)
	case domain.TabSms:
		c.renderSmsForm()
	case domain.TabDeposit:
		c.RefreshDepositInfo(ctx)
	}
}

func (c *Controller) renderSmsForm() {
	c.mu.Lock()
	draft := c.smsDraft
	est := domain.EstimateCost(draft.NumbersRaw, c.snapshot)
	c.mu.Unlock()
	c.view.ShowSmsForm(draft, est, draft.Stats())
}

func (c *Controller) renderDepositForm() {
	c.mu.Lock()
	draft := c.deposit
	info := c.depositInfo
	c.mu.Unlock()
	c.view.ShowDepositForm(draft, info)
}

// notifyFailure показывает текст ошибки сервера, либо запасной текст
// операции, либо общее сообщение о проблеме соединения.
func (c *Controller) notifyFailure(err error, fallback string) {
	text := msgConnection
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		text = apiErr.Message
		if text == "" {
			text = fallback
		}
	}
	c.view.Notify(domain.NewNotice(domain.NoticeError, text))
}

func validationText(err error) string {
	var badNum *domain.InvalidNumberError
	switch {
	case errors.As(err, &badNum):
		return fmt.Sprintf("Неверный формат номера: %s", badNum.Number)
	case errors.Is(err, domain.ErrEmptyNumbers):
		return msgEnterNumbers
	case errors.Is(err, domain.ErrEmptyMessage):
		return msgEnterMessage
	case errors.Is(err, domain.ErrAmountTooSmall):
		return msgMinDeposit
	case errors.Is(err, domain.ErrBadTxHash):
		return msgBadHash
	}
	return err.Error()
}
