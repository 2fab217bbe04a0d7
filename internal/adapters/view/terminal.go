package view

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/larriantoniy/sms_miniapp/internal/domain"
	"github.com/larriantoniy/sms_miniapp/internal/ports"
)

// Terminal реализует ports.View поверх io.Writer.
// Каждый вызов перерисовывает только свою область, как было со
// сменой innerHTML по блокам в исходном интерфейсе.
type Terminal struct {
	logger *slog.Logger

	mu      sync.Mutex
	out     io.Writer
	notice  *domain.Notice // текущее уведомление, снимается по таймеру
	loading bool
}

func NewTerminal(out io.Writer, logger *slog.Logger) *Terminal {
	return &Terminal{out: out, logger: logger}
}

func (t *Terminal) ShowSession(s *domain.Session) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, "ID: %s\n", s.UserID)
}

func (t *Terminal) ShowSnapshot(snap *domain.AccountSnapshot) {
	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.out, "Баланс: %s USDT | %s TON\n",
		snap.BalanceUSDT.StringFixed(2), snap.BalanceTON.StringFixed(2))
	fmt.Fprintf(t.out, "Цена SMS: %s USDT / %s TON\n",
		snap.SMSPriceUSDT.String(), snap.SMSPriceTON.String())

	if len(snap.Transactions) == 0 {
		fmt.Fprintln(t.out, "Нет транзакций")
		return
	}

	w := tabwriter.NewWriter(t.out, 0, 4, 2, ' ', 0)
	// новые сверху
	for i := len(snap.Transactions) - 1; i >= 0; i-- {
		tx := snap.Transactions[i]
		fmt.Fprintf(w, "%s\t%s %s\t%s\n",
			kindLabel(tx.Kind),
			tx.Amount.String(), tx.Currency,
			tx.Timestamp.Format("02.01.2006"))
	}
	w.Flush()
}

func (t *Terminal) ShowSmsForm(draft domain.SmsDraft, est domain.CostEstimate, stats domain.MessageStats) {
	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.out, "Номеров: %d | Стоимость: %s USDT / %s TON\n",
		est.Numbers, est.USDT.StringFixed(2), est.TON.StringFixed(2))
	fmt.Fprintf(t.out, "%d/%d символов\n", stats.Chars, stats.Limit)
}

func (t *Terminal) ShowDepositForm(draft domain.DepositDraft, info *ports.DepositInfo) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if info != nil {
		fmt.Fprintf(t.out, "Адрес: %s (%s)\n", info.Address, info.Network)
	}
	fmt.Fprintf(t.out, "Валюта: %s | Сумма: %s\n", draft.Currency, draft.Amount.String())
}

func (t *Terminal) ShowTab(tab domain.Tab) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, "== %s ==\n", tab.Title())
}

func (t *Terminal) SetLoading(on bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if on && !t.loading {
		fmt.Fprintln(t.out, "...")
	}
	t.loading = on
}

func (t *Terminal) Notify(n domain.Notice) {
	t.mu.Lock()
	t.notice = &n
	fmt.Fprintf(t.out, "[%s] %s\n", n.Level, n.Text)
	t.mu.Unlock()

	t.logger.Debug("notice", "id", n.ID, "level", n.Level)

	// уведомление временное: через NoticeTTL считается погашенным
	time.AfterFunc(domain.NoticeTTL, func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		if t.notice != nil && t.notice.ID == n.ID {
			t.notice = nil
		}
	})
}

// Current возвращает непогашенное уведомление, если оно ещё видно.
func (t *Terminal) Current() *domain.Notice {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.notice
}

func (t *Terminal) Fatal(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.out, text)
}

func kindLabel(k domain.TransactionKind) string {
	if k == domain.TransactionDeposit {
		return "📥 Пополнение"
	}
	return "📤 Списание"
}
