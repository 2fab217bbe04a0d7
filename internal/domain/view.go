package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tab — именованная вкладка интерфейса. В каждый момент видна ровно одна.
type Tab string

const (
	TabDashboard Tab = "dashboard"
	TabSms       Tab = "sms"
	TabDeposit   Tab = "deposit"
)

// Title — заголовок вкладки, как в оригинальном интерфейсе.
func (t Tab) Title() string {
	switch t {
	case TabDashboard:
		return "Дашборд"
	case TabSms:
		return "Рассылка"
	case TabDeposit:
		return "Пополнение"
	}
	return string(t)
}

type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
	NoticeInfo    NoticeLevel = "info"
)

// NoticeTTL — сколько уведомление остаётся на экране.
const NoticeTTL = 5 * time.Second

// Notice — временное уведомление пользователю. ID связывает его
// с записями лога той же операции.
type Notice struct {
	ID    uuid.UUID
	Level NoticeLevel
	Text  string
}

func NewNotice(level NoticeLevel, text string) Notice {
	return Notice{ID: uuid.New(), Level: level, Text: text}
}
