package ports

import "github.com/larriantoniy/sms_miniapp/internal/domain"

// View — слой отображения. Контроллер не трогает представление напрямую,
// только проталкивает типизированные вызовы; чем рисовать — дело адаптера.
type View interface {
	// ShowSession выводит шапку "ID: <userId>"
	ShowSession(s *domain.Session)
	// ShowSnapshot перерисовывает балансы, цены и список транзакций
	// (новые сверху)
	ShowSnapshot(snap *domain.AccountSnapshot)
	// ShowSmsForm перерисовывает форму рассылки вместе с оценкой
	// стоимости и счётчиком символов
	ShowSmsForm(draft domain.SmsDraft, est domain.CostEstimate, stats domain.MessageStats)
	// ShowDepositForm перерисовывает форму пополнения; info может быть
	// nil, пока адрес не загружен
	ShowDepositForm(draft domain.DepositDraft, info *DepositInfo)
	// ShowTab делает видимой ровно одну вкладку
	ShowTab(tab domain.Tab)
	// SetLoading включает/выключает индикатор загрузки
	SetLoading(on bool)
	// Notify показывает временное уведомление
	Notify(n domain.Notice)
	// Fatal выводит единственное сообщение фатальной ошибки инициализации
	Fatal(text string)
}
