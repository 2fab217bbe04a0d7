package usecases

import (
	"context"
	"time"
)

// AutoRefresh раз в interval перечитывает снапшот счёта, пока не
// отменён контекст. Тикает безусловно, независимо от активной вкладки;
// гонку с ручным обновлением разрешает поколение запроса в контроллере.
func (c *Controller) AutoRefresh(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.log.Info("auto refresh stopped")
			return
		case <-ticker.C:
			c.RefreshSnapshot(ctx)
		}
	}
}
