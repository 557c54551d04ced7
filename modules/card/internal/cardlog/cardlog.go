// Package cardlog เตือนเมื่อบัตรถูกบันทึกในสถานะที่ระบบยอมรับแต่น่าสงสัย
package cardlog

import (
	"context"

	"go-cartmaster/modules/card/internal/model"
	"go-cartmaster/shared/common/logger"

	"go.uber.org/zap"
)

func WarnSuspiciousState(ctx context.Context, card *model.Card) {
	log := logger.FromContext(ctx)
	if !card.IsKnownStatus() {
		log.Warn("card stored with unknown status",
			zap.Int64("card_id", card.ID),
			zap.String("status", card.Status))
	}
	if card.AvailableExceedsTotal() {
		log.Warn("card available limit exceeds total limit",
			zap.Int64("card_id", card.ID),
			zap.String("available_limit", card.AvailableLimit.String()),
			zap.String("total_limit", card.TotalLimit.String()))
	}
}
