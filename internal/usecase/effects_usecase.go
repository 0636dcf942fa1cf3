package usecase

import (
	"context"

	"stempel/internal/domain/service"
)

// ScanEffectsUsecase applies the asynchronous side effects of a committed
// accrual: referral completion, wallet pass refresh and level-change push.
// Implementations must be idempotent because the event bus may redeliver.
type ScanEffectsUsecase interface {
	// HandleScanEvent processes one delivered scan event. A returned error
	// signals the bus to retry; nil acknowledges the message.
	HandleScanEvent(ctx context.Context, event *service.ScanEvent) error
}
