package out

import (
	"context"

	"nftmarket/internal/application/dto"
)

// SettlementEventPublisher broadcasts a committed operation to stream
// subscribers. Publishing is fire-and-forget: it returns no error and must
// never fail the operation.
type SettlementEventPublisher interface {
	Publish(ctx context.Context, event dto.SettlementEvent)
}
