package use_cases

import (
	"context"

	"nftmarket/internal/application/dto"
	portsout "nftmarket/internal/application/ports/out"
)

// publishEvent mirrors a successful mutating operation onto the event
// stream. A nil publisher disables streaming.
func publishEvent(ctx context.Context, publisher portsout.SettlementEventPublisher, clock Clock, output dto.MarketActionOutput) {
	if publisher == nil {
		return
	}

	publisher.Publish(ctx, dto.SettlementEvent{
		Action:       output.Action,
		OrderID:      output.OrderID,
		Attributes:   output.Attributes,
		Instructions: output.Instructions,
		OccurredAt:   clock.NowUTC(),
	})
}
