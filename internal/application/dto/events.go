package dto

import "time"

// SettlementEvent is broadcast to stream subscribers after a mutating
// operation commits.
type SettlementEvent struct {
	Action       string                        `json:"action"`
	OrderID      uint64                        `json:"order_id,omitempty"`
	Attributes   map[string]string             `json:"attributes,omitempty"`
	Instructions []TransferInstructionResource `json:"instructions,omitempty"`
	OccurredAt   time.Time                     `json:"occurred_at"`
}
