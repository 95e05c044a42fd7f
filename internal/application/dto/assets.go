package dto

import "time"

// AssetInfoPayload is the wire form of an asset kind. Kind selects which of
// the remaining fields is meaningful.
type AssetInfoPayload struct {
	Kind            string `json:"kind"`
	Denom           string `json:"denom,omitempty"`
	ContractAddress string `json:"contract_address,omitempty"`
}

type AssetPayload struct {
	Info   AssetInfoPayload `json:"info"`
	Amount string           `json:"amount"`
}

// CoinPayload is one native-currency entry of the funds the host ledger
// attached to a request.
type CoinPayload struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

// ExpirationPayload is a one-of. Never is accepted on the wire only so the
// engine can reject it explicitly.
type ExpirationPayload struct {
	AtHeight *uint64    `json:"at_height,omitempty"`
	AtTime   *time.Time `json:"at_time,omitempty"`
	Never    *struct{}  `json:"never,omitempty"`
}

// BlockInfoPayload is the host-supplied block context every time-sensitive
// operation is evaluated against.
type BlockInfoPayload struct {
	Height uint64    `json:"height"`
	Time   time.Time `json:"time"`
}
