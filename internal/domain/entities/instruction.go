package entities

import (
	"math/big"

	valueobjects "nftmarket/internal/domain/value_objects"
)

// TransferType is a closed variant over the three instruction shapes the
// engine can emit. The engine never moves value itself; the host ledger
// applies these instructions atomically with the engine's state changes.
type TransferType string

const (
	TransferNative TransferType = "native_transfer"
	TransferToken  TransferType = "token_transfer"
	TransferItem   TransferType = "item_transfer"
)

// TransferInstruction is one host-native transfer the engine instructs the
// ledger to perform.
type TransferInstruction struct {
	Type            TransferType
	Recipient       string
	Denom           string
	ContractAddress string
	Amount          *big.Int
	Collection      string
	ItemID          string
}

// NewFundTransfer converts an asset into the instruction moving it to the
// recipient: a direct value transfer for native currency, a token-transfer
// call for fungible tokens.
func NewFundTransfer(asset valueobjects.Asset, recipient string) TransferInstruction {
	amount := big.NewInt(0)
	if asset.Amount != nil {
		amount = new(big.Int).Set(asset.Amount)
	}

	switch asset.Info.Kind {
	case valueobjects.AssetKindToken:
		return TransferInstruction{
			Type:            TransferToken,
			Recipient:       recipient,
			ContractAddress: asset.Info.ContractAddress,
			Amount:          amount,
		}
	default:
		return TransferInstruction{
			Type:      TransferNative,
			Recipient: recipient,
			Denom:     asset.Info.Denom,
			Amount:    amount,
		}
	}
}

// NewItemTransfer builds the custody instruction moving one collectible item
// out of escrow to the recipient.
func NewItemTransfer(collection, itemID, recipient string) TransferInstruction {
	return TransferInstruction{
		Type:       TransferItem,
		Recipient:  recipient,
		Collection: collection,
		ItemID:     itemID,
	}
}
