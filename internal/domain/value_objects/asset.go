package valueobjects

import (
	"math/big"
	"regexp"
	"strings"

	apperrors "nftmarket/internal/shared_kernel/errors"
)

// AssetKind is a closed variant: settlement value is either the host's
// native currency or a fungible-token contract. Every comparison and
// transfer site switches exhaustively over it.
type AssetKind string

const (
	AssetKindNative AssetKind = "native"
	AssetKindToken  AssetKind = "token"
)

var denomPattern = regexp.MustCompile(`^[a-z][a-z0-9/._-]{2,127}$`)

// AssetInfo identifies a kind of settlement value without an amount.
type AssetInfo struct {
	Kind            AssetKind
	Denom           string
	ContractAddress string
}

func NewNativeAssetInfo(denom string) (AssetInfo, *apperrors.AppError) {
	normalized := strings.TrimSpace(denom)
	if !denomPattern.MatchString(normalized) {
		return AssetInfo{}, apperrors.NewValidation(
			"invalid_request",
			"denom is not a valid native denomination",
			map[string]any{"field": "denom", "value": denom},
		)
	}

	return AssetInfo{Kind: AssetKindNative, Denom: normalized}, nil
}

func NewTokenAssetInfo(contractAddress string) (AssetInfo, *apperrors.AppError) {
	canonical, appErr := NormalizeAddress("contract_address", contractAddress)
	if appErr != nil {
		return AssetInfo{}, appErr
	}

	return AssetInfo{Kind: AssetKindToken, ContractAddress: canonical}, nil
}

// Equal reports whether two asset kinds are interchangeable for payment.
func (i AssetInfo) Equal(other AssetInfo) bool {
	if i.Kind != other.Kind {
		return false
	}

	switch i.Kind {
	case AssetKindNative:
		return i.Denom == other.Denom
	case AssetKindToken:
		return i.ContractAddress == other.ContractAddress
	default:
		return false
	}
}

// Asset pairs an asset kind with an amount. It is a transient value object:
// it is only ever stored embedded in an order.
type Asset struct {
	Info   AssetInfo
	Amount *big.Int
}

func NewAsset(info AssetInfo, amount *big.Int) Asset {
	if amount == nil {
		amount = big.NewInt(0)
	}

	return Asset{Info: info, Amount: new(big.Int).Set(amount)}
}

func (a Asset) Equal(other Asset) bool {
	return a.Info.Equal(other.Info) && a.amountOrZero().Cmp(other.amountOrZero()) == 0
}

func (a Asset) WithAmount(amount *big.Int) Asset {
	return NewAsset(a.Info, amount)
}

func (a Asset) IsZero() bool {
	return a.amountOrZero().Sign() == 0
}

func (a Asset) amountOrZero() *big.Int {
	if a.Amount == nil {
		return big.NewInt(0)
	}

	return a.Amount
}

// Coin is a native-currency amount attached to a request by the host ledger.
type Coin struct {
	Denom  string
	Amount *big.Int
}

// AssertSentNativeFunds enforces the exact-payment rule for native-currency
// assets: the attached funds must contain the asset's denom with exactly the
// asset's amount, and a zero-amount requirement forbids attaching that denom
// at all. Token-kind assets are checked against deposit notifications
// elsewhere, so they pass here.
func (a Asset) AssertSentNativeFunds(funds []Coin) *apperrors.AppError {
	if a.Info.Kind != AssetKindNative {
		return nil
	}

	for _, coin := range funds {
		if coin.Denom != a.Info.Denom {
			continue
		}

		var attached *big.Int
		if coin.Amount != nil {
			attached = coin.Amount
		} else {
			attached = big.NewInt(0)
		}
		if a.amountOrZero().Cmp(attached) != 0 {
			return apperrors.NewTokenMismatch()
		}

		return nil
	}

	if a.amountOrZero().Sign() != 0 {
		return apperrors.NewTokenMismatch()
	}

	return nil
}
