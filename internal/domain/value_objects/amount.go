package valueobjects

import (
	"math/big"
	"regexp"

	apperrors "nftmarket/internal/shared_kernel/errors"
)

var amountPattern = regexp.MustCompile(`^[0-9]{1,39}$`)

// maxUint128 bounds every monetary amount in the engine. Amounts travel as
// decimal strings on the wire and as *big.Int in the domain.
var maxUint128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

func ParseAmount(raw string) (*big.Int, *apperrors.AppError) {
	if !amountPattern.MatchString(raw) {
		return nil, apperrors.NewValidation(
			"invalid_request",
			"amount must be an integer string with 1 to 39 digits",
			map[string]any{"field": "amount"},
		)
	}

	amount, ok := new(big.Int).SetString(raw, 10)
	if !ok || amount.Cmp(maxUint128) > 0 {
		return nil, apperrors.NewValidation(
			"invalid_request",
			"amount exceeds the 128-bit range",
			map[string]any{"field": "amount"},
		)
	}

	return amount, nil
}

func FormatAmount(amount *big.Int) string {
	if amount == nil {
		return "0"
	}

	return amount.String()
}
