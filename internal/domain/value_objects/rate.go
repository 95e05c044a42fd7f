package valueobjects

import (
	"math/big"
	"regexp"
	"strings"

	apperrors "nftmarket/internal/shared_kernel/errors"
)

// Rate is a non-negative fixed-point fraction with 18 decimal places, the
// same scale the settlement math was specified against. All royalty, fee and
// minimum-increase arithmetic goes through Rate so rounding is defined in
// exactly one place: multiplication rounds down.
type Rate struct {
	num *big.Int
}

const rateDecimalPlaces = 18

var (
	rateUnit    = new(big.Int).Exp(big.NewInt(10), big.NewInt(rateDecimalPlaces), nil)
	ratePattern = regexp.MustCompile(`^[0-9]+(\.[0-9]{1,18})?$`)
)

func ZeroRate() Rate {
	return Rate{num: big.NewInt(0)}
}

func OneRate() Rate {
	return Rate{num: new(big.Int).Set(rateUnit)}
}

func ParseRate(raw string) (Rate, *apperrors.AppError) {
	trimmed := strings.TrimSpace(raw)
	if !ratePattern.MatchString(trimmed) {
		return Rate{}, apperrors.NewValidation(
			"invalid_request",
			"rate must be a non-negative decimal with at most 18 fractional digits",
			map[string]any{"field": "rate", "value": raw},
		)
	}

	whole := trimmed
	frac := ""
	if idx := strings.IndexByte(trimmed, '.'); idx >= 0 {
		whole = trimmed[:idx]
		frac = trimmed[idx+1:]
	}

	num, ok := new(big.Int).SetString(whole, 10)
	if !ok {
		return Rate{}, apperrors.NewValidation(
			"invalid_request",
			"rate is not a valid decimal",
			map[string]any{"field": "rate", "value": raw},
		)
	}
	num.Mul(num, rateUnit)

	if frac != "" {
		padded := frac + strings.Repeat("0", rateDecimalPlaces-len(frac))
		fracNum, ok := new(big.Int).SetString(padded, 10)
		if !ok {
			return Rate{}, apperrors.NewValidation(
				"invalid_request",
				"rate is not a valid decimal",
				map[string]any{"field": "rate", "value": raw},
			)
		}
		num.Add(num, fracNum)
	}

	return Rate{num: num}, nil
}

// MustRate parses a rate literal and panics on failure. For constants and
// tests only.
func MustRate(raw string) Rate {
	rate, appErr := ParseRate(raw)
	if appErr != nil {
		panic(appErr.Message)
	}

	return rate
}

// MulFloor returns floor(amount * r). The floor matches the fixed-point
// multiplication the settlement invariants are written against.
func (r Rate) MulFloor(amount *big.Int) *big.Int {
	if r.num == nil || amount == nil {
		return big.NewInt(0)
	}

	product := new(big.Int).Mul(amount, r.num)
	return product.Quo(product, rateUnit)
}

func (r Rate) Add(other Rate) Rate {
	return Rate{num: new(big.Int).Add(r.numOrZero(), other.numOrZero())}
}

// AddOne returns 1 + r, the multiplier for the minimum-bid floor.
func (r Rate) AddOne() Rate {
	return Rate{num: new(big.Int).Add(r.numOrZero(), rateUnit)}
}

func (r Rate) GreaterThanOne() bool {
	return r.numOrZero().Cmp(rateUnit) > 0
}

func (r Rate) IsZero() bool {
	return r.numOrZero().Sign() == 0
}

func (r Rate) Equal(other Rate) bool {
	return r.numOrZero().Cmp(other.numOrZero()) == 0
}

// String renders the canonical decimal form with trailing zeros trimmed,
// e.g. "0.02" or "1".
func (r Rate) String() string {
	num := r.numOrZero()
	whole := new(big.Int)
	frac := new(big.Int)
	whole.QuoRem(num, rateUnit, frac)

	if frac.Sign() == 0 {
		return whole.String()
	}

	fracDigits := frac.String()
	padded := strings.Repeat("0", rateDecimalPlaces-len(fracDigits)) + fracDigits
	padded = strings.TrimRight(padded, "0")

	return whole.String() + "." + padded
}

func (r Rate) numOrZero() *big.Int {
	if r.num == nil {
		return big.NewInt(0)
	}

	return r.num
}
