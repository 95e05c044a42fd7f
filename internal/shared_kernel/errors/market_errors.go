package apperrors

// The marketplace error catalog is closed: every failure a market operation
// can surface maps to exactly one of these constructors. Callers must not
// invent ad-hoc codes for settlement-path failures.

func NewCollectionExist(collection string) *AppError {
	return NewConflict(
		"collection_exists",
		"collection is already registered",
		map[string]any{"collection_address": collection},
	)
}

func NewUnauthorized() *AppError {
	return NewForbidden(
		"unauthorized",
		"caller is not allowed to perform this operation",
		nil,
	)
}

func NewUnsupportedAsset() *AppError {
	return NewValidation(
		"unsupported_asset",
		"asset is not supported by the collection",
		nil,
	)
}

func NewInvalidRoyaltyRate() *AppError {
	return NewValidation(
		"invalid_royalty_rate",
		"sum of the royalty rates is higher than 100%",
		nil,
	)
}

func NewInvalidFeeRate() *AppError {
	return NewValidation(
		"invalid_fee_rate",
		"cancel fee rate can't exceed 1",
		nil,
	)
}

func NewNoFixedPrice() *AppError {
	return NewValidation(
		"no_fixed_price",
		"the order doesn't have a fixed price option",
		nil,
	)
}

func NewNotAuction() *AppError {
	return NewValidation(
		"not_auction",
		"the order is not an auction",
		nil,
	)
}

func NewTokenMismatch() *AppError {
	return NewValidation(
		"token_mismatch",
		"token type or balance mismatch with price",
		nil,
	)
}

func NewAssetInfoMismatch() *AppError {
	return NewValidation(
		"asset_info_mismatch",
		"asset type mismatch",
		nil,
	)
}

func NewExpired() *AppError {
	return NewValidation(
		"expired",
		"given expiration is already expired or order is already expired",
		nil,
	)
}

func NewMaxDuration() *AppError {
	return NewValidation(
		"max_duration",
		"exceeds max auction duration",
		nil,
	)
}

func NewNeverExpiration() *AppError {
	return NewValidation(
		"never_expiration",
		"expiration never is not allowed",
		nil,
	)
}

func NewNotExpired() *AppError {
	return NewValidation(
		"not_expired",
		"auction is not expired",
		nil,
	)
}

func NewCantCancel() *AppError {
	return NewValidation(
		"cant_cancel",
		"order can't be cancelled",
		nil,
	)
}

// NewCancelFeeMismatch reports the exact fee that is due so the seller can
// retry with the right amount. feeAsset is the JSON form of the fee asset.
func NewCancelFeeMismatch(feeAsset map[string]any) *AppError {
	return NewValidation(
		"cancel_fee_mismatch",
		"supplied cancel fee does not match the fee due",
		map[string]any{"fee_asset": feeAsset},
	)
}

// NewMinPrice reports the computed bid floor so the bidder can retry.
func NewMinPrice(minBidAmount string) *AppError {
	return NewValidation(
		"min_price",
		"you must bid higher than or equal to the min bid amount",
		map[string]any{"min_bid_amount": minBidAmount},
	)
}

func NewOrderNotFound(orderID uint64) *AppError {
	return NewNotFound(
		"order_not_found",
		"order does not exist",
		map[string]any{"order_id": orderID},
	)
}

func NewCollectionNotFound(collection string) *AppError {
	return NewNotFound(
		"collection_not_found",
		"collection is not registered",
		map[string]any{"collection_address": collection},
	)
}

func NewMarketNotInitialized() *AppError {
	return NewNotFound(
		"market_not_initialized",
		"market config has not been set up",
		nil,
	)
}

func NewOverflow(operation string) *AppError {
	return NewInternal(
		"amount_overflow",
		"integer overflow or underflow in amount arithmetic",
		map[string]any{"operation": operation},
	)
}
