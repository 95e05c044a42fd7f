package entities

import (
	valueobjects "nftmarket/internal/domain/value_objects"
	apperrors "nftmarket/internal/shared_kernel/errors"
)

// Royalty is one recipient's cut of every settlement in a collection.
type Royalty struct {
	Address string
	Rate    valueobjects.Rate
}

// CollectionInfo is the per-collection market policy: which assets a listing
// may price the item in, and who receives royalties on settlement. The
// royalty list order is the payout order.
type CollectionInfo struct {
	Collection      string
	SupportedAssets []valueobjects.AssetInfo
	Royalties       []Royalty
}

// NewCollectionInfo validates the policy before it is registered or updated.
// The combined royalty rate must not exceed one, or settlements could pay
// out more than the sale price.
func NewCollectionInfo(collection string, supportedAssets []valueobjects.AssetInfo, royalties []Royalty) (CollectionInfo, *apperrors.AppError) {
	if appErr := ValidateRoyalties(royalties); appErr != nil {
		return CollectionInfo{}, appErr
	}

	return CollectionInfo{
		Collection:      collection,
		SupportedAssets: supportedAssets,
		Royalties:       royalties,
	}, nil
}

// Supports reports whether the collection accepts the asset kind as payment.
func (c CollectionInfo) Supports(info valueobjects.AssetInfo) bool {
	for _, supported := range c.SupportedAssets {
		if supported.Equal(info) {
			return true
		}
	}

	return false
}

func ValidateRoyalties(royalties []Royalty) *apperrors.AppError {
	total := valueobjects.ZeroRate()
	for _, royalty := range royalties {
		total = total.Add(royalty.Rate)
	}

	if total.GreaterThanOne() {
		return apperrors.NewInvalidRoyaltyRate()
	}

	return nil
}
