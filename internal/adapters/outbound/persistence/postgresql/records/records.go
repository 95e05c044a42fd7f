// Package records holds the JSONB column forms of the market's domain
// values. Amounts and rates travel as decimal strings so no precision is
// lost between Go and Postgres.
package records

import (
	"time"

	"nftmarket/internal/domain/entities"
	valueobjects "nftmarket/internal/domain/value_objects"
	apperrors "nftmarket/internal/shared_kernel/errors"
)

type AssetInfoRecord struct {
	Kind            string `json:"kind"`
	Denom           string `json:"denom,omitempty"`
	ContractAddress string `json:"contract_address,omitempty"`
}

type AssetRecord struct {
	Info   AssetInfoRecord `json:"info"`
	Amount string          `json:"amount"`
}

type ExpirationRecord struct {
	Kind   string    `json:"kind"`
	Height uint64    `json:"height,omitempty"`
	Time   time.Time `json:"time,omitzero"`
}

type AuctionRecord struct {
	HighestBid AssetRecord      `json:"highest_bid"`
	Bidder     string           `json:"bidder,omitempty"`
	Expiration ExpirationRecord `json:"expiration"`
}

type RoyaltyRecord struct {
	Address string `json:"address"`
	Rate    string `json:"rate"`
}

func EncodeAssetInfo(info valueobjects.AssetInfo) AssetInfoRecord {
	return AssetInfoRecord{
		Kind:            string(info.Kind),
		Denom:           info.Denom,
		ContractAddress: info.ContractAddress,
	}
}

func DecodeAssetInfo(record AssetInfoRecord) (valueobjects.AssetInfo, *apperrors.AppError) {
	switch valueobjects.AssetKind(record.Kind) {
	case valueobjects.AssetKindNative:
		return valueobjects.NewNativeAssetInfo(record.Denom)
	case valueobjects.AssetKindToken:
		return valueobjects.NewTokenAssetInfo(record.ContractAddress)
	default:
		return valueobjects.AssetInfo{}, apperrors.NewInternal(
			"asset_record_invalid",
			"stored asset record has an unknown kind",
			map[string]any{"kind": record.Kind},
		)
	}
}

func EncodeAsset(asset valueobjects.Asset) AssetRecord {
	return AssetRecord{
		Info:   EncodeAssetInfo(asset.Info),
		Amount: valueobjects.FormatAmount(asset.Amount),
	}
}

func DecodeAsset(record AssetRecord) (valueobjects.Asset, *apperrors.AppError) {
	info, appErr := DecodeAssetInfo(record.Info)
	if appErr != nil {
		return valueobjects.Asset{}, appErr
	}
	amount, appErr := valueobjects.ParseAmount(record.Amount)
	if appErr != nil {
		return valueobjects.Asset{}, appErr
	}

	return valueobjects.NewAsset(info, amount), nil
}

func EncodeExpiration(expiration valueobjects.Expiration) ExpirationRecord {
	return ExpirationRecord{
		Kind:   string(expiration.Kind),
		Height: expiration.Height,
		Time:   expiration.Time,
	}
}

func DecodeExpiration(record ExpirationRecord) (valueobjects.Expiration, *apperrors.AppError) {
	switch valueobjects.ExpirationKind(record.Kind) {
	case valueobjects.ExpirationAtHeight:
		return valueobjects.NewHeightExpiration(record.Height), nil
	case valueobjects.ExpirationAtTime:
		return valueobjects.NewTimeExpiration(record.Time), nil
	default:
		return valueobjects.Expiration{}, apperrors.NewInternal(
			"expiration_record_invalid",
			"stored expiration record has an unknown kind",
			map[string]any{"kind": record.Kind},
		)
	}
}

func EncodeAuction(auction entities.AuctionInfo) AuctionRecord {
	return AuctionRecord{
		HighestBid: EncodeAsset(auction.HighestBid),
		Bidder:     auction.Bidder,
		Expiration: EncodeExpiration(auction.Expiration),
	}
}

func DecodeAuction(record AuctionRecord) (entities.AuctionInfo, *apperrors.AppError) {
	highestBid, appErr := DecodeAsset(record.HighestBid)
	if appErr != nil {
		return entities.AuctionInfo{}, appErr
	}
	expiration, appErr := DecodeExpiration(record.Expiration)
	if appErr != nil {
		return entities.AuctionInfo{}, appErr
	}

	return entities.AuctionInfo{
		HighestBid: highestBid,
		Bidder:     record.Bidder,
		Expiration: expiration,
	}, nil
}

func EncodeAssetInfos(infos []valueobjects.AssetInfo) []AssetInfoRecord {
	encoded := make([]AssetInfoRecord, 0, len(infos))
	for _, info := range infos {
		encoded = append(encoded, EncodeAssetInfo(info))
	}

	return encoded
}

func DecodeAssetInfos(encoded []AssetInfoRecord) ([]valueobjects.AssetInfo, *apperrors.AppError) {
	infos := make([]valueobjects.AssetInfo, 0, len(encoded))
	for _, record := range encoded {
		info, appErr := DecodeAssetInfo(record)
		if appErr != nil {
			return nil, appErr
		}
		infos = append(infos, info)
	}

	return infos, nil
}

func EncodeRoyalties(royalties []entities.Royalty) []RoyaltyRecord {
	encoded := make([]RoyaltyRecord, 0, len(royalties))
	for _, royalty := range royalties {
		encoded = append(encoded, RoyaltyRecord{Address: royalty.Address, Rate: royalty.Rate.String()})
	}

	return encoded
}

func DecodeRoyalties(encoded []RoyaltyRecord) ([]entities.Royalty, *apperrors.AppError) {
	royalties := make([]entities.Royalty, 0, len(encoded))
	for _, record := range encoded {
		rate, appErr := valueobjects.ParseRate(record.Rate)
		if appErr != nil {
			return nil, appErr
		}
		royalties = append(royalties, entities.Royalty{Address: record.Address, Rate: rate})
	}

	return royalties, nil
}
