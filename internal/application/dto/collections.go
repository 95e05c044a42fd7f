package dto

type RoyaltyPayload struct {
	Address string `json:"address"`
	Rate    string `json:"rate"`
}

type AddCollectionCommand struct {
	Caller          string
	Collection      string
	SupportedAssets []AssetInfoPayload
	Royalties       []RoyaltyPayload
}

// UpdateCollectionCommand is a partial update. Nil slices keep their current
// value; an empty non-nil supported-assets slice delists the collection for
// new listings.
type UpdateCollectionCommand struct {
	Caller          string
	Collection      string
	SupportedAssets *[]AssetInfoPayload
	Royalties       *[]RoyaltyPayload
}

type GetCollectionQuery struct {
	Collection string
}

type ListCollectionsQuery struct {
	StartAfter string
	Limit      *uint32
}

type CollectionResource struct {
	Collection      string             `json:"collection_address"`
	SupportedAssets []AssetInfoPayload `json:"supported_assets"`
	Royalties       []RoyaltyPayload   `json:"royalties"`
}

type CollectionListResource struct {
	Collections []CollectionResource `json:"collections"`
}
