package nft

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type PaymentToken struct {
	PaymentTokenId *string `json:"payment_token_id"`
	Name           *string `json:"name"`
	Symbol         *string `json:"symbol"`
	Address        *string `json:"address"`
	Decimals       *int32  `json:"decimals"`
}

type FloorPrice struct {
	MarketplaceId   *string      `json:"marketplace_id"`
	MarketplaceName *string      `json:"marketplace_name"`
	Value           json.Number  `json:"value"`
	PaymentToken    PaymentToken `json:"payment_token"`
	ValueUsdCents   *json.Number `json:"value_usd_cents,omitempty"`
	// DisplayValue is Value scaled by the payment token decimals
	DisplayValue *string `json:"display_value,omitempty"`
}

// UpstreamCollection is the collection object embedded in every SimpleHash nft
type UpstreamCollection struct {
	CollectionId       *string      `json:"collection_id"`
	Name               *string      `json:"name"`
	Description        *string      `json:"description"`
	ImageUrl           *string      `json:"image_url"`
	BannerImageUrl     *string      `json:"banner_image_url"`
	Category           *string      `json:"category"`
	ExternalUrl        *string      `json:"external_url"`
	TwitterUsername    *string      `json:"twitter_username"`
	DiscordUrl         *string      `json:"discord_url"`
	FloorPrices        []FloorPrice `json:"floor_prices"`
	DistinctOwnerCount *int64       `json:"distinct_owner_count"`
	DistinctNftCount   *int64       `json:"distinct_nft_count"`
	TotalQuantity      *int64       `json:"total_quantity"`
}

type CollectionSummary struct {
	UpstreamCollection
	Nfts []json.RawMessage `json:"nfts"`
}

// NewCollectionSummary projects the collection of the first nft in page.
// page must not be empty.
func NewCollectionSummary(page []json.RawMessage) (*CollectionSummary, error) {
	first := struct {
		Collection *UpstreamCollection `json:"collection"`
	}{}
	if err := json.Unmarshal(page[0], &first); err != nil {
		return nil, err
	}

	res := &CollectionSummary{Nfts: page}
	if first.Collection != nil {
		res.UpstreamCollection = *first.Collection
	}
	if res.FloorPrices == nil {
		res.FloorPrices = []FloorPrice{}
	}
	for i := range res.FloorPrices {
		res.FloorPrices[i].DisplayValue = res.FloorPrices[i].displayValue()
	}
	return res, nil
}

func (f FloorPrice) displayValue() *string {
	if f.PaymentToken.Decimals == nil || f.Value == "" {
		return nil
	}
	v, err := decimal.NewFromString(f.Value.String())
	if err != nil {
		return nil
	}
	s := v.Shift(-*f.PaymentToken.Decimals).String()
	return &s
}
