package nft

import (
	"github.com/x-xyz/nftpersona/base/ctx"
	"github.com/x-xyz/nftpersona/domain/chain"
)

// FallbackPersonality replaces a personality the generator failed to produce
const FallbackPersonality = "A unique character with a gentle soul and artistic spirit."

// CollectionPageSize is the number of nfts fetched with a collection
const CollectionPageSize = 12

// Repository fetches metadata upstream. Any upstream failure is reported as
// domain.ErrNotFound.
type Repository interface {
	FetchCollection(c ctx.Ctx, ch chain.Chain, contract string) (*CollectionSummary, error)
	FetchNft(c ctx.Ctx, ch chain.Chain, contract, tokenId string) (Record, error)
}

type Usecase interface {
	Chains(c ctx.Ctx) []string
	GetCollection(c ctx.Ctx, ch chain.Chain, contract string) (*CollectionSummary, error)
	// GetNft returns the record with generated_personality attached
	GetNft(c ctx.Ctx, ch chain.Chain, contract, tokenId string) (Record, error)
}
