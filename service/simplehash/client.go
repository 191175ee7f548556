package simplehash

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	bCtx "github.com/x-xyz/nftpersona/base/ctx"
	"github.com/x-xyz/nftpersona/domain/nft"
)

var (
	ErrStatusCodeNotOk = errors.New("http.status not 2xx")
)

const (
	DefaultEndpoint = "https://api.simplehash.com/api/v0"

	OrderByTokenId = "token_id"
)

// NftsPage is one page of the nfts by contract listing
type NftsPage struct {
	Next     *string           `json:"next"`
	Previous *string           `json:"previous"`
	Nfts     []json.RawMessage `json:"nfts"`
}

type Client interface {
	GetNftsByContract(ctx bCtx.Ctx, chain, contract string, limit int, orderBy string) (*NftsPage, error)
	GetNft(ctx bCtx.Ctx, chain, contract, tokenId string) (nft.Record, error)
}

type ClientCfg struct {
	HttpClient http.Client
	Timeout    time.Duration
	Apikey     string
	// Endpoint defaults to DefaultEndpoint
	Endpoint string
}
