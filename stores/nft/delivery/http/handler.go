package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/x-xyz/nftpersona/base/ctx"
	"github.com/x-xyz/nftpersona/base/delivery"
	"github.com/x-xyz/nftpersona/domain/chain"
	"github.com/x-xyz/nftpersona/domain/nft"
	"github.com/x-xyz/nftpersona/middleware"
)

const (
	msgMissingChainOrContract = "Missing chain or contract address"
	msgCollectionNotFound     = "Collection not found"
	msgNftNotFound            = "NFT not found"
)

// ChainsResponse lists the supported chain identifiers
type ChainsResponse struct {
	Chains []string `json:"chains"`
}

type handler struct {
	nft nft.Usecase
}

func New(e *echo.Echo, nft nft.Usecase) {
	h := &handler{nft}

	g := e.Group("/api")

	g.GET("/chains", h.getChains)

	g.GET("/collection", h.getCollection, middleware.IsValidAddress("chain", "contract"))

	g.GET("/nft/:tokenId", h.getNft, middleware.IsValidAddress("chain", "contract"))
}

type collectionParams struct {
	Chain    chain.Chain `query:"chain"`
	Contract string      `query:"contract"`
}

func (p *collectionParams) trim() bool {
	p.Chain = chain.Chain(strings.TrimSpace(p.Chain.String()))
	p.Contract = strings.TrimSpace(p.Contract)
	return p.Chain != "" && p.Contract != ""
}

// getChains
//
//	@Summary		List supported chains
//	@Tags			nft
//	@Produce		json
//	@Success		200	{object}	ChainsResponse
//	@Router			/api/chains [get]
func (h *handler) getChains(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	return delivery.MakeJsonResp(c, http.StatusOK, ChainsResponse{Chains: h.nft.Chains(ctx)})
}

// getCollection
//
//	@Summary		Get collection info
//	@Description	Collection metadata with its first nfts ordered by token id
//	@Tags			nft
//	@Produce		json
//	@Param			chain		query		string	true	"chain"					example(ethereum)
//	@Param			contract	query		string	true	"collection address"	example(0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d)
//	@Success		200			{object}	nft.CollectionSummary
//	@Failure		400			{object}	delivery.ErrorResponse
//	@Failure		404			{object}	delivery.ErrorResponse
//	@Router			/api/collection [get]
func (h *handler) getCollection(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := collectionParams{}
	if err := c.Bind(&p); err != nil || !p.trim() {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, msgMissingChainOrContract)
	}

	res, err := h.nft.GetCollection(ctx, p.Chain, p.Contract)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusNotFound, msgCollectionNotFound)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getNft
//
//	@Summary		Get nft with personality
//	@Description	Upstream nft metadata plus a generated_personality field
//	@Tags			nft
//	@Produce		json
//	@Param			tokenId		path		string	true	"token id"				example(42)
//	@Param			chain		query		string	true	"chain"					example(ethereum)
//	@Param			contract	query		string	true	"collection address"	example(0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d)
//	@Success		200			{object}	map[string]interface{}
//	@Failure		400			{object}	delivery.ErrorResponse
//	@Failure		404			{object}	delivery.ErrorResponse
//	@Router			/api/nft/{tokenId} [get]
func (h *handler) getNft(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := collectionParams{}
	if err := c.Bind(&p); err != nil || !p.trim() {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, msgMissingChainOrContract)
	}
	tokenId := strings.TrimSpace(c.Param("tokenId"))

	res, err := h.nft.GetNft(ctx, p.Chain, p.Contract, tokenId)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusNotFound, msgNftNotFound)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
