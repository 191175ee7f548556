package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/x-xyz/nftpersona/base/ctx"
	"github.com/x-xyz/nftpersona/base/delivery"
	"github.com/x-xyz/nftpersona/base/validator"
	"github.com/x-xyz/nftpersona/domain"
	"github.com/x-xyz/nftpersona/domain/chain"
	"github.com/x-xyz/nftpersona/domain/chat"
)

const (
	msgMissingUserInput       = "Missing user input"
	msgMissingNftId           = "Missing nft_id"
	msgMissingChainOrContract = "Missing chain or contract address"
	msgNftNotFound            = "NFT not found"
)

// missing field json name -> message, in reporting priority
var missingMessages = []struct {
	field string
	msg   string
}{
	{"userInput", msgMissingUserInput},
	{"nft_id", msgMissingNftId},
}

type handler struct {
	chat chat.Usecase
}

func New(e *echo.Echo, chat chat.Usecase) {
	h := &handler{chat}

	g := e.Group("/api")

	g.POST("/chat", h.reply)
}

// reply
//
//	@Summary		Chat with an nft
//	@Description	Replies in character, the persona is built from the nft traits
//	@Tags			chat
//	@Accept			json
//	@Produce		json
//	@Param			body	body		chat.Request	true	"message"
//	@Success		200		{object}	chat.Response
//	@Failure		400		{object}	delivery.ErrorResponse
//	@Failure		404		{object}	delivery.ErrorResponse
//	@Failure		500		{object}	delivery.ErrorResponse
//	@Router			/api/chat [post]
func (h *handler) reply(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	req := &chat.Request{}
	if err := c.Bind(req); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidJsonFormat.Error())
	}
	req.UserInput = strings.TrimSpace(req.UserInput)
	req.NftId = strings.TrimSpace(req.NftId)
	req.Chain = chain.Chain(strings.TrimSpace(req.Chain.String()))
	req.Contract = strings.TrimSpace(req.Contract)

	if err := c.Validate(req); err != nil {
		missing := validator.MissingFields(err)
		for _, m := range missingMessages {
			for _, f := range missing {
				if f == m.field {
					return delivery.MakeJsonResp(c, http.StatusBadRequest, m.msg)
				}
			}
		}
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	if req.Contract != "" && req.Chain.IsEvm() && !validator.IsValidAddress(req.Contract) {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAddress.Error())
	}

	res, err := h.chat.Reply(ctx, req)
	switch {
	case err == nil:
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	case errors.Is(err, domain.ErrNotFound):
		return delivery.MakeJsonResp(c, http.StatusNotFound, msgNftNotFound)
	case errors.Is(err, domain.ErrBadParamInput):
		return delivery.MakeJsonResp(c, http.StatusBadRequest, msgMissingChainOrContract)
	default:
		ctx.WithField("err", err).Error("chat.Reply failed")
		return delivery.MakeTypedErrorResp(c, err)
	}
}
