package chat

import (
	"github.com/x-xyz/nftpersona/base/ctx"
	"github.com/x-xyz/nftpersona/domain/chain"
)

type Language string

const (
	LanguageEnUS Language = "en-US"
	LanguageEsES Language = "es-ES"
)

type Request struct {
	UserInput string      `json:"userInput" validate:"required"`
	Language  Language    `json:"language"`
	NftId     string      `json:"nft_id" validate:"required"`
	Chain     chain.Chain `json:"chain"`
	Contract  string      `json:"contract"`
}

type Response struct {
	Response string `json:"response"`
}

type Usecase interface {
	// Reply answers the user as the nft character. chain and contract fall
	// back to the configured default collection when empty.
	Reply(c ctx.Ctx, req *Request) (*Response, error)
}
