package usecase

import (
	"golang.org/x/xerrors"

	"github.com/x-xyz/nftpersona/base/ctx"
	"github.com/x-xyz/nftpersona/base/log"
	"github.com/x-xyz/nftpersona/base/metrics"
	traitprojector "github.com/x-xyz/nftpersona/base/trait_projector"
	"github.com/x-xyz/nftpersona/domain"
	"github.com/x-xyz/nftpersona/domain/chain"
	"github.com/x-xyz/nftpersona/domain/chat"
	"github.com/x-xyz/nftpersona/domain/nft"
)

type ChatUseCaseCfg struct {
	Repo        nft.Repository
	Generator   domain.Generator
	MaxTokens   int32
	Temperature float32
	// DefaultChain and DefaultContract locate the nft when a request omits them
	DefaultChain    chain.Chain
	DefaultContract string
}

type impl struct {
	repo            nft.Repository
	generator       domain.Generator
	maxTokens       int32
	temperature     float32
	defaultChain    chain.Chain
	defaultContract string
	metrics         metrics.Service
}

func New(cfg *ChatUseCaseCfg) chat.Usecase {
	return &impl{
		repo:            cfg.Repo,
		generator:       cfg.Generator,
		maxTokens:       cfg.MaxTokens,
		temperature:     cfg.Temperature,
		defaultChain:    cfg.DefaultChain,
		defaultContract: cfg.DefaultContract,
		metrics:         metrics.New("llm"),
	}
}

func (im *impl) Reply(c ctx.Ctx, req *chat.Request) (*chat.Response, error) {
	if req.UserInput == "" || req.NftId == "" {
		return nil, domain.ErrBadParamInput
	}

	ch, contract := req.Chain, req.Contract
	if ch == "" {
		ch = im.defaultChain
	}
	if contract == "" {
		contract = im.defaultContract
	}
	if ch == "" || contract == "" {
		return nil, domain.ErrBadParamInput
	}

	record, err := im.repo.FetchNft(c, ch, contract, req.NftId)
	if err != nil {
		c.WithFields(log.Fields{
			"chain":    ch,
			"contract": contract,
			"nftId":    req.NftId,
			"err":      err,
		}).Warn("repo.FetchNft failed")
		return nil, err
	}

	attrs, err := record.Attributes()
	if err != nil {
		c.WithFields(log.Fields{
			"nftId": req.NftId,
			"err":   err,
		}).Warn("record.Attributes failed, using no attributes")
		attrs = nft.Attributes{}
	}
	clauses := traitprojector.PersonaClauses(nft.NewTraitMap(attrs))

	timer := im.metrics.BumpTime("generate.time", "provider", im.generator.Name(), "kind", "chat")
	text, err := im.generator.Generate(c, &domain.GenerateRequest{
		System:      traitprojector.ChatSystemPrompt(req.NftId, clauses, req.Language),
		Prompt:      req.UserInput,
		MaxTokens:   im.maxTokens,
		Temperature: im.temperature,
	})
	timer.End()
	if err != nil {
		im.metrics.BumpSum("generate.err", 1, "provider", im.generator.Name(), "kind", "chat")
		c.WithFields(log.Fields{
			"nftId":    req.NftId,
			"provider": im.generator.Name(),
			"err":      err,
		}).Error("generator.Generate failed")
		return nil, xerrors.Errorf("chat reply: %w", err)
	}

	return &chat.Response{Response: text}, nil
}
