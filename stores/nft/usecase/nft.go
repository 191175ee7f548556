package usecase

import (
	"github.com/x-xyz/nftpersona/base/ctx"
	"github.com/x-xyz/nftpersona/base/log"
	"github.com/x-xyz/nftpersona/base/metrics"
	traitprojector "github.com/x-xyz/nftpersona/base/trait_projector"
	"github.com/x-xyz/nftpersona/domain"
	"github.com/x-xyz/nftpersona/domain/chain"
	"github.com/x-xyz/nftpersona/domain/nft"
)

type NftUseCaseCfg struct {
	Repo        nft.Repository
	Generator   domain.Generator
	MaxTokens   int32
	Temperature float32
}

type impl struct {
	repo        nft.Repository
	generator   domain.Generator
	maxTokens   int32
	temperature float32
	metrics     metrics.Service
}

func New(cfg *NftUseCaseCfg) nft.Usecase {
	return &impl{
		repo:        cfg.Repo,
		generator:   cfg.Generator,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		metrics:     metrics.New("llm"),
	}
}

func (im *impl) Chains(c ctx.Ctx) []string {
	return chain.Names()
}

func (im *impl) GetCollection(c ctx.Ctx, ch chain.Chain, contract string) (*nft.CollectionSummary, error) {
	res, err := im.repo.FetchCollection(c, ch, contract)
	if err != nil {
		c.WithFields(log.Fields{
			"chain":    ch,
			"contract": contract,
			"err":      err,
		}).Warn("repo.FetchCollection failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) GetNft(c ctx.Ctx, ch chain.Chain, contract, tokenId string) (nft.Record, error) {
	record, err := im.repo.FetchNft(c, ch, contract, tokenId)
	if err != nil {
		c.WithFields(log.Fields{
			"chain":    ch,
			"contract": contract,
			"tokenId":  tokenId,
			"err":      err,
		}).Warn("repo.FetchNft failed")
		return nil, err
	}

	// the upstream token id wins over the path value
	if id := record.TokenId(); id != "" {
		tokenId = id
	}
	return record.WithPersonality(im.personality(c, tokenId, record)), nil
}

// personality never fails, generation errors yield nft.FallbackPersonality
func (im *impl) personality(c ctx.Ctx, tokenId string, record nft.Record) string {
	attrs, err := record.Attributes()
	if err != nil {
		c.WithFields(log.Fields{
			"tokenId": tokenId,
			"err":     err,
		}).Warn("record.Attributes failed, using no attributes")
		attrs = nft.Attributes{}
	}

	timer := im.metrics.BumpTime("generate.time", "provider", im.generator.Name(), "kind", "personality")
	text, err := im.generator.Generate(c, &domain.GenerateRequest{
		Prompt:      traitprojector.PersonalityPrompt(tokenId, attrs),
		MaxTokens:   im.maxTokens,
		Temperature: im.temperature,
	})
	timer.End()
	if err != nil {
		im.metrics.BumpSum("generate.err", 1, "provider", im.generator.Name(), "kind", "personality")
		c.WithFields(log.Fields{
			"tokenId":  tokenId,
			"provider": im.generator.Name(),
			"err":      err,
		}).Error("generator.Generate failed, using fallback personality")
		return nft.FallbackPersonality
	}
	return text
}
