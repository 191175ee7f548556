package gemini

import (
	"strings"
	"time"

	"google.golang.org/genai"

	bCtx "github.com/x-xyz/nftpersona/base/ctx"
	"github.com/x-xyz/nftpersona/base/log"
	"github.com/x-xyz/nftpersona/domain"
	"golang.org/x/xerrors"
)

type client struct {
	genai   *genai.Client
	model   string
	timeout time.Duration
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (domain.Generator, error) {
	gc := &genai.ClientConfig{
		APIKey:     cfg.Apikey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HttpClient,
	}
	if cfg.Endpoint != "" {
		gc.HTTPOptions.BaseURL = strings.TrimRight(cfg.Endpoint, "/") + "/"
	}

	genClient, err := genai.NewClient(ctx, gc)
	if err != nil {
		ctx.WithField("err", err).Error("genai.NewClient failed")
		return nil, err
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	return &client{
		genai:   genClient,
		model:   model,
		timeout: cfg.Timeout,
	}, nil
}

func (c *client) Name() string {
	return "gemini"
}

func (c *client) Generate(ctx bCtx.Ctx, req *domain.GenerateRequest) (string, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()

	config := &genai.GenerateContentConfig{
		MaxOutputTokens: req.MaxTokens,
	}
	if req.System != "" {
		config.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.Temperature > 0 {
		t := req.Temperature
		config.Temperature = &t
	}

	res, err := c.genai.Models.GenerateContent(ctx, c.model, genai.Text(req.Prompt), config)
	if err != nil {
		ctx.WithFields(log.Fields{
			"model": c.model,
			"err":   err,
		}).Error("Models.GenerateContent failed")
		return "", xerrors.Errorf("gemini generate: %w", err)
	}

	// blocked prompts come back without candidates
	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil || len(res.Candidates[0].Content.Parts) == 0 {
		ctx.WithField("model", c.model).Warn("no candidates")
		return "", domain.ErrEmptyCompletion
	}

	text := res.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", domain.ErrEmptyCompletion
	}
	return text, nil
}
