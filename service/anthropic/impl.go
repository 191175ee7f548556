package anthropic

import (
	"errors"
	"net/http"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	bCtx "github.com/x-xyz/nftpersona/base/ctx"
	"github.com/x-xyz/nftpersona/base/log"
	"github.com/x-xyz/nftpersona/domain"
)

type client struct {
	messages sdk.MessageService
	timeout  time.Duration
	model    string
}

func NewClient(cfg *ClientCfg) domain.Generator {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	httpClient := cfg.HttpClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	c := sdk.NewClient(
		option.WithAPIKey(cfg.Apikey),
		option.WithBaseURL(endpoint),
		option.WithHTTPClient(httpClient),
		option.WithMaxRetries(0),
	)
	return &client{
		messages: c.Messages,
		timeout:  cfg.Timeout,
		model:    model,
	}
}

func (c *client) Name() string {
	return "anthropic"
}

func (c *client) Generate(ctx bCtx.Ctx, req *domain.GenerateRequest) (string, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()

	params := sdk.MessageNewParams{
		Model:     sdk.Model(c.model),
		MaxTokens: int64(req.MaxTokens),
		Messages:  []sdk.MessageParam{sdk.NewUserMessage(sdk.NewTextBlock(req.Prompt))},
	}
	if req.System != "" {
		params.System = []sdk.TextBlockParam{{Text: req.System}}
	}
	if req.Temperature > 0 {
		params.Temperature = sdk.Float(float64(req.Temperature))
	}

	res, err := c.messages.New(ctx, params)
	if err != nil {
		var sdkErr *sdk.Error
		if errors.As(err, &sdkErr) {
			apiErr := toAPIError(sdkErr)
			ctx.WithFields(log.Fields{
				"statusCode": apiErr.StatusCode,
				"errType":    apiErr.ErrType,
				"requestId":  apiErr.RequestId,
			}).Error("messages.New failed")
			return "", apiErr
		}
		ctx.WithField("err", err).Error("messages.New failed")
		return "", err
	}

	for _, block := range res.Content {
		if block.Type == "text" && block.Text != "" {
			return block.Text, nil
		}
	}
	ctx.WithFields(log.Fields{
		"id":         res.ID,
		"stopReason": res.StopReason,
	}).Warn("no text content")
	return "", domain.ErrEmptyCompletion
}

// toAPIError reads the error object of the response body, ex:
// {"type":"error","error":{"type":"overloaded_error","message":"Overloaded"}}
func toAPIError(e *sdk.Error) *APIError {
	apiErr := &APIError{
		StatusCode: e.StatusCode,
		Message:    http.StatusText(e.StatusCode),
		RequestId:  e.RequestID,
	}
	body := sdk.ErrorResponse{}
	if body.UnmarshalJSON([]byte(e.RawJSON())) == nil && body.Error.Message != "" {
		apiErr.ErrType = body.Error.Type
		apiErr.Message = body.Error.Message
	}
	return apiErr
}
