package anthropic

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	bCtx "github.com/x-xyz/nftpersona/base/ctx"
	"github.com/x-xyz/nftpersona/domain"
)

func newTestClient(t *testing.T, h http.HandlerFunc) domain.Generator {
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(&ClientCfg{
		HttpClient: &http.Client{},
		Timeout:    time.Second,
		Apikey:     "api_key",
		Endpoint:   srv.URL,
	})
}

type sentMessage struct {
	Model       string   `json:"model"`
	MaxTokens   int64    `json:"max_tokens"`
	Temperature *float64 `json:"temperature"`
	System      []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"system"`
	Messages []struct {
		Role    string `json:"role"`
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	} `json:"messages"`
}

func TestGenerate(t *testing.T) {
	req := require.New(t)

	var got sentMessage
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		req.Equal(http.MethodPost, r.Method)
		req.Equal("/v1/messages", r.URL.Path)
		req.Equal("api_key", r.Header.Get("x-api-key"))
		req.Equal("2023-06-01", r.Header.Get("anthropic-version"))
		req.NoError(json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("content-type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_1","type":"message","role":"assistant","model":"claude-3-sonnet-20240307",
			"content":[{"type":"text","text":"Hello friend."}],"stop_reason":"end_turn",
			"usage":{"input_tokens":10,"output_tokens":3}}`))
	})

	out, err := c.Generate(bCtx.Background(), &domain.GenerateRequest{
		System:      "You are Boy #1",
		Prompt:      "hi",
		MaxTokens:   150,
		Temperature: 0.7,
	})
	req.NoError(err)
	req.Equal("Hello friend.", out)
	req.Equal("anthropic", c.Name())

	req.Equal(DefaultModel, got.Model)
	req.Equal(int64(150), got.MaxTokens)
	req.Len(got.System, 1)
	req.Equal("You are Boy #1", got.System[0].Text)
	req.NotNil(got.Temperature)
	req.InDelta(0.7, *got.Temperature, 0.0001)
	req.Len(got.Messages, 1)
	req.Equal("user", got.Messages[0].Role)
	req.Len(got.Messages[0].Content, 1)
	req.Equal("hi", got.Messages[0].Content[0].Text)
}

func TestGenerateWithoutSystem(t *testing.T) {
	req := require.New(t)

	var got map[string]json.RawMessage
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		req.NoError(json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("content-type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_3","content":[{"type":"text","text":"A quiet soul."}],"stop_reason":"end_turn"}`))
	})

	out, err := c.Generate(bCtx.Background(), &domain.GenerateRequest{Prompt: "describe", MaxTokens: 150})
	req.NoError(err)
	req.Equal("A quiet soul.", out)
	req.NotContains(got, "system")
	req.NotContains(got, "temperature")
}

func TestGenerateAPIError(t *testing.T) {
	req := require.New(t)

	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("content-type", "application/json")
		w.Header().Set("request-id", "req_1")
		w.WriteHeader(529)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"overloaded_error","message":"Overloaded"}}`))
	})

	_, err := c.Generate(bCtx.Background(), &domain.GenerateRequest{Prompt: "hi", MaxTokens: 10})
	req.Error(err)
	req.Equal(1, calls)

	var apiErr *APIError
	req.True(errors.As(err, &apiErr))
	req.Equal(529, apiErr.StatusCode)
	req.Equal("overloaded_error", apiErr.Type())
	req.Equal("Overloaded", apiErr.Message)
	req.Equal("req_1", apiErr.RequestId)
}

func TestGenerateAPIErrorWithoutErrorObject(t *testing.T) {
	req := require.New(t)

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("content-type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := c.Generate(bCtx.Background(), &domain.GenerateRequest{Prompt: "hi", MaxTokens: 10})
	var apiErr *APIError
	req.True(errors.As(err, &apiErr))
	req.Equal("APIError", apiErr.Type())
	req.Equal("Bad Gateway", apiErr.Message)
}

func TestGenerateEmptyContent(t *testing.T) {
	req := require.New(t)

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("content-type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_2","content":[],"stop_reason":"max_tokens"}`))
	})

	_, err := c.Generate(bCtx.Background(), &domain.GenerateRequest{Prompt: "hi", MaxTokens: 10})
	req.ErrorIs(err, domain.ErrEmptyCompletion)
}
