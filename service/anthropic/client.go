package anthropic

import (
	"fmt"
	"net/http"
	"time"
)

const (
	// DefaultEndpoint is the api root, the sdk appends v1/messages
	DefaultEndpoint = "https://api.anthropic.com/"
	DefaultModel    = "claude-3-sonnet-20240307"
)

// APIError is a non 2xx answer of the messages api
type APIError struct {
	StatusCode int
	ErrType    string
	Message    string
	RequestId  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("anthropic: status %d: %s: %s", e.StatusCode, e.ErrType, e.Message)
}

// Type names the api error kind, ex: overloaded_error
func (e *APIError) Type() string {
	if e.ErrType == "" {
		return "APIError"
	}
	return e.ErrType
}

type ClientCfg struct {
	HttpClient *http.Client
	Timeout    time.Duration
	Apikey     string
	Model      string
	// Endpoint defaults to DefaultEndpoint
	Endpoint string
}
