package gemini

import (
	"net/http"
	"time"
)

const DefaultModel = "gemini-2.5-flash"

type ClientCfg struct {
	HttpClient *http.Client
	Timeout    time.Duration
	Apikey     string
	Model      string
	// Endpoint overrides the Gemini API base url, used by tests
	Endpoint string
}
