package domain

import (
	"github.com/x-xyz/nftpersona/base/ctx"
)

// GenerateRequest is a single-turn completion request
type GenerateRequest struct {
	// System is the system instruction, may be empty
	System      string
	Prompt      string
	MaxTokens   int32
	Temperature float32
}

// Generator produces text with a large language model
type Generator interface {
	Name() string
	Generate(c ctx.Ctx, req *GenerateRequest) (string, error)
}
