package provider

import (
	"errors"
	"time"

	"github.com/x-xyz/nftpersona/base/ctx"
)

var (
	ErrNotFound = errors.New("Cache not found")
)

// raw cache implementation
type Provider interface {
	Get(c ctx.Ctx, key string) ([]byte, time.Duration, error)
	// Set stores value for ttl, a zero ttl never expires
	Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error
	Del(c ctx.Ctx, key string) error
	// EntryCount is the number of live entries
	EntryCount() int64
}
