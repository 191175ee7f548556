package repository

import (
	"bytes"
	"time"

	"github.com/google/uuid"
	"golang.org/x/xerrors"

	"github.com/x-xyz/nftpersona/base/ctx"
	hcdomain "github.com/x-xyz/nftpersona/domain/healthcheck"
	"github.com/x-xyz/nftpersona/domain/keys"
	"github.com/x-xyz/nftpersona/service/cache/provider"
)

var errProbeMismatch = xerrors.New("cache probe mismatch")

type impl struct {
	cache provider.Provider
}

// New creates new healthCheckRepo object representation of HealthCheckRepo interface
func New(cache provider.Provider) hcdomain.HealthCheckRepo {
	return &impl{
		cache: cache,
	}
}

// PingCache writes then reads back a probe entry in the memo cache
func (im *impl) PingCache(context ctx.Ctx) error {
	key := keys.CacheKey(keys.PfxHealthCheck, "testset")
	val := []byte(uuid.NewString())

	if err := im.cache.Set(context, key, val, 30*time.Second); err != nil {
		context.WithField("err", err).Error("test cache set failed")
		return err
	}

	got, _, err := im.cache.Get(context, key)
	if err != nil {
		context.WithField("err", err).Error("test cache get failed")
		return err
	}
	if !bytes.Equal(got, val) {
		context.WithField("got", string(got)).Error("test cache get mismatch")
		return errProbeMismatch
	}
	return nil
}
