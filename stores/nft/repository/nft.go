package repository

import (
	"errors"
	"time"

	"golang.org/x/sync/singleflight"
	"golang.org/x/xerrors"

	"github.com/x-xyz/nftpersona/base/ctx"
	"github.com/x-xyz/nftpersona/base/log"
	"github.com/x-xyz/nftpersona/base/metrics"
	"github.com/x-xyz/nftpersona/domain"
	"github.com/x-xyz/nftpersona/domain/chain"
	"github.com/x-xyz/nftpersona/domain/keys"
	"github.com/x-xyz/nftpersona/domain/nft"
	"github.com/x-xyz/nftpersona/service/cache"
	"github.com/x-xyz/nftpersona/service/cache/provider"
	"github.com/x-xyz/nftpersona/service/simplehash"
)

var errEmptyPage = errors.New("empty nfts page")

type RepoCfg struct {
	Simplehash simplehash.Client
	Cache      provider.Provider
	Ttl        time.Duration
}

type impl struct {
	simplehash  simplehash.Client
	collections cache.Service
	nfts        cache.Service
	group       singleflight.Group
	metrics     metrics.Service
}

// New creates a repository memoizing upstream answers in cfg.Cache
func New(cfg *RepoCfg) nft.Repository {
	return &impl{
		simplehash: cfg.Simplehash,
		collections: cache.New(cache.ServiceConfig{
			Ttl:   cfg.Ttl,
			Pfx:   keys.PfxCollection,
			Cache: cfg.Cache,
		}),
		nfts: cache.New(cache.ServiceConfig{
			Ttl:   cfg.Ttl,
			Pfx:   keys.PfxNft,
			Cache: cfg.Cache,
		}),
		metrics: metrics.New("nft_repository"),
	}
}

func (im *impl) FetchCollection(c ctx.Ctx, ch chain.Chain, contract string) (*nft.CollectionSummary, error) {
	contract = ch.NormalizeContract(contract)
	key := keys.CollectionKey(ch.String(), contract)

	res := &nft.CollectionSummary{}
	err := im.memoize(c, im.collections, keys.PfxCollection, key, res, func() (interface{}, error) {
		page, err := im.simplehash.GetNftsByContract(c, ch.String(), contract, nft.CollectionPageSize, simplehash.OrderByTokenId)
		if err != nil {
			return nil, err
		}
		if len(page.Nfts) == 0 {
			return nil, errEmptyPage
		}
		return nft.NewCollectionSummary(page.Nfts)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (im *impl) FetchNft(c ctx.Ctx, ch chain.Chain, contract, tokenId string) (nft.Record, error) {
	contract = ch.NormalizeContract(contract)
	key := keys.NftKey(ch.String(), contract, tokenId)

	res := nft.Record{}
	err := im.memoize(c, im.nfts, keys.PfxNft, key, &res, func() (interface{}, error) {
		record, err := im.simplehash.GetNft(c, ch.String(), contract, tokenId)
		if err != nil {
			return nil, err
		}
		return &record, nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// memoize serves key from svc, concurrent misses of the same key share one
// upstream call. Any upstream failure is reported as domain.ErrNotFound and
// is not cached.
func (im *impl) memoize(c ctx.Ctx, svc cache.Service, kind, key string, container interface{}, fetch cache.OneTimeGetter) error {
	hit := true
	err := svc.GetByFunc(c, key, container, func() (interface{}, error) {
		hit = false
		im.metrics.BumpSum("cache.miss", 1, "kind", kind)
		val, err, shared := im.group.Do(kind+":"+key, fetch)
		if shared {
			c.WithField("key", key).Debug("upstream call shared")
		}
		return val, err
	})
	if err != nil {
		im.metrics.BumpSum("upstream.err", 1, "kind", kind)
		c.WithFields(log.Fields{
			"err":  err,
			"key":  key,
			"kind": kind,
		}).Warn("upstream fetch failed")
		return xerrors.Errorf("%s %s: %w", kind, key, domain.ErrNotFound)
	}
	if hit {
		im.metrics.BumpSum("cache.hit", 1, "kind", kind)
	}
	return nil
}
