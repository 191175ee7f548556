package primitive

import (
	"time"

	"github.com/coocood/freecache"
	"github.com/x-xyz/nftpersona/base/ctx"
	"github.com/x-xyz/nftpersona/base/log"
	"github.com/x-xyz/nftpersona/service/cache/provider"
)

type impl struct {
	name  string
	cache *freecache.Cache
}

// NewPrimitive creates an in process provider bounded to sizeMB megabytes.
// A single entry can not exceed 1/1024 of the total size.
func NewPrimitive(name string, sizeMB int) provider.Provider {
	return &impl{name, freecache.NewCache(sizeMB * 1024 * 1024)}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, ttl, err := im.cache.GetWithExpiration([]byte(key))
	if err == freecache.ErrNotFound {
		return nil, time.Duration(0), provider.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key, "cache": im.name}).Error("cache.Get failed")
		return nil, time.Duration(0), err
	}
	if ttl > 0 {
		return val, time.Until(time.Unix(int64(ttl), 0)), nil
	}
	return val, time.Duration(0), nil
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	if err := im.cache.Set([]byte(key), value, int(ttl.Seconds())); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key, "cache": im.name, "size": len(value)}).Error("cache.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	im.cache.Del([]byte(key))
	return nil
}

func (im *impl) EntryCount() int64 {
	return im.cache.EntryCount()
}
