package keys

import (
	"strings"
)

const (
	// PfxHealthCheck is used for prefixing health check cache key
	PfxHealthCheck = "healthcheck"
	// PfxCollection is used for prefixing memoized collection summaries
	PfxCollection = "collection"
	// PfxNft is used for prefixing memoized nft records
	PfxNft = "nft"
)

// CustomKey is used to join the customized key by componets with specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// CacheKey is used to join the cache key by componets
func CacheKey(components ...string) string {
	return CustomKey(":", components...)
}

// CollectionKey identifies a collection page of chain and contract
func CollectionKey(chain, contract string) string {
	return CacheKey(chain, contract)
}

// NftKey identifies a single nft
func NftKey(chain, contract, tokenId string) string {
	return CacheKey(chain, contract, tokenId)
}

// GetPrefix extracts the prefix of a key.
func GetPrefix(key string) string {
	s := strings.Split(key, ":")
	if len(s) > 1 {
		return s[0]
	}
	return ""
}
