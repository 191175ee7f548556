package keys

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeys(t *testing.T) {
	req := require.New(t)
	req.Equal("ethereum:0xabc", CollectionKey("ethereum", "0xabc"))
	req.Equal("ethereum:0xabc:42", NftKey("ethereum", "0xabc", "42"))
	req.Equal("nft:ethereum:0xabc:42", CacheKey(PfxNft, NftKey("ethereum", "0xabc", "42")))
	req.Equal("nft", GetPrefix(CacheKey(PfxNft, "x")))
	req.Equal("", GetPrefix("plain"))
}
