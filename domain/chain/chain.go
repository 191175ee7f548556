package chain

import "strings"

// Chain is a SimpleHash chain identifier, ex: ethereum
type Chain string

const (
	Ethereum  Chain = "ethereum"
	Polygon   Chain = "polygon"
	Solana    Chain = "solana"
	Bitcoin   Chain = "bitcoin"
	Arbitrum  Chain = "arbitrum"
	Optimism  Chain = "optimism"
	Base      Chain = "base"
	Avalanche Chain = "avalanche"
	Bsc       Chain = "bsc"
	Zora      Chain = "zora"
	Blast     Chain = "blast"
	Mantle    Chain = "mantle"
)

// Supported keeps the order shown to the front-end
var Supported = []Chain{
	Ethereum, Polygon, Solana, Bitcoin, Arbitrum, Optimism,
	Base, Avalanche, Bsc, Zora, Blast, Mantle,
}

var nonEvm = map[Chain]bool{
	Solana:  true,
	Bitcoin: true,
}

func (c Chain) String() string {
	return string(c)
}

// IsSupported reports whether c is one of the listed chains
func (c Chain) IsSupported() bool {
	for _, s := range Supported {
		if s == c {
			return true
		}
	}
	return false
}

// IsEvm reports whether contracts on c use 20-byte hex addresses.
// Chains outside the supported list are treated as unknown, not evm.
func (c Chain) IsEvm() bool {
	return c.IsSupported() && !nonEvm[c]
}

// NormalizeContract lowercases evm addresses so case variants share a cache entry
func (c Chain) NormalizeContract(contract string) string {
	if c.IsEvm() {
		return strings.ToLower(contract)
	}
	return contract
}

// Names returns the identifiers of all supported chains
func Names() []string {
	res := make([]string, len(Supported))
	for i, c := range Supported {
		res[i] = string(c)
	}
	return res
}
