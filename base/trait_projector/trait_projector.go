// Package traitprojector turns nft attributes into the natural language used
// by the personality and chat prompts. Every function is pure.
package traitprojector

import (
	"fmt"
	"strings"

	"github.com/x-xyz/nftpersona/domain/nft"
)

// Named traits always surfaced in the personality prompt, in this order
const (
	TraitHairColor  = "Hair Color"
	TraitFaceAddons = "Face Add-ons"
	TraitEyes       = "Eyes"
	TraitClothing   = "Clothing"
	TraitTears      = "Tears"
)

var NamedTraits = []string{
	TraitHairColor,
	TraitFaceAddons,
	TraitEyes,
	TraitClothing,
	TraitTears,
}

// TraitText renders one "type: value" line per attribute, skipping the
// sentinel. Attribute order is kept so duplicated trait types all appear.
func TraitText(attrs nft.Attributes) string {
	lines := make([]string, 0, len(attrs))
	for _, a := range attrs {
		if a.IsSentinel() {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", a.TraitType, a.Value))
	}
	return strings.Join(lines, "\n")
}

// NamedTraitValues returns the value of each named trait, "None" when absent
func NamedTraitValues(m nft.TraitMap) []string {
	res := make([]string, len(NamedTraits))
	for i, t := range NamedTraits {
		res[i] = m.GetOr(t, nft.SentinelNone)
	}
	return res
}
