package traitprojector

import (
	"fmt"
	"strings"

	"github.com/x-xyz/nftpersona/domain/nft"
)

const personalityTmpl = `You are generating a personality for Boy #%s from the Boys collection.
This NFT has the following specific traits:
%s

Create a personality description that EXACTLY matches these traits.
Rules:
1. ONLY mention traits that are listed above
2. Use the EXACT values for each trait (e.g., if Hair Color is 'Blonde', don't say 'golden' or 'yellow')
3. If a trait is not listed or is 'None', do not mention it at all
4. Focus on the unique combination of:
%s

The description should be 2-3 sentences long and maintain a warm, artistic tone while being 100%% accurate to the traits.`

// PersonalityPrompt builds the instruction generating the personality of tokenId
func PersonalityPrompt(tokenId string, attrs nft.Attributes) string {
	values := NamedTraitValues(nft.NewTraitMap(attrs))
	focus := make([]string, len(NamedTraits))
	for i, t := range NamedTraits {
		focus[i] = fmt.Sprintf("   - %s: %s", t, values[i])
	}
	return fmt.Sprintf(personalityTmpl, tokenId, TraitText(attrs), strings.Join(focus, "\n"))
}
