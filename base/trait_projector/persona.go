package traitprojector

import (
	"fmt"
	"strings"

	"github.com/x-xyz/nftpersona/domain/chat"
	"github.com/x-xyz/nftpersona/domain/nft"
)

const (
	personaTmpl = "You are Boy #%s, a gentle and artistic soul who loves connecting with people. %s. " +
		"You have a warm, friendly personality and enjoy thoughtful conversations about art, emotions, and life. " +
		"Keep your responses natural and conversational, as if chatting with a friend. " +
		"Avoid mentioning that you're an NFT or part of a collection - just be yourself. " +
		"When speaking, keep responses concise (2-3 sentences) and maintain a warm, genuine tone."

	spanishInstruction = "\nPlease respond in Spanish, maintaining the same warm and natural tone."

	emotionalClause = "and you're feeling emotional right now"
)

// PersonaClauses builds the first person trait clauses of the chat persona.
// Only the five named traits drive a clause. Hair Color, Eyes and Clothing
// are not checked against the sentinel, only Face Add-ons is.
func PersonaClauses(m nft.TraitMap) []string {
	clauses := []string{}

	if v, ok := m.Lookup(TraitHairColor); ok && v != "" {
		clauses = append(clauses, fmt.Sprintf("You have %s hair", strings.ToLower(v)))
	}
	if v, ok := m.Lookup(TraitEyes); ok && v != "" && v != "Regular" {
		clauses = append(clauses, fmt.Sprintf("%s eyes", strings.ToLower(v)))
	}
	if v, ok := m.Lookup(TraitClothing); ok && v != "" {
		clauses = append(clauses, fmt.Sprintf("wearing a %s", strings.ToLower(v)))
	}
	if v, ok := m.Lookup(TraitFaceAddons); ok && v != nft.SentinelNone {
		clauses = append(clauses, fmt.Sprintf("with %s", strings.ToLower(v)))
	}
	if v, ok := m.Lookup(TraitTears); ok && v == "Yes" {
		clauses = append(clauses, emotionalClause)
	}

	return clauses
}

func JoinClauses(clauses []string) string {
	return strings.Join(clauses, ", ")
}

// ChatSystemPrompt renders the persona of nft nftId speaking language
func ChatSystemPrompt(nftId string, clauses []string, language chat.Language) string {
	prompt := fmt.Sprintf(personaTmpl, nftId, JoinClauses(clauses))
	if language == chat.LanguageEsES {
		prompt += spanishInstruction
	}
	return prompt
}
