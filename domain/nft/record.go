package nft

import (
	"encoding/json"

	"github.com/x-xyz/nftpersona/domain"
)

const fieldGeneratedPersonality = "generated_personality"

// Record is a SimpleHash nft object. Fields are kept raw so the response
// passes every upstream field through unmodified.
type Record map[string]json.RawMessage

func (r Record) str(field string) string {
	var s string
	if raw, ok := r[field]; ok {
		_ = json.Unmarshal(raw, &s)
	}
	return s
}

func (r Record) TokenId() string {
	return r.str("token_id")
}

func (r Record) Chain() string {
	return r.str("chain")
}

func (r Record) ContractAddress() string {
	return r.str("contract_address")
}

// Attributes reads extra_metadata.attributes. A record without
// extra_metadata has no attributes.
func (r Record) Attributes() (Attributes, error) {
	raw, ok := r["extra_metadata"]
	if !ok || string(raw) == "null" {
		return Attributes{}, nil
	}

	meta := struct {
		Attributes []RawAttribute `json:"attributes"`
	}{}
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, domain.ErrInvalidJsonFormat
	}

	attrs := make(Attributes, 0, len(meta.Attributes))
	for _, a := range meta.Attributes {
		attrs = append(attrs, a.ToAttribute())
	}
	return attrs, nil
}

// WithPersonality returns a shallow copy carrying generated_personality,
// the receiver is left untouched since it may be shared through the cache.
func (r Record) WithPersonality(personality string) Record {
	res := make(Record, len(r)+1)
	for k, v := range r {
		res[k] = v
	}
	b, _ := json.Marshal(personality)
	res[fieldGeneratedPersonality] = b
	return res
}

// GeneratedPersonality returns the personality attached by WithPersonality
func (r Record) GeneratedPersonality() string {
	return r.str(fieldGeneratedPersonality)
}
