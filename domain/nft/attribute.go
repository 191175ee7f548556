package nft

import (
	"encoding/json"
)

// SentinelNone is the attribute value meaning the trait is not set
const SentinelNone = "None"

type Attribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

// RawAttribute is an attribute as returned upstream, value may be any json type
type RawAttribute struct {
	TraitType string          `json:"trait_type"`
	Value     json.RawMessage `json:"value"`
}

type Attributes = []Attribute

// IsSentinel reports whether the attribute marks an absent trait
func (a Attribute) IsSentinel() bool {
	return a.Value == SentinelNone
}

// ToAttribute renders non string values with their json text, ex: 3, true, null
func (r RawAttribute) ToAttribute() Attribute {
	if len(r.Value) == 0 || string(r.Value) == "null" {
		return Attribute{TraitType: r.TraitType, Value: "null"}
	}
	var str string
	if err := json.Unmarshal(r.Value, &str); err == nil {
		return Attribute{TraitType: r.TraitType, Value: str}
	}
	return Attribute{TraitType: r.TraitType, Value: string(r.Value)}
}

// TraitMap maps trait_type to value. Presence and the sentinel value are
// distinct states: Lookup reports presence, IsSentinel the sentinel.
type TraitMap struct {
	values map[string]string
}

// NewTraitMap collapses attrs, the last occurrence of a trait type wins
func NewTraitMap(attrs Attributes) TraitMap {
	values := make(map[string]string, len(attrs))
	for _, a := range attrs {
		values[a.TraitType] = a.Value
	}
	return TraitMap{values: values}
}

// Lookup returns the value of key and whether the key is present
func (m TraitMap) Lookup(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// GetOr returns the value of key or fallback when the key is absent
func (m TraitMap) GetOr(key, fallback string) string {
	if v, ok := m.values[key]; ok {
		return v
	}
	return fallback
}

// IsSentinel reports whether key is present with the sentinel value
func (m TraitMap) IsSentinel(key string) bool {
	v, ok := m.values[key]
	return ok && v == SentinelNone
}

func (m TraitMap) Len() int {
	return len(m.values)
}
