package pipeline

import (
	"strings"

	"medreportz/internal/domain"
	"medreportz/internal/reference"
)

// Confidence levels attached by alias resolution. An exact alias containment
// match is trusted; a mention that matched the scan vocabulary but no alias
// is kept as "detected something, but unidentified".
const (
	ConfidenceAliasMatch = 0.95
	ConfidenceNoMatch    = 0.4
)

// Resolver maps a raw lab mention onto a canonical test key using the alias
// table. It has no side effects and no knowledge of classification.
type Resolver struct {
	keys    []string
	aliases map[string][]string
}

// NewResolver creates a Resolver over the table's alias data. Canonical keys
// are tried in table declaration order, which makes ties deterministic.
func NewResolver(table *reference.Table) *Resolver {
	aliases := make(map[string][]string, len(table.Keys()))
	for _, key := range table.Keys() {
		aliases[key] = table.Aliases(key)
	}
	return &Resolver{keys: table.Keys(), aliases: aliases}
}

// Resolve returns the first canonical key any of whose aliases is contained
// in the mention's lower-cased label, with ConfidenceAliasMatch. With no
// match it returns an empty key and ConfidenceNoMatch.
func (r *Resolver) Resolve(mention domain.RawLabMention) (string, float64) {
	label := strings.ToLower(mention.Label)
	for _, key := range r.keys {
		for _, alias := range r.aliases[key] {
			if strings.Contains(label, alias) {
				return key, ConfidenceAliasMatch
			}
		}
	}
	return "", ConfidenceNoMatch
}
