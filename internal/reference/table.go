// Package reference holds the static lookup data the pipeline classifies
// against: canonical test entries with their intervals, alias spellings,
// the scan vocabulary, the unit vocabulary, and the OCR artifact repairs.
// A Table is built once at startup and never mutated afterwards, so
// concurrent pipeline runs share it without locking.
package reference

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"medreportz/internal/domain"
)

// Repair is one known OCR/format artifact and its canonical replacement.
// Repairs are applied in declaration order.
type Repair struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// TestDefinition is the file/seed representation of one canonical test:
// the reference entry plus its accepted alias spellings.
type TestDefinition struct {
	domain.ReferenceEntry
	Aliases []string `json:"aliases"`
}

// Table is the authoritative reference data set. Key iteration order is the
// declaration order of the test definitions, which is the deterministic
// tie-break for alias resolution.
type Table struct {
	keys    []string
	entries map[string]domain.ReferenceEntry
	aliases map[string][]string
	vocab   []string
	units   []string
	repairs []Repair
}

// NewTable validates and assembles a Table from its parts. Scan vocabulary
// and unit vocabulary keep the given order; both orders are semantically
// significant (first match wins). Scan tokens are upper-cased, since the
// line scanner matches them against upper-cased text.
func NewTable(tests []TestDefinition, vocab, units []string, repairs []Repair) (*Table, error) {
	t := &Table{
		entries: make(map[string]domain.ReferenceEntry, len(tests)),
		aliases: make(map[string][]string, len(tests)),
		units:   units,
		repairs: repairs,
	}
	for i := range tests {
		def := &tests[i]
		if def.Key == "" {
			return nil, fmt.Errorf("test definition %d: key is empty", i)
		}
		if _, dup := t.entries[def.Key]; dup {
			return nil, fmt.Errorf("test definition %d: duplicate key %q", i, def.Key)
		}
		if def.Low > def.High {
			return nil, fmt.Errorf("test %q: interval [%v, %v] is inverted", def.Key, def.Low, def.High)
		}
		aliases := make([]string, len(def.Aliases))
		for j, a := range def.Aliases {
			aliases[j] = strings.ToLower(a)
		}
		t.keys = append(t.keys, def.Key)
		t.entries[def.Key] = def.ReferenceEntry
		t.aliases[def.Key] = aliases
	}
	t.vocab = make([]string, len(vocab))
	for i, token := range vocab {
		if strings.TrimSpace(token) == "" {
			return nil, fmt.Errorf("scan token %d: empty", i)
		}
		t.vocab[i] = strings.ToUpper(token)
	}
	return t, nil
}

// Keys returns the canonical test keys in declaration order.
func (t *Table) Keys() []string { return t.keys }

// Entry looks up the reference entry for a canonical key.
func (t *Table) Entry(key string) (domain.ReferenceEntry, bool) {
	e, ok := t.entries[key]
	return e, ok
}

// Aliases returns the lower-cased alias spellings for a canonical key.
func (t *Table) Aliases(key string) []string { return t.aliases[key] }

// Vocabulary returns the recognized lab-test scan tokens in match order.
func (t *Table) Vocabulary() []string { return t.vocab }

// Units returns the known unit vocabulary in match order.
func (t *Table) Units() []string { return t.units }

// Repairs returns the artifact repair pairs in application order.
func (t *Table) Repairs() []Repair { return t.repairs }

// Size returns the number of canonical test entries.
func (t *Table) Size() int { return len(t.keys) }

// tableFile is the on-disk JSON shape consumed by LoadFile and produced by
// cmd/seedref.
type tableFile struct {
	Tests      []TestDefinition `json:"tests"`
	ScanTokens []string         `json:"scan_tokens"`
	Units      []string         `json:"units"`
	Repairs    []Repair         `json:"repairs"`
}

// LoadFile reads a reference table from a JSON file. Scan tokens, units, and
// repairs fall back to the compiled-in defaults when the file omits them, so
// a deployment can override just the intervals.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading reference table: %w", err)
	}
	var f tableFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing reference table: %w", err)
	}
	if len(f.Tests) == 0 {
		return nil, fmt.Errorf("reference table %s: no test definitions", path)
	}
	if f.ScanTokens == nil {
		f.ScanTokens = defaultScanTokens()
	}
	if f.Units == nil {
		f.Units = defaultUnits()
	}
	if f.Repairs == nil {
		f.Repairs = defaultRepairs()
	}
	t, err := NewTable(f.Tests, f.ScanTokens, f.Units, f.Repairs)
	if err != nil {
		return nil, fmt.Errorf("reference table %s: %w", path, err)
	}
	return t, nil
}
