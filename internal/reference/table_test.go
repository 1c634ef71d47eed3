package reference

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medreportz/internal/domain"
)

func TestDefaults_Valid(t *testing.T) {
	table := Defaults()
	assert.Equal(t, 11, table.Size())
	assert.NotEmpty(t, table.Vocabulary())
	assert.NotEmpty(t, table.Units())
	assert.NotEmpty(t, table.Repairs())

	entry, ok := table.Entry("glucose")
	require.True(t, ok)
	assert.Equal(t, "Glucose", entry.DisplayName)
	assert.Equal(t, 70.0, entry.Low)
	assert.Equal(t, 99.0, entry.High)
}

func TestDefaults_MCHCPrecedesMCH(t *testing.T) {
	table := Defaults()

	keyIdx := func(key string) int {
		for i, k := range table.Keys() {
			if k == key {
				return i
			}
		}
		return -1
	}
	assert.Less(t, keyIdx("mchc"), keyIdx("mch"))

	tokenIdx := func(token string) int {
		for i, v := range table.Vocabulary() {
			if v == token {
				return i
			}
		}
		return -1
	}
	assert.Less(t, tokenIdx("MCHC"), tokenIdx("MCH"))
}

func TestNewTable_LowerCasesAliases(t *testing.T) {
	tests := []TestDefinition{
		{
			ReferenceEntry: domain.ReferenceEntry{Key: "wbc", DisplayName: "WBC", Low: 4, High: 11},
			Aliases:        []string{"WBC", "White Blood Cell"},
		},
	}
	table, err := NewTable(tests, []string{"WBC"}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"wbc", "white blood cell"}, table.Aliases("wbc"))
}

func TestNewTable_UpperCasesScanTokens(t *testing.T) {
	tests := []TestDefinition{
		{
			ReferenceEntry: domain.ReferenceEntry{Key: "glucose", DisplayName: "Glucose", Low: 70, High: 99},
			Aliases:        []string{"glucose"},
		},
	}
	// Hand-written table files may carry lowercase tokens; the scanner
	// matches against upper-cased lines, so the table canonicalizes them.
	table, err := NewTable(tests, []string{"glucose", "Wbc"}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"GLUCOSE", "WBC"}, table.Vocabulary())
}

func TestNewTable_ValidationErrors(t *testing.T) {
	valid := TestDefinition{
		ReferenceEntry: domain.ReferenceEntry{Key: "glucose", DisplayName: "Glucose", Low: 70, High: 99},
	}

	_, err := NewTable([]TestDefinition{{ReferenceEntry: domain.ReferenceEntry{Key: ""}}}, nil, nil, nil)
	assert.ErrorContains(t, err, "key is empty")

	_, err = NewTable([]TestDefinition{valid, valid}, nil, nil, nil)
	assert.ErrorContains(t, err, "duplicate key")

	inverted := TestDefinition{
		ReferenceEntry: domain.ReferenceEntry{Key: "x", DisplayName: "X", Low: 10, High: 5},
	}
	_, err = NewTable([]TestDefinition{inverted}, nil, nil, nil)
	assert.ErrorContains(t, err, "inverted")

	_, err = NewTable([]TestDefinition{valid}, []string{"GLUCOSE", "  "}, nil, nil)
	assert.ErrorContains(t, err, "empty")
}

func TestLoadFile_FullTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.json")
	content := `{
		"tests": [
			{"key": "glucose", "display_name": "Glucose", "low": 70, "high": 99, "unit": "mg/dL", "aliases": ["glucose"]}
		],
		"scan_tokens": ["GLUCOSE"],
		"units": ["mg/dL"],
		"repairs": [{"from": "x10 3/L", "to": "x10^3/µL"}]
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	table, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, table.Size())
	assert.Equal(t, []string{"GLUCOSE"}, table.Vocabulary())
	assert.Equal(t, []string{"mg/dL"}, table.Units())
	require.Len(t, table.Repairs(), 1)
	assert.Equal(t, "x10^3/µL", table.Repairs()[0].To)
}

func TestLoadFile_OmittedSectionsFallBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.json")
	content := `{
		"tests": [
			{"key": "glucose", "display_name": "Glucose", "low": 60, "high": 110, "unit": "mg/dL", "aliases": ["glucose"]}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	table, err := LoadFile(path)
	require.NoError(t, err)

	entry, ok := table.Entry("glucose")
	require.True(t, ok)
	assert.Equal(t, 60.0, entry.Low)
	assert.Equal(t, defaultScanTokens(), table.Vocabulary())
	assert.Equal(t, defaultUnits(), table.Units())
	assert.Equal(t, defaultRepairs(), table.Repairs())
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))
	_, err = LoadFile(path)
	assert.ErrorContains(t, err, "parsing reference table")

	empty := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte(`{"tests": []}`), 0o644))
	_, err = LoadFile(empty)
	assert.ErrorContains(t, err, "no test definitions")
}
