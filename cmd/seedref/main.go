// Command seedref converts a reference-range Excel workbook into the JSON
// table file consumed at startup via MEDREPORTZ_REFERENCE_PATH.
// Sheet "Tests": key, display name, low, high, unit, aliases (comma-separated),
// scan token. Optional sheets "Units" and "Repairs" override the unit
// vocabulary and artifact repairs; omitted sections fall back to the
// compiled-in defaults at load time.
// Usage: go run ./cmd/seedref <workbook.xlsx> [out.json]
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"medreportz/internal/domain"
	"medreportz/internal/reference"
)

// seedFile mirrors the JSON shape reference.LoadFile reads.
type seedFile struct {
	Tests      []reference.TestDefinition `json:"tests"`
	ScanTokens []string                   `json:"scan_tokens"`
	Units      []string                   `json:"units,omitempty"`
	Repairs    []reference.Repair         `json:"repairs,omitempty"`
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if len(os.Args) < 2 {
		return fmt.Errorf("usage: seedref <workbook.xlsx> [out.json]")
	}
	xlsxPath := os.Args[1]
	outPath := "reference_table.json"
	if len(os.Args) > 2 {
		outPath = os.Args[2]
	}

	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return fmt.Errorf("open Excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	tests, tokens, err := parseTestsSheet(f)
	if err != nil {
		return fmt.Errorf("parse Tests sheet: %w", err)
	}
	log.Printf("Tests sheet: %d entries, %d scan tokens", len(tests), len(tokens))

	units, err := parseListSheet(f, "Units")
	if err != nil {
		return fmt.Errorf("parse Units sheet: %w", err)
	}
	repairs, err := parseRepairsSheet(f)
	if err != nil {
		return fmt.Errorf("parse Repairs sheet: %w", err)
	}

	// Validate before writing so a broken workbook fails here, not at server
	// startup.
	scanTokens := tokens
	if scanTokens == nil {
		scanTokens = defaultTokensFromKeys(tests)
	}
	if _, err := reference.NewTable(tests, scanTokens, units, repairs); err != nil {
		return fmt.Errorf("workbook produces invalid table: %w", err)
	}

	seed := seedFile{
		Tests:      tests,
		ScanTokens: scanTokens,
		Units:      units,
		Repairs:    repairs,
	}
	data, err := json.MarshalIndent(seed, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal seed file: %w", err)
	}
	if err := os.WriteFile(outPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}

	log.Printf("Generated %d test definitions in %s", len(tests), outPath)
	return nil
}

// parseTestsSheet reads the first sheet.
// Columns: A(0)=key, B(1)=display name, C(2)=low, D(3)=high, E(4)=unit,
// F(5)=aliases (comma-separated), G(6)=scan token (optional).
// Data starts at row index 1 (header row skipped).
func parseTestsSheet(f *excelize.File) ([]reference.TestDefinition, []string, error) {
	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, nil, err
	}

	var tests []reference.TestDefinition
	var tokens []string
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		key := strings.TrimSpace(cellVal(row, 0))
		if key == "" {
			continue
		}

		low, err := strconv.ParseFloat(strings.TrimSpace(cellVal(row, 2)), 64)
		if err != nil {
			return nil, nil, fmt.Errorf("row %d (%s): bad low value: %w", i+1, key, err)
		}
		high, err := strconv.ParseFloat(strings.TrimSpace(cellVal(row, 3)), 64)
		if err != nil {
			return nil, nil, fmt.Errorf("row %d (%s): bad high value: %w", i+1, key, err)
		}

		def := reference.TestDefinition{
			ReferenceEntry: domain.ReferenceEntry{
				Key:         strings.ToLower(key),
				DisplayName: strings.TrimSpace(cellVal(row, 1)),
				Low:         low,
				High:        high,
				Unit:        strings.TrimSpace(cellVal(row, 4)),
			},
			Aliases: splitList(cellVal(row, 5)),
		}
		tests = append(tests, def)

		if token := strings.TrimSpace(cellVal(row, 6)); token != "" {
			tokens = append(tokens, strings.ToUpper(token))
		}
	}
	return tests, tokens, nil
}

// parseListSheet reads a one-column sheet into an ordered string slice.
// Returns nil if the sheet does not exist.
func parseListSheet(f *excelize.File, name string) ([]string, error) {
	idx, err := f.GetSheetIndex(name)
	if err != nil || idx < 0 {
		return nil, nil
	}
	rows, err := f.GetRows(name)
	if err != nil {
		return nil, err
	}
	var vals []string
	for _, row := range rows {
		if v := strings.TrimSpace(cellVal(row, 0)); v != "" {
			vals = append(vals, v)
		}
	}
	return vals, nil
}

// parseRepairsSheet reads the optional "Repairs" sheet: A=from, B=to.
func parseRepairsSheet(f *excelize.File) ([]reference.Repair, error) {
	idx, err := f.GetSheetIndex("Repairs")
	if err != nil || idx < 0 {
		return nil, nil
	}
	rows, err := f.GetRows("Repairs")
	if err != nil {
		return nil, err
	}
	var repairs []reference.Repair
	for _, row := range rows {
		from := cellVal(row, 0)
		to := cellVal(row, 1)
		if from == "" {
			continue
		}
		repairs = append(repairs, reference.Repair{From: from, To: to})
	}
	return repairs, nil
}

// defaultTokensFromKeys derives scan tokens from test keys when the workbook
// carries no explicit token column. Key order is preserved, so workbook
// authors control match precedence.
func defaultTokensFromKeys(tests []reference.TestDefinition) []string {
	tokens := make([]string, 0, len(tests))
	for i := range tests {
		tokens = append(tokens, strings.ToUpper(tests[i].Key))
	}
	return tokens
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func cellVal(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}
