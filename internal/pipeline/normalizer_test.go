package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"medreportz/internal/reference"
)

func newTestNormalizer() *Normalizer {
	return NewNormalizer(reference.Defaults().Repairs())
}

func TestNormalize_StripsNoise(t *testing.T) {
	n := newTestNormalizer()

	raw := "Patient™ Name: John Doe\r\nVisit http://lab.example.com for results\nContact: desk@lab.example.com\n\n\nGlucose: 110 mg/dL"
	got := n.Normalize(raw)

	assert.NotContains(t, got, "http")
	assert.NotContains(t, got, "@")
	assert.NotContains(t, got, "™")
	assert.NotContains(t, got, "\r")
	assert.NotContains(t, got, "\n\n")
	assert.Contains(t, got, "Patient Name: John Doe")
	assert.Contains(t, got, "Glucose: 110 mg/dL")
}

func TestNormalize_RepairsUnitArtifacts(t *testing.T) {
	n := newTestNormalizer()

	got := n.Normalize("WBC 5.2 x10 3/L")
	assert.Contains(t, got, "x10^3/µL")

	// The spaced-out variant collapses to the single-space form first.
	got = n.Normalize("WBC 5.2 x10 3 /   L")
	assert.Contains(t, got, "x10^3/µL")
}

func TestNormalize_Idempotent(t *testing.T) {
	n := newTestNormalizer()

	inputs := []string{
		"WBC 5.2 x10 3/L",
		"Hemoglobin: 13.5 g/dL\r\n\r\nGlucose: 95 mg/dL",
		"noise ™ © http://x.y a@b.c [brackets] {braces}",
		"already clean text",
		"",
		"   \n\n\t  ",
	}
	for _, raw := range inputs {
		once := n.Normalize(raw)
		twice := n.Normalize(once)
		assert.Equal(t, once, twice, "input %q", raw)
	}
}

func TestNormalize_HopelessInputDegradesToEmpty(t *testing.T) {
	n := newTestNormalizer()
	assert.Equal(t, "", n.Normalize("™©®"))
	assert.Equal(t, "", n.Normalize("   "))
}

func TestNormalize_CollapsesWhitespaceButKeepsLines(t *testing.T) {
	n := newTestNormalizer()
	got := n.Normalize("a    b\t\tc\n\n\n\nd")
	assert.Equal(t, "a b c\nd", got)
}
