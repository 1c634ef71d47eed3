package pipeline

import (
	"regexp"
	"strconv"
	"strings"

	"medreportz/internal/domain"
	"medreportz/internal/reference"
)

var (
	namePattern   = regexp.MustCompile(`(?i)Patient Name[:\-]?\s*([A-Za-z ]+?)(?:\s+Age|\n|$)`)
	agePattern    = regexp.MustCompile(`(?i)\bAge[:\-]?\s*(\d+)`)
	genderPattern = regexp.MustCompile(`(?i)\b(?:Gender|Sex)[:\-]?\s*([A-Za-z]+)`)
	bpPattern     = regexp.MustCompile(`(?i)Blood Pressure[:\-]?\s*(\d+/\d+\s*mmHg)`)
	hrPattern     = regexp.MustCompile(`(?i)Heart Rate[:\-]?\s*(\d+\s*bpm)`)
)

// Extractor applies pattern rules to normalized text. The scan and unit
// vocabularies come from the reference table; the extractor itself holds no
// mutable state and its three methods are independent pure functions.
type Extractor struct {
	vocab []string
	units []string
}

// NewExtractor creates an Extractor using the table's scan vocabulary and
// unit vocabulary.
func NewExtractor(table *reference.Table) *Extractor {
	return &Extractor{vocab: table.Vocabulary(), units: table.Units()}
}

// ExtractPatient pulls name, age, and gender from labeled header fields.
// A pattern that does not match leaves its field nil; nothing here is a
// hard failure.
func (e *Extractor) ExtractPatient(text string) domain.PatientInfo {
	var info domain.PatientInfo

	if m := namePattern.FindStringSubmatch(text); m != nil {
		name := strings.TrimSpace(m[1])
		if name != "" {
			info.Name = &name
		}
	}
	if m := agePattern.FindStringSubmatch(text); m != nil {
		if age, err := strconv.Atoi(m[1]); err == nil {
			info.Age = &age
		}
	}
	if m := genderPattern.FindStringSubmatch(text); m != nil {
		if g, ok := domain.ParseGender(m[1]); ok {
			info.Gender = &g
		}
	}
	return info
}

// ExtractVitals captures blood pressure (digits/digits + unit) and heart
// rate (digits + unit) readings. Missing readings simply omit the key.
func (e *Extractor) ExtractVitals(text string) domain.VitalSigns {
	vitals := domain.VitalSigns{}

	if m := bpPattern.FindStringSubmatch(text); m != nil {
		vitals[domain.VitalBloodPressure] = m[1]
	}
	if m := hrPattern.FindStringSubmatch(text); m != nil {
		vitals[domain.VitalHeartRate] = m[1]
	}
	return vitals
}

// ExtractLabMentions scans the text line by line for the recognized test
// vocabulary. Per line, the first vocabulary token found claims the line and
// at most one mention is emitted: the first whitespace-separated field that
// parses as a number becomes the value. A line whose numbers all fail to
// parse emits nothing. This deliberately trades a second genuine value on a
// dense line for immunity to duplicate emission from repeated digits.
func (e *Extractor) ExtractLabMentions(text string) []domain.RawLabMention {
	var mentions []domain.RawLabMention

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		upper := strings.ToUpper(line)

		for _, token := range e.vocab {
			if !strings.Contains(upper, token) {
				continue
			}
			if value, ok := firstNumber(line); ok {
				mentions = append(mentions, domain.RawLabMention{
					Label: displayToken(token),
					Value: value,
					Unit:  e.matchUnit(line),
				})
			}
			break // one token match per line
		}
	}
	return mentions
}

// matchUnit infers a unit by substring presence of the known vocabulary in
// the line, first match wins. Defaults to "Unknown".
func (e *Extractor) matchUnit(line string) string {
	lower := strings.ToLower(line)
	for _, u := range e.units {
		if strings.Contains(lower, strings.ToLower(u)) {
			return u
		}
	}
	return domain.UnitUnknown
}

func firstNumber(line string) (float64, bool) {
	for _, field := range strings.Fields(line) {
		if v, err := strconv.ParseFloat(field, 64); err == nil {
			return v, true
		}
	}
	return 0, false
}

// displayToken renders an upper-cased scan token as a mention label:
// short tokens (initialisms like WBC, MCHC) stay upper-cased, longer words
// are title-cased.
func displayToken(token string) string {
	if len(token) <= 4 {
		return token
	}
	return token[:1] + strings.ToLower(token[1:])
}
