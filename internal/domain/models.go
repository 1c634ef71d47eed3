package domain

// RawDocument is the unstructured input to one pipeline run: the text a
// decoding collaborator pulled out of a file, plus metadata tags. It is
// ephemeral; nothing retains it after the run.
type RawDocument struct {
	FileName string
	RawText  string
	Language string
}

// PatientInfo holds the demographics extracted from the report header.
// Every field is independently optional; nil means the source text did not
// contain a usable value.
type PatientInfo struct {
	Name   *string `json:"name"`
	Age    *int    `json:"age"`
	Gender *Gender `json:"gender"`
}

// VitalSigns maps recognized vital-sign kinds to the display string captured
// from the text, original unit included (e.g. "120/80 mmHg"). Absent readings
// simply do not appear as keys.
type VitalSigns map[VitalKind]string

// RawLabMention is a candidate lab finding before resolution: the test label
// as seen in text, the first parseable number on its line, and a unit hint
// ("Unknown" when no known unit token appeared nearby).
type RawLabMention struct {
	Label string
	Value float64
	Unit  string
}

// ReferenceEntry is the canonical identity of a lab test together with its
// closed reference interval [Low, High] and canonical unit.
type ReferenceEntry struct {
	Key         string  `json:"key"`
	DisplayName string  `json:"display_name"`
	Low         float64 `json:"low"`
	High        float64 `json:"high"`
	Unit        string  `json:"unit"`
}

// ResolvedLabResult is one lab finding after alias resolution and range
// classification. Highlight is always Status.Highlight(); NormalRange is
// "Not available" exactly when Status is Unknown.
type ResolvedLabResult struct {
	TestName    string    `json:"test_name"`
	Value       float64   `json:"value"`
	Unit        string    `json:"unit"`
	NormalRange string    `json:"normal_range"`
	Status      LabStatus `json:"status"`
	Highlight   Highlight `json:"highlight"`
	Confidence  float64   `json:"confidence"`
}

// PatientRecord is the assembled output of one pipeline run. It is
// constructed once and read-only thereafter; Labs preserves the order in
// which mentions first appeared in the normalized text. RawText is retained
// for auditability, not for re-parsing.
type PatientRecord struct {
	FileName   string              `json:"file_name"`
	Language   string              `json:"language"`
	Patient    PatientInfo         `json:"patient"`
	VitalSigns VitalSigns          `json:"vital_signs"`
	Labs       []ResolvedLabResult `json:"labs"`
	RawText    string              `json:"raw_text"`
}
