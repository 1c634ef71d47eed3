package pipeline

import (
	"medreportz/internal/domain"
	"medreportz/internal/reference"
)

// Pipeline wires the five stages over one reference table. A Pipeline is
// immutable after construction; concurrent Runs on different documents need
// no coordination.
type Pipeline struct {
	normalizer *Normalizer
	extractor  *Extractor
	resolver   *Resolver
	classifier *Classifier
}

// New builds a Pipeline over the given reference table.
func New(table *reference.Table) *Pipeline {
	return &Pipeline{
		normalizer: NewNormalizer(table.Repairs()),
		extractor:  NewExtractor(table),
		resolver:   NewResolver(table),
		classifier: NewClassifier(table),
	}
}

// Normalize exposes the text-normalization stage on its own; the service
// layer and tests use it directly.
func (p *Pipeline) Normalize(raw string) string {
	return p.normalizer.Normalize(raw)
}

// Run executes the full pipeline on one document and assembles the record.
// Data-quality problems never fail a run: unmatched fields come back nil,
// unresolvable mentions come back with status Unknown, and the worst case
// is a structurally valid record with everything empty.
func (p *Pipeline) Run(doc domain.RawDocument) domain.PatientRecord {
	text := p.normalizer.Normalize(doc.RawText)

	patient := p.extractor.ExtractPatient(text)
	vitals := p.extractor.ExtractVitals(text)
	mentions := p.extractor.ExtractLabMentions(text)

	labs := make([]domain.ResolvedLabResult, 0, len(mentions))
	for _, mention := range mentions {
		key, confidence := p.resolver.Resolve(mention)
		labs = append(labs, p.classifier.Classify(key, mention, confidence))
	}

	return Assemble(doc.FileName, doc.Language, text, patient, vitals, labs)
}
