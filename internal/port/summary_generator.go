package port

import "context"

// SummaryGenerator abstracts the narrative-generation collaborator that
// turns the structured record's rendered prompt into patient-friendly
// prose. The core never calls it; only the service layer does.
type SummaryGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
