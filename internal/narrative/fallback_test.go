package narrative

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medreportz/internal/port"
)

// stubGenerator is a scripted SummaryGenerator for fallback tests.
type stubGenerator struct {
	out   string
	err   error
	calls int
}

func (s *stubGenerator) Generate(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.out, s.err
}

func TestFallbackGenerator_PrimarySucceeds(t *testing.T) {
	primary := &stubGenerator{out: "summary"}
	secondary := &stubGenerator{out: "unused"}
	f := NewFallbackGenerator(
		[]port.SummaryGenerator{primary, secondary},
		[]string{"primary", "secondary"},
	)

	out, err := f.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "summary", out)
	assert.Equal(t, 0, secondary.calls)
}

func TestFallbackGenerator_FallsThroughOnError(t *testing.T) {
	primary := &stubGenerator{err: errors.New("boom")}
	secondary := &stubGenerator{out: "rescued"}
	f := NewFallbackGenerator(
		[]port.SummaryGenerator{primary, secondary},
		[]string{"primary", "secondary"},
	)

	out, err := f.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "rescued", out)
}

func TestFallbackGenerator_AllFail(t *testing.T) {
	primary := &stubGenerator{err: errors.New("boom")}
	secondary := &stubGenerator{err: errors.New("bust")}
	f := NewFallbackGenerator(
		[]port.SummaryGenerator{primary, secondary},
		[]string{"primary", "secondary"},
	)

	_, err := f.Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all summary providers failed")
}

func TestFallbackGenerator_RateLimitOpensCircuit(t *testing.T) {
	primary := &stubGenerator{err: NewRateLimitError("primary", errors.New("429"), 300)}
	secondary := &stubGenerator{out: "rescued"}
	f := NewFallbackGenerator(
		[]port.SummaryGenerator{primary, secondary},
		[]string{"primary", "secondary"},
	)

	out, err := f.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "rescued", out)
	assert.Equal(t, 1, primary.calls)

	// Second call skips the rate-limited primary entirely.
	out, err = f.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "rescued", out)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 2, secondary.calls)
}

func TestFallbackGenerator_AllRateLimited(t *testing.T) {
	primary := &stubGenerator{err: NewRateLimitError("primary", errors.New("429"), 120)}
	secondary := &stubGenerator{err: NewRateLimitError("secondary", errors.New("429"), 60)}
	f := NewFallbackGenerator(
		[]port.SummaryGenerator{primary, secondary},
		[]string{"primary", "secondary"},
	)

	_, err := f.Generate(context.Background(), "prompt")
	require.Error(t, err)

	var rlErr *RateLimitError
	require.ErrorAs(t, err, &rlErr)
	assert.Equal(t, "all", rlErr.Provider)
}

func TestParseRetryAfterHeader(t *testing.T) {
	assert.Equal(t, 0, ParseRetryAfterHeader(""))
	assert.Equal(t, 0, ParseRetryAfterHeader("soon"))
	assert.Equal(t, 90, ParseRetryAfterHeader("90"))
}
