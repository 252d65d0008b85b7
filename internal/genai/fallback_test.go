package genai_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiksha/internal/genai"
	"shiksha/internal/port"
)

type stubGenerator struct {
	out   *port.GenerateOutput
	err   error
	calls int
}

func (s *stubGenerator) Generate(ctx context.Context, input port.GenerateInput) (*port.GenerateOutput, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.out, nil
}

func TestFallbackGenerator_PrimarySucceeds(t *testing.T) {
	primary := &stubGenerator{out: &port.GenerateOutput{Text: "from primary"}}
	secondary := &stubGenerator{out: &port.GenerateOutput{Text: "from secondary"}}
	f := genai.NewFallbackGenerator([]port.ContentGenerator{primary, secondary}, []string{"primary", "secondary"})

	out, err := f.Generate(context.Background(), port.GenerateInput{Prompt: "p"})

	require.NoError(t, err)
	assert.Equal(t, "from primary", out.Text)
	assert.Equal(t, 0, secondary.calls)
}

func TestFallbackGenerator_FallsThroughOnError(t *testing.T) {
	primary := &stubGenerator{err: errors.New("bad gateway")}
	secondary := &stubGenerator{out: &port.GenerateOutput{Text: "from secondary"}}
	f := genai.NewFallbackGenerator([]port.ContentGenerator{primary, secondary}, []string{"primary", "secondary"})

	out, err := f.Generate(context.Background(), port.GenerateInput{Prompt: "p"})

	require.NoError(t, err)
	assert.Equal(t, "from secondary", out.Text)
}

func TestFallbackGenerator_RateLimitOpensCircuit(t *testing.T) {
	primary := &stubGenerator{err: genai.NewRateLimitError("primary", errors.New("429"), 60)}
	secondary := &stubGenerator{out: &port.GenerateOutput{Text: "from secondary"}}
	f := genai.NewFallbackGenerator([]port.ContentGenerator{primary, secondary}, []string{"primary", "secondary"})

	_, err := f.Generate(context.Background(), port.GenerateInput{Prompt: "p"})
	require.NoError(t, err)
	assert.Equal(t, 1, primary.calls)

	// The open circuit keeps the primary out of the next attempt.
	_, err = f.Generate(context.Background(), port.GenerateInput{Prompt: "p"})
	require.NoError(t, err)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 2, secondary.calls)
}

func TestFallbackGenerator_AllRateLimited(t *testing.T) {
	primary := &stubGenerator{err: genai.NewRateLimitError("primary", errors.New("429"), 30)}
	secondary := &stubGenerator{err: genai.NewRateLimitError("secondary", errors.New("429"), 90)}
	f := genai.NewFallbackGenerator([]port.ContentGenerator{primary, secondary}, []string{"primary", "secondary"})

	_, err := f.Generate(context.Background(), port.GenerateInput{Prompt: "p"})

	var rlErr *genai.RateLimitError
	require.True(t, errors.As(err, &rlErr))
	assert.Equal(t, "all", rlErr.Provider)
	// Retry-after reflects the earliest circuit reset.
	assert.LessOrEqual(t, rlErr.RetryAfter.Seconds(), float64(31))
}

func TestFallbackGenerator_AllFailed(t *testing.T) {
	primary := &stubGenerator{err: errors.New("first down")}
	secondary := &stubGenerator{err: errors.New("second down")}
	f := genai.NewFallbackGenerator([]port.ContentGenerator{primary, secondary}, []string{"primary", "secondary"})

	_, err := f.Generate(context.Background(), port.GenerateInput{Prompt: "p"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "all generators failed")
	assert.Contains(t, err.Error(), "second down")
}
