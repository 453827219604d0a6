package suggest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatic_DeterministicPerDay(t *testing.T) {
	s := NewStatic()
	ctx := context.Background()
	day := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

	o1, err := s.OpeningSentence(ctx, day)
	require.NoError(t, err)
	o2, err := s.OpeningSentence(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, o1, o2)
	assert.NotEmpty(t, o1)

	p1, err := s.Suggestions(ctx, day, 3)
	require.NoError(t, err)
	p2, err := s.Suggestions(ctx, day, 3)
	require.NoError(t, err)
	assert.Equal(t, p1, p2)
	assert.Len(t, p1, 3)
}

func TestStatic_VariesAcrossDays(t *testing.T) {
	s := NewStatic()
	ctx := context.Background()

	o1, _ := s.OpeningSentence(ctx, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC))
	o2, _ := s.OpeningSentence(ctx, time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC))
	assert.NotEqual(t, o1, o2)
}

func TestStatic_SuggestionCountClamped(t *testing.T) {
	s := NewStatic()
	got, err := s.Suggestions(context.Background(), time.Now(), -1)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}
