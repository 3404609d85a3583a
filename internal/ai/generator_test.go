package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePortfolio_SendsFixedInstructionAndBrief(t *testing.T) {
	mock := &MockChat{Reply: "  --html--\n<p>x</p>\n--html--  "}
	g := NewGenerator(mock)

	reply, err := g.GeneratePortfolio(context.Background(), "I am a Go developer.")
	require.NoError(t, err)

	assert.Equal(t, "--html--\n<p>x</p>\n--html--", reply)
	assert.Equal(t, "I am a Go developer.", mock.LastUserPrompt)
	assert.Contains(t, mock.LastSystemPrompt, "Hero, About, Skills, Experience, Projects, Achievements, Contact")
	assert.Contains(t, mock.LastSystemPrompt, "--html--")
	assert.Contains(t, mock.LastSystemPrompt, "--css--")
	assert.Contains(t, mock.LastSystemPrompt, "--js--")
}

func TestGeneratePortfolio_PropagatesUpstreamError(t *testing.T) {
	upstream := errors.New("connection reset by peer")
	g := NewGenerator(&MockChat{Err: upstream})

	_, err := g.GeneratePortfolio(context.Background(), "brief")
	require.Error(t, err)
	assert.True(t, errors.Is(err, upstream))
}
