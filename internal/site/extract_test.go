package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSection(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		start    string
		end      string
		expected string
	}{
		{
			name:     "identical start and end markers",
			text:     "--html--\n<p>x</p>\n--html--",
			start:    "--html--",
			end:      "--html--",
			expected: "<p>x</p>",
		},
		{
			name:     "distinct markers",
			text:     "before <start> body <end> after",
			start:    "<start>",
			end:      "<end>",
			expected: "body",
		},
		{
			name:     "start marker missing",
			text:     "no markers here <end>",
			start:    "<start>",
			end:      "<end>",
			expected: "",
		},
		{
			name:     "end marker missing",
			text:     "<start> body without end",
			start:    "<start>",
			end:      "<end>",
			expected: "",
		},
		{
			name:     "markers reversed in order",
			text:     "<end> body <start>",
			start:    "<start>",
			end:      "<end>",
			expected: "",
		},
		{
			name:     "empty section",
			text:     "<start><end>",
			start:    "<start>",
			end:      "<end>",
			expected: "",
		},
		{
			name:     "whitespace trimmed",
			text:     "<start>\n\n  padded  \n\n<end>",
			start:    "<start>",
			end:      "<end>",
			expected: "padded",
		},
		{
			name:     "only first occurrence pair used",
			text:     "--css--\nfirst\n--css--\nsecond\n--css--",
			start:    "--css--",
			end:      "--css--",
			expected: "first",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractSection(tt.text, tt.start, tt.end))
		})
	}
}
