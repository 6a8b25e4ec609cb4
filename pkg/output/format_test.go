package output_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/xpath/pkg/output"
)

func TestFormatString(t *testing.T) {
	tests := []struct {
		format   output.Format
		expected string
	}{
		{output.FormatAuto, "auto"},
		{output.FormatTerminal, "term"},
		{output.FormatText, "text"},
		{output.FormatJSON, "json"},
		{output.Format(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.format.String())
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected output.Format
		wantErr  bool
	}{
		{"auto", output.FormatAuto, false},
		{"", output.FormatAuto, false},
		{"term", output.FormatTerminal, false},
		{"Terminal", output.FormatTerminal, false},
		{"plain", output.FormatText, false},
		{"JSON", output.FormatJSON, false},
		{"xml", output.FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := output.ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDetectFormat_NotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, output.FormatText, output.DetectFormat(f))
}

func TestDetectFormat_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, output.FormatText, output.DetectFormat(os.Stdout))
}
