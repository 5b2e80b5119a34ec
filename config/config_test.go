package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "debug", cfg.Render.Format)
	assert.Equal(t, "  ", cfg.Render.Indent)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantFormat string
		wantIndent string
	}{
		{"empty document", "", "debug", "  "},
		{"format only", "render:\n  format: json\n", "json", "  "},
		{"explicit empty format", "render:\n  format: \"\"\n", "debug", "  "},
		{"compact json", "render:\n  format: json\n  indent: \"\"\n", "json", ""},
		{"tab indent", "render:\n  format: json\n  indent: \"\\t\"\n", "json", "\t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.wantFormat, cfg.Render.Format)
			assert.Equal(t, tt.wantIndent, cfg.Render.Indent)
		})
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("render: [unclosed"))
	assert.Error(t, err)
}
