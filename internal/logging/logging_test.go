package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "info", false)
	require.NoError(t, err)
	log.Debug().Msg("hidden")
	log.Info().Int("batch", 3).Msg("extracted")

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "extracted", got["message"])
	assert.Equal(t, float64(3), got["batch"])
	assert.Equal(t, "info", got["level"])
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "", true)
	require.NoError(t, err)
	log.Warn().Str("file", "r.json").Msg("skipped")
	assert.Contains(t, buf.String(), "skipped")
	assert.Contains(t, buf.String(), "file=r.json")
}

func TestNewBadLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud", false)
	assert.Error(t, err)
}
