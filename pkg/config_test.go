package events_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	events "github.com/geirtul/event-classification-example/pkg"
)

func TestLoadConfiguration_DefaultsAndOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"file_in": "run_42.txt",
		"file_out": "run_42.h5",
		"test_fraction": 0.25,
		"on_malformed": "abort"
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	config, err := events.LoadConfiguration(path)
	require.NoError(t, err)

	assert.Equal(t, "run_42.txt", config.FileIn)
	assert.Equal(t, "run_42.h5", config.FileOut)
	assert.Equal(t, 0.25, config.TestFraction)
	assert.Equal(t, events.AbortOnMalformed, config.OnMalformed)

	// Unset fields keep their defaults.
	defaults := events.DefaultConfiguration()
	assert.Equal(t, defaults.MaxEvents, config.MaxEvents)
	assert.Equal(t, defaults.Seed, config.Seed)
	assert.Equal(t, defaults.CompressionLevel, config.CompressionLevel)
	assert.Equal(t, defaults.Normalize, config.Normalize)
}

func TestLoadConfiguration_MissingFile(t *testing.T) {
	_, err := events.LoadConfiguration("/no/such/config.json")
	assert.Error(t, err)
}

func TestMalformedPolicy_JSON(t *testing.T) {
	var policy events.MalformedPolicy

	require.NoError(t, json.Unmarshal([]byte(`"abort"`), &policy))
	assert.Equal(t, events.AbortOnMalformed, policy)

	require.NoError(t, json.Unmarshal([]byte(`"skip"`), &policy))
	assert.Equal(t, events.SkipMalformed, policy)

	assert.Error(t, json.Unmarshal([]byte(`"ignore"`), &policy))

	data, err := json.Marshal(events.AbortOnMalformed)
	require.NoError(t, err)
	assert.Equal(t, `"abort"`, string(data))
}
