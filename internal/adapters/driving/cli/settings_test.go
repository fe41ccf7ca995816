package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsCmd_Use(t *testing.T) {
	assert.Equal(t, "settings", settingsCmd.Use)
}

func TestSettingsCmd_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, sub := range settingsCmd.Commands() {
		names[sub.Name()] = true
	}

	assert.True(t, names["show"])
	assert.True(t, names["name"])
	assert.True(t, names["fetch"])
	assert.True(t, names["offset"])
}

func TestSettingsShow_Defaults(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"settings", "show"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Calculator name:  main")
	assert.Contains(t, out, "Fetch:            not configured")
	assert.Contains(t, out, "Day offset:       24h0m0s")
}

func TestSettingsName_Persists(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"settings", "name", "lab"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), `Calculator name set to "lab".`)

	buf.Reset()
	rootCmd.SetArgs([]string{"settings", "show"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, buf.String(), "Calculator name:  lab")
}

func TestSettingsFetch_SetsBaseURL(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"settings", "fetch", "https://api.example.com"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "Fetch base URL set to https://api.example.com.")

	buf.Reset()
	rootCmd.SetArgs([]string{"settings", "show"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, buf.String(), "Fetch base URL:   https://api.example.com")
}

func TestSettingsFetch_EmptyDisables(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"settings", "fetch", ""})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Fetching disabled.")
}

func TestSettingsOffset_SetsDuration(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"settings", "offset", "48h"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "Day offset set to 48h0m0s.")

	buf.Reset()
	rootCmd.SetArgs([]string{"settings", "show"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, buf.String(), "Day offset:       48h0m0s")
}

func TestSettingsOffset_InvalidDuration(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"settings", "offset", "soon"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "soon")
}
