package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGUIFlags(t *testing.T) {
	dir, err := parseGUIFlags([]string{"--config-dir", "/tmp/overpane"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/overpane", dir)

	dir, err = parseGUIFlags(nil)
	require.NoError(t, err)
	assert.Empty(t, dir)

	_, err = parseGUIFlags([]string{"--bogus"})
	assert.Error(t, err)
}

func TestBuildInfo_UsesLinkerVars(t *testing.T) {
	info := buildInfo()

	assert.Equal(t, version, info.Version)
	assert.NotEmpty(t, info.GoVersion)
}
