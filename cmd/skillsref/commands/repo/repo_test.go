package repo

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/skillsref/internal/config"
)

func TestListCommand_Empty(t *testing.T) {
	listJSON = false

	var buf bytes.Buffer
	err := runListWithWriter(&buf, filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No repositories configured.")
	assert.Contains(t, buf.String(), "skillsref repo add")
}

func TestListCommand_Tabular(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, config.Save(&config.Config{
		Version: 1,
		Repos: []config.RepoConfig{
			{Name: "zeta", URL: "https://example.com/zeta.git", Path: "/cache/zeta"},
			{Name: "alpha", URL: "https://example.com/alpha.git", Path: "/cache/alpha"},
		},
	}, cfgPath))

	listJSON = false
	var buf bytes.Buffer
	require.NoError(t, runListWithWriter(&buf, cfgPath))

	out := buf.String()
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "zeta")
	// Sorted by name.
	assert.Less(t, strings.Index(out, "alpha"), strings.Index(out, "zeta"))
}

func TestListCommand_JSON(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, config.Save(&config.Config{
		Version: 1,
		Repos: []config.RepoConfig{
			{Name: "solo", URL: "https://example.com/solo.git", Path: "/cache/solo"},
		},
	}, cfgPath))

	listJSON = true
	defer func() { listJSON = false }()

	var buf bytes.Buffer
	require.NoError(t, runListWithWriter(&buf, cfgPath))

	var repos []config.RepoConfig
	require.NoError(t, json.Unmarshal(buf.Bytes(), &repos))
	require.Len(t, repos, 1)
	assert.Equal(t, "solo", repos[0].Name)
}
