package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestConfig(t *testing.T, datasetsPath string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "compass.toml")
	contents := `
[datasets]
path = "` + datasetsPath + `"

[logging]
level = "error"
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestNewApp(t *testing.T) {
	datasets := t.TempDir()
	a, err := NewApp(writeTestConfig(t, datasets))
	require.NoError(t, err)

	assert.Equal(t, datasets, a.Datasets.Dir())
	assert.NotNil(t, a.MCPServer)
	assert.False(t, a.GapClient.Configured())
	assert.False(t, a.StartupTime.IsZero())
}

func TestNewApp_ResolvesDatasets(t *testing.T) {
	datasets := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(datasets, "backend-developer.json"),
		[]byte(`{"questions":[{"q":"describe a goroutine leak"}]}`), 0644))

	a, err := NewApp(writeTestConfig(t, datasets))
	require.NoError(t, err)

	ds, err := a.Datasets.Resolve(context.Background(), "Backend Developer")
	require.NoError(t, err)
	assert.Equal(t, "backend-developer.json", ds.Filename)
}
