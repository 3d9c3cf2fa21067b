package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestLoad(t *testing.T) {
	for _, tc := range []struct {
		name     string
		data     string
		expected *Config
	}{
		{
			name:     "empty",
			data:     "",
			expected: Default(),
		},
		{
			name: "full",
			data: "tile_dir: /srv/srtm3\n" +
				"cache_size: 4\n" +
				"page_cache_size: 262144\n" +
				"cols: 1201\n" +
				"rows: 1201\n",
			expected: &Config{
				TileDir:       "/srv/srtm3",
				CacheSize:     4,
				PageCacheSize: 262144,
				Cols:          1201,
				Rows:          1201,
			},
		},
		{
			name: "defaults",
			data: "tile_dir: \"\"\ncache_size: -1\n",
			expected: &Config{
				TileDir:   DefaultTileDir,
				CacheSize: DefaultCacheSize,
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			assert.NoError(t, os.WriteFile(path, []byte(tc.data), 0o666))
			actual, err := Load(path)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.IsError(t, err, fs.ErrNotExist)

	path := filepath.Join(t.TempDir(), "config.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("cache_size: [\n"), 0o666))
	_, err = Load(path)
	assert.Error(t, err)
}
