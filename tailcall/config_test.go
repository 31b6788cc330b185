package tailcall

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte("bound: 3\nworkers: 4\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Bound)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, DefaultConfig().MaxRegArgs, cfg.MaxRegArgs)
	assert.Nil(t, cfg.ABI)
	assert.Nil(t, cfg.Trace)
}

func TestParseConfigEmpty(t *testing.T) {
	cfg, err := ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestParseConfigErrors(t *testing.T) {
	for _, data := range []string{
		"bound: -1\n",
		"max_reg_args: -2\n",
		"workers: -3\n",
		"bound: [1, 2]\n",
	} {
		_, err := ParseConfig([]byte(data))
		assert.Error(t, err, "ParseConfig(%q)", data)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Bound = 7
	cfg.MaxRegArgs = 6
	cfg.Workers = 1
	data, err := MarshalConfig(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "bound: 7")
	assert.Contains(t, string(data), "max_reg_args: 6")
	assert.NotContains(t, string(data), "trace")

	dir, err := ioutil.TempDir("", "rtltail")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, DefaultConfigFile)
	require.NoError(t, ioutil.WriteFile(path, data, 0644))

	got, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join("testdata", "does-not-exist.yaml"))
	assert.True(t, os.IsNotExist(err), "got %v, want a not-exist error", err)

	dir, err := ioutil.TempDir("", "rtltail")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, DefaultConfigFile)
	require.NoError(t, ioutil.WriteFile(path, []byte("bound: -5\n"), 0644))
	_, err = LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}
