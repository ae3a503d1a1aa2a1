package config_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cavepaths/cave"
	"github.com/katalvlaran/cavepaths/config"
	"github.com/katalvlaran/cavepaths/paths"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	ps, err := cfg.Policies()
	require.NoError(t, err)
	assert.Equal(t, paths.Policies(), ps)
}

func TestLoadOverridesDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/cavepaths.yaml", []byte(`
policy: extra
workers: 4
cache_dir: /var/cache/cavepaths
`), 0o644))

	cfg, err := config.Load(fs, "/etc/cavepaths.yaml")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "/var/cache/cavepaths", cfg.CacheDir)
	assert.Equal(t, cave.StartName, cfg.Start, "untouched keys keep defaults")

	ps, err := cfg.Policies()
	require.NoError(t, err)
	assert.Equal(t, []paths.Policy{paths.OneExtraVisit}, ps)
}

func TestLoadEmptyFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "empty.yaml", nil, 0o644))

	cfg, err := config.Load(fs, "empty.yaml")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadRejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":  "colour: blue\n",
		"bad policy":   "policy: twice\n",
		"zero workers": "workers: 0\n",
		"same roles":   "start: x\nend: x\n",
		"empty end":    "end: \"\"\n",
		"not yaml":     "policy: [\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, "c.yaml", []byte(body), 0o644))
			_, err := config.Load(fs, "c.yaml")
			require.ErrorIs(t, err, config.ErrInvalid)
			assert.ErrorIs(t, err, cave.ErrConfig)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(afero.NewMemMapFs(), "nope.yaml")
	require.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalid)
}
