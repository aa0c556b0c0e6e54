package feed_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Devyanikhande/CivicGuard/internal/adapter/feed"
	"github.com/Devyanikhande/CivicGuard/internal/domain"
)

func TestSampleSources_AllWellFormed(t *testing.T) {
	for source, inputs := range feed.SampleSources() {
		for _, raw := range inputs {
			_, err := domain.Normalize(raw)
			assert.NoError(t, err, "sample %s/%s must normalize cleanly", source, raw.ID)
		}
	}
}

func TestSampleAssets(t *testing.T) {
	assets := feed.SampleAssets()
	require.Len(t, assets, 2)
	for _, a := range assets {
		assert.NotEmpty(t, a.ID)
		assert.NotEmpty(t, a.Name)
		assert.GreaterOrEqual(t, a.Capacity, 0)
	}
}

func TestLoadAssets_EmptyPathUsesSamples(t *testing.T) {
	assets, err := feed.LoadAssets("")
	require.NoError(t, err)
	if diff := cmp.Diff(feed.SampleAssets(), assets); diff != "" {
		t.Fatalf("assets mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadAssets_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assets.json")
	data := `[{"id":"a1","name":"Armory","lat":37.7,"lon":-122.4,"capacity":120}]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	assets, err := feed.LoadAssets(path)
	require.NoError(t, err)
	require.Len(t, assets, 1)
	assert.Equal(t, "Armory", assets[0].Name)
	assert.Equal(t, 120, assets[0].Capacity)
}

func TestLoadAssets_NegativeCapacity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assets.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"a1","name":"Armory","capacity":-1}]`), 0o644))

	_, err := feed.LoadAssets(path)
	assert.ErrorContains(t, err, "negative capacity")
}

func TestLoadAssets_MissingFile(t *testing.T) {
	_, err := feed.LoadAssets(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadAssets_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assets.json")
	require.NoError(t, os.WriteFile(path, []byte("[{"), 0o644))

	_, err := feed.LoadAssets(path)
	assert.Error(t, err)
}
