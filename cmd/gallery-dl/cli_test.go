package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseTest(t *testing.T, args ...string) (*CLI, error) {
	t.Helper()
	return parseCLI(args,
		kong.Writers(io.Discard, io.Discard),
		kong.Exit(func(int) {}),
	)
}

func TestParseCLI_URLs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"single flag", []string{"-u", "https://a.test/1"}, []string{"https://a.test/1"}},
		{"values after the flag", []string{"-u", "https://a.test/1", "https://a.test/2", "https://a.test/3"}, []string{"https://a.test/1", "https://a.test/2", "https://a.test/3"}},
		{"long flag", []string{"--urls", "https://a.test/1"}, []string{"https://a.test/1"}},
		{"comma in query stays one URL", []string{"-u", "https://a.test/gallery?ids=1,2"}, []string{"https://a.test/gallery?ids=1,2"}},
		{"comma in path stays one URL", []string{"--urls=https://a.test/a,b", "https://a.test/c,d"}, []string{"https://a.test/a,b", "https://a.test/c,d"}},
		{"repeated", []string{"-u", "https://a.test/1", "-u", "https://a.test/2"}, []string{"https://a.test/1", "https://a.test/2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, err := parseTest(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cli.listingURLs())
		})
	}
}

func TestParseCLI_URLsRequired(t *testing.T) {
	_, err := parseTest(t)
	assert.Error(t, err)

	_, err = parseTest(t, "--verbose")
	assert.Error(t, err)
}

func TestCLI_SettingsOverrides(t *testing.T) {
	cli, err := parseTest(t, "-u", "https://a.test/1", "-o", "out", "-w", "5", "--render", "--resize")
	require.NoError(t, err)

	settings, err := cli.settings()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(settings.DownloadsPath))
	assert.Equal(t, "out", filepath.Base(settings.DownloadsPath))
	assert.Equal(t, 5, settings.MaxConcurrentImages)
	assert.True(t, settings.RenderJavaScript)
	assert.True(t, settings.ResizeImages)
}

func TestCLI_SettingsDefaults(t *testing.T) {
	cli, err := parseTest(t, "-u", "https://a.test/1")
	require.NoError(t, err)

	settings, err := cli.settings()
	require.NoError(t, err)
	assert.Equal(t, "downloads", settings.DownloadsPath)
	assert.Equal(t, 3, settings.MaxConcurrentImages)
	assert.False(t, settings.RenderJavaScript)
}

func TestCLI_SettingsFromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"downloads_path": "from-config", "max_concurrent_images": 2}`), 0644))

	cli, err := parseTest(t, "-u", "https://a.test/1", "-c", path)
	require.NoError(t, err)

	settings, err := cli.settings()
	require.NoError(t, err)
	assert.Equal(t, "from-config", settings.DownloadsPath)
	assert.Equal(t, 2, settings.MaxConcurrentImages)
	assert.Equal(t, ".md.jpg", settings.ThumbnailSuffix)
}

func TestCLI_SettingsBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))

	cli, err := parseTest(t, "-u", "https://a.test/1", "-c", path)
	require.NoError(t, err)

	_, err = cli.settings()
	assert.Error(t, err)
}
