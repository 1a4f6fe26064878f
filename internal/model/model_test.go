package model

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPathConfig() *PathConfig {
	return &PathConfig{
		DownloadsPath:    "downloads",
		FolderNameFormat: "images_{id}",
		ImageNameFormat:  "image_{id}.jpg",
	}
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"images_abc", "images_abc"},
		{"file:with:colons", "file_with_colons"},
		{"file/with\\slashes", "file_with_slashes"},
		{"file?with*wildcards", "file_with_wildcards"},
		{"trailing dots...", "trailing dots"},
		{"multiple   spaces", "multiple spaces"},
		{"trailing spaces   ", "trailing spaces"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := sanitizeFileName(tt.input)
			if got != tt.want {
				t.Errorf("sanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewListing_FolderPath(t *testing.T) {
	listing := NewListing("http://example.test/gallery", testPathConfig())

	assert.Equal(t, "downloads", filepath.Dir(listing.Path))

	name := filepath.Base(listing.Path)
	require.True(t, strings.HasPrefix(name, "images_"), "folder %q", name)
	_, err := uuid.Parse(strings.TrimPrefix(name, "images_"))
	assert.NoError(t, err)
	assert.Equal(t, "images_"+listing.ID, name)
}

func TestNewListing_FreshFolderEachTime(t *testing.T) {
	cfg := testPathConfig()
	a := NewListing("http://example.test/gallery", cfg)
	b := NewListing("http://example.test/gallery", cfg)

	assert.NotEqual(t, a.Path, b.Path)
}

func TestNewListing_HostPlaceholder(t *testing.T) {
	cfg := testPathConfig()
	cfg.FolderNameFormat = "{host}_{id}"

	listing := NewListing("https://img.example.test:8443/album/1", cfg)
	assert.True(t, strings.HasPrefix(filepath.Base(listing.Path), "img.example.test_"))
}

func TestListing_AddImage(t *testing.T) {
	cfg := testPathConfig()
	listing := NewListing("http://example.test/gallery", cfg)

	first := listing.AddImage("http://example.test/a.jpg", cfg)
	second := listing.AddImage("http://example.test/b.jpg", cfg)

	require.Len(t, listing.Images, 2)
	assert.Equal(t, 1, first.Index)
	assert.Equal(t, 2, second.Index)
	assert.Equal(t, listing.Path, filepath.Dir(first.Path))
	assert.NotEqual(t, first.Path, second.Path)

	name := filepath.Base(first.Path)
	assert.True(t, strings.HasPrefix(name, "image_"))
	assert.Equal(t, ".jpg", filepath.Ext(name))
}

func TestImage_IndexPlaceholder(t *testing.T) {
	cfg := testPathConfig()
	cfg.ImageNameFormat = "{index}.jpg"
	listing := NewListing("http://example.test/gallery", cfg)

	img := listing.AddImage("http://example.test/a.jpg", cfg)
	assert.Equal(t, "001.jpg", filepath.Base(img.Path))
}
