package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/handiism/gallery-downloader/internal/model"
)

// DefaultImageSelector matches the gallery thumbnails on a listing page.
const DefaultImageSelector = "div.list-item-image.fixed-size > a > img"

// Settings holds all configuration options.
type Settings struct {
	// Download settings
	DownloadsPath       string `json:"downloads_path"`
	MaxConcurrentImages int    `json:"max_concurrent_images"`

	// File naming
	FolderNameFormat string `json:"folder_name_format"`
	ImageNameFormat  string `json:"image_name_format"`

	// Extraction
	ImageSelector   string `json:"image_selector"`
	ThumbnailSuffix string `json:"thumbnail_suffix"`
	FullSizeSuffix  string `json:"full_size_suffix"`

	// HTTP settings
	UserAgent          string `json:"user_agent"`
	HTTPTimeoutSeconds int    `json:"http_timeout_seconds"` // 0 disables the timeout
	RenderJavaScript   bool   `json:"render_javascript"`

	// Post-processing
	ResizeImages bool `json:"resize_images"`
	MaxImageSize int  `json:"max_image_size"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		DownloadsPath:       "downloads",
		MaxConcurrentImages: 3,

		FolderNameFormat: "images_{id}",
		ImageNameFormat:  "image_{id}.jpg",

		ImageSelector:   DefaultImageSelector,
		ThumbnailSuffix: ".md.jpg",
		FullSizeSuffix:  ".jpg",

		UserAgent:          "GalleryDownloader",
		HTTPTimeoutSeconds: 0,
		RenderJavaScript:   false,

		ResizeImages: false,
		MaxImageSize: 2000,
	}
}

// Load reads settings from a JSON file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// HTTPTimeout returns the client timeout as a duration. Zero means none.
func (s *Settings) HTTPTimeout() time.Duration {
	if s.HTTPTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(s.HTTPTimeoutSeconds) * time.Second
}

// Concurrency returns the worker limit, never less than one.
func (s *Settings) Concurrency() int {
	if s.MaxConcurrentImages < 1 {
		return 1
	}
	return s.MaxConcurrentImages
}

// ToPathConfig converts settings to PathConfig.
func (s *Settings) ToPathConfig() *model.PathConfig {
	return &model.PathConfig{
		DownloadsPath:    s.DownloadsPath,
		FolderNameFormat: s.FolderNameFormat,
		ImageNameFormat:  s.ImageNameFormat,
	}
}
