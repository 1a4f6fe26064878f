// Package config provides configuration management for gallery-downloader.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Conversion to PathConfig for the model package
//
// # Default Settings
//
// Use DefaultSettings() to get the stock behaviour:
//
//	settings := config.DefaultSettings()
//	// Downloads to ./downloads/images_<id>/image_<id>.jpg
//	// Three images downloaded at a time
//	// No HTTP timeout, no retries
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // A missing file yields defaults, only malformed JSON errors
//	}
//
// # Configuration Options
//
// Settings includes options for:
//   - Download directory and folder/file naming
//   - Concurrent download limit
//   - Image selector and thumbnail suffix rewrite
//   - User-Agent, timeout and headless rendering of listing pages
//   - Optional image resizing
package config
