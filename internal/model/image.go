package model

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Image is a single image link and the file it will be written to.
type Image struct {
	// Listing is a reference to the parent listing.
	Listing *Listing

	// Index is the 1-based position of the image on the listing page.
	Index int

	// URL is the absolute, full-size image URL.
	URL string

	// Path is the destination file path inside Listing.Path.
	Path string
}

// NewImage creates an Image with a freshly generated destination path.
func NewImage(listing *Listing, index int, imageURL string, cfg *PathConfig) *Image {
	img := &Image{
		Listing: listing,
		Index:   index,
		URL:     imageURL,
	}
	img.Path = img.parseFilePath(cfg)
	return img
}

func (i *Image) parseFilePath(cfg *PathConfig) string {
	name := cfg.ImageNameFormat
	if name == "" {
		name = "image_{id}.jpg"
	}
	name = strings.ReplaceAll(name, "{id}", uuid.NewString())
	name = strings.ReplaceAll(name, "{index}", fmt.Sprintf("%03d", i.Index))
	return filepath.Join(i.Listing.Path, sanitizeFileName(name))
}
