package model

import (
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Listing represents one gallery listing page and the folder its images go to.
//
// Listing is created once per listing URL. Its Path is a freshly generated,
// never reused folder under the downloads directory:
//
//	cfg := &PathConfig{
//	    DownloadsPath:    "downloads",
//	    FolderNameFormat: "images_{id}",
//	    ImageNameFormat:  "image_{id}.jpg",
//	}
//	listing := NewListing("https://example.com/album/x", cfg)
//	// listing.Path = "downloads/images_3f6c0d0e-..."
type Listing struct {
	// URL is the listing page the images were extracted from.
	URL string

	// ID is the random identifier substituted for {id} in the folder name.
	ID string

	// Path is the output folder for this listing.
	Path string

	// Images holds one entry per extracted image link, in document order.
	Images []*Image
}

// PathConfig holds folder and file naming settings.
//
// Supported placeholders:
//   - {id} - a random UUID, fresh for every folder and every file
//   - {host} - the listing URL host (folder names only)
//   - {index} - 1-based image position, zero-padded to three digits (file names only)
type PathConfig struct {
	// DownloadsPath is the base directory, relative to the working directory
	// unless absolute.
	DownloadsPath string

	// FolderNameFormat is the template for the per-listing folder.
	// Example: "images_{id}"
	FolderNameFormat string

	// ImageNameFormat is the template for image file names, extension included.
	// Example: "image_{id}.jpg"
	ImageNameFormat string
}

// NewListing creates a Listing with a newly generated output folder path.
func NewListing(listingURL string, cfg *PathConfig) *Listing {
	l := &Listing{
		URL: listingURL,
		ID:  uuid.NewString(),
	}
	l.Path = l.parseFolderPath(cfg)
	return l
}

// AddImage appends a new image for imageURL and returns it.
func (l *Listing) AddImage(imageURL string, cfg *PathConfig) *Image {
	img := NewImage(l, len(l.Images)+1, imageURL, cfg)
	l.Images = append(l.Images, img)
	return img
}

// parseFolderPath computes the listing folder path from the config template.
func (l *Listing) parseFolderPath(cfg *PathConfig) string {
	name := cfg.FolderNameFormat
	if name == "" {
		name = "images_{id}"
	}
	name = strings.ReplaceAll(name, "{id}", l.ID)
	name = strings.ReplaceAll(name, "{host}", hostOf(l.URL))

	path := filepath.Join(cfg.DownloadsPath, sanitizeFileName(name))

	// Windows MAX_PATH for directories
	if len(path) >= 248 {
		path = path[:247]
	}

	return path
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "unknown"
	}
	return u.Hostname()
}

var (
	invalidChars   = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	trailingDots   = regexp.MustCompile(`\.+$`)
	repeatedSpaces = regexp.MustCompile(`\s+`)
)

// sanitizeFileName removes or replaces characters that are invalid in file/folder names.
func sanitizeFileName(name string) string {
	name = invalidChars.ReplaceAllString(name, "_")
	name = trailingDots.ReplaceAllString(name, "")
	name = repeatedSpaces.ReplaceAllString(name, " ")
	return strings.TrimRight(name, " ")
}
