package download

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/handiism/gallery-downloader/internal/config"
	"github.com/handiism/gallery-downloader/internal/gallery"
	"github.com/handiism/gallery-downloader/internal/http"
	ioutils "github.com/handiism/gallery-downloader/internal/io"
	"github.com/handiism/gallery-downloader/internal/model"
	"golang.org/x/sync/errgroup"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// String returns the lower-case level name.
func (l ProgressLevel) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelVerbose:
		return "verbose"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelSuccess:
		return "success"
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// ProgressEvent represents a download progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Option configures a Manager.
type Option func(*Manager)

// WithPageFetcher sets the fetcher used for listing pages.
func WithPageFetcher(f http.Fetcher) Option {
	return func(m *Manager) { m.pageFetcher = f }
}

// WithImageClient sets the client used for image downloads.
func WithImageClient(c *http.Client) Option {
	return func(m *Manager) { m.imageClient = c }
}

// Manager coordinates listing downloads.
//
// The progress callback is invoked from download goroutines and must be
// safe for concurrent use.
type Manager struct {
	settings     *config.Settings
	pathConfig   *model.PathConfig
	pageFetcher  http.Fetcher
	imageClient  *http.Client
	extractor    *gallery.Extractor
	imageService *ioutils.ImageService

	receivedBytes   int64
	totalFiles      int32
	downloadedFiles int32

	onProgress func(ProgressEvent)
}

// NewManager creates a new download Manager.
//
// Without options both listing pages and images are fetched with a plain
// HTTP client built from settings.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent), opts ...Option) *Manager {
	client := http.NewClient(settings.UserAgent, settings.HTTPTimeout())

	m := &Manager{
		settings:     settings,
		pathConfig:   settings.ToPathConfig(),
		pageFetcher:  client,
		imageClient:  client,
		extractor:    gallery.NewExtractor(settings.ImageSelector, settings.ThumbnailSuffix, settings.FullSizeSuffix),
		imageService: ioutils.NewImageService(),
		onProgress:   onProgress,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// DownloadListings downloads every listing in order, one at a time.
//
// It returns the output folder of each completed listing. The first failing
// listing stops the run; folders completed before it are still returned.
func (m *Manager) DownloadListings(ctx context.Context, listingURLs []string) ([]string, error) {
	folders := make([]string, 0, len(listingURLs))

	for _, listingURL := range listingURLs {
		listing, err := m.DownloadListing(ctx, listingURL)
		if err != nil {
			return folders, err
		}

		folders = append(folders, listing.Path)
		m.progress(ProgressEvent{Message: fmt.Sprintf("Done! Images downloaded and saved to %s", listing.Path), Level: LevelSuccess})
	}

	return folders, nil
}

// DownloadListing fetches one listing page and downloads all of its images
// into a new folder.
//
// Images are downloaded by at most settings.MaxConcurrentImages goroutines.
// A failing image does not stop the others: every submitted download runs
// to completion, then the error of the earliest failing image (in page
// order) is returned.
func (m *Manager) DownloadListing(ctx context.Context, listingURL string) (*model.Listing, error) {
	m.progress(ProgressEvent{Message: fmt.Sprintf("Fetching listing: %s", listingURL), Level: LevelInfo})

	page, err := m.pageFetcher.GetString(ctx, listingURL)
	if err != nil {
		return nil, fmt.Errorf("error fetching %s: %w", listingURL, err)
	}

	imageURLs, err := m.extractor.ExtractImageURLs(page, listingURL)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", listingURL, err)
	}

	listing := model.NewListing(listingURL, m.pathConfig)
	if err := ioutils.EnsureDir(listing.Path); err != nil {
		return nil, fmt.Errorf("error creating directory: %w", err)
	}

	for _, imageURL := range imageURLs {
		listing.AddImage(imageURL, m.pathConfig)
	}
	atomic.AddInt32(&m.totalFiles, int32(len(listing.Images)))

	m.progress(ProgressEvent{Message: fmt.Sprintf("Found %d image(s) on %s", len(listing.Images), listingURL), Level: LevelInfo})

	// No errgroup.WithContext: a failure must not cancel sibling downloads.
	var g errgroup.Group
	g.SetLimit(m.settings.Concurrency())

	errs := make([]error, len(listing.Images))
	for i, img := range listing.Images {
		g.Go(func() error {
			errs[i] = m.DownloadImage(ctx, img)
			return errs[i]
		})
	}
	g.Wait()

	for i, err := range errs {
		if err != nil {
			return listing, fmt.Errorf("error downloading %s: %w", listing.Images[i].URL, err)
		}
	}

	return listing, nil
}

// DownloadImage fetches one image and writes it to img.Path.
//
// The image is always fetched first. If something already exists at
// img.Path, nothing is written and nil is returned.
func (m *Manager) DownloadImage(ctx context.Context, img *model.Image) error {
	data, err := m.imageClient.DownloadBytes(ctx, img.URL, m.countBytes())
	if err != nil {
		return err
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Downloading... %s", img.URL), Level: LevelVerbose})

	if m.settings.ResizeImages && !ioutils.FileExists(img.Path) {
		data = m.resize(ctx, img, data)
	}

	written, err := ioutils.WriteFileIfAbsent(ctx, img.Path, data)
	if err != nil {
		return err
	}
	if !written {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Skipping %s as it already exists.", img.Path), Level: LevelWarning})
	}

	atomic.AddInt32(&m.downloadedFiles, 1)
	return nil
}

func (m *Manager) resize(ctx context.Context, img *model.Image, data []byte) []byte {
	size := m.settings.MaxImageSize
	out, resized, err := m.imageService.ResizeImage(ctx, data, size, size)
	if err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Keeping original %s: %v", img.URL, err), Level: LevelWarning})
		return data
	}
	if resized {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Resized %s to fit %dpx", img.URL, size), Level: LevelVerbose})
	}
	return out
}

// countBytes returns a progress callback adding each chunk to receivedBytes.
func (m *Manager) countBytes() func(written, total int64) {
	var last int64
	return func(written, _ int64) {
		atomic.AddInt64(&m.receivedBytes, written-last)
		last = written
	}
}

// GetProgress returns current download progress.
func (m *Manager) GetProgress() (received int64, filesDownloaded, filesTotal int32) {
	return atomic.LoadInt64(&m.receivedBytes),
		atomic.LoadInt32(&m.downloadedFiles), atomic.LoadInt32(&m.totalFiles)
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
