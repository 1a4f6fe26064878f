// Package download provides the download orchestration logic for
// fetching gallery listings and their images.
//
// # Manager
//
// The Manager coordinates the entire download process:
//
//  1. Fetch a listing page
//  2. Extract image links
//  3. Create a fresh images_<id> folder
//  4. Download the images concurrently, one file each
//  5. Move on to the next listing URL
//
// # Basic Usage
//
//	manager := download.NewManager(settings, func(event download.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	folders, err := manager.DownloadListings(ctx, []string{
//	    "https://example.com/album/first",
//	    "https://example.com/album/second",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Concurrency
//
// Listings are processed strictly one after another. Within a listing at
// most settings.MaxConcurrentImages images (3 by default) are in flight.
// A failed image never cancels its siblings; the listing's error is
// reported once every download has finished, and it stops the remaining
// listings.
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	}
//
// There is no retry logic: a failed request fails its image.
package download
