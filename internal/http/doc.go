// Package http provides the fetchers used to retrieve listing pages and images.
//
// The Client in this package handles:
//   - User-Agent headers
//   - In-memory downloads with progress tracking
//   - Optional timeout handling
//
// BrowserClient renders listing pages in headless Chrome for galleries that
// build their markup with JavaScript.
//
// # Basic Usage
//
//	client := http.NewClient("GalleryDownloader", 0)
//
//	// Fetch HTML page
//	html, err := client.GetString(ctx, "https://example.com/album/x")
//
//	// Download image bytes with progress callback
//	data, err := client.DownloadBytes(ctx, imageURL, func(written, total int64) {
//	    fmt.Printf("%d bytes\n", written)
//	})
package http
