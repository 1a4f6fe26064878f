// Package gallery extracts image links from gallery listing pages.
//
// A listing page enumerates an album as a grid of thumbnails:
//
//	<div class="list-item-image fixed-size">
//	    <a href="/image/abc"><img src="/images/abc.md.jpg"></a>
//	</div>
//
// The Extractor selects those <img> elements, rewrites the thumbnail suffix
// to the full-size one and resolves each link against the listing URL:
//
//	ext := gallery.NewExtractor(config.DefaultImageSelector, ".md.jpg", ".jpg")
//	urls, err := ext.ExtractImageURLs(pageHTML, listingURL)
//	// urls[0] == "https://example.com/images/abc.jpg"
//
// If the site's markup changes, extraction silently yields no links.
package gallery
