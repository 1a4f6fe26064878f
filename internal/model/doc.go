// Package model defines the core data structures used throughout
// the gallery-downloader application.
//
// # Listing
//
// Listing represents one scraped listing page and its output folder:
//
//	listing := model.NewListing("https://example.com/album/x", pathConfig)
//	fmt.Println(listing.Path) // downloads/images_<uuid>
//
// # Image
//
// Image represents a single image link within a listing:
//
//	img := listing.AddImage("https://example.com/a.jpg", pathConfig)
//	fmt.Println(img.Path) // downloads/images_<uuid>/image_<uuid>.jpg
//
// Every call generates new identifiers, so two runs never share a folder
// and two images never share a file.
//
// Available placeholders: {id}, {host} (folders), {index} (files)
package model
