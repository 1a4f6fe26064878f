package gallery

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Extractor finds full-size image URLs on a gallery listing page.
//
// Listing pages show thumbnails whose file names carry a size marker
// (".md.jpg"). The Extractor selects the thumbnail <img> elements, swaps the
// marker for the full-size suffix and resolves the result against the page
// URL.
//
// Example usage:
//
//	ext := NewExtractor("div.list-item-image.fixed-size > a > img", ".md.jpg", ".jpg")
//	urls, err := ext.ExtractImageURLs(pageHTML, "https://example.com/album/x")
//	for _, u := range urls {
//	    fmt.Println(u) // https://example.com/images/a.jpg
//	}
type Extractor struct {
	selector   string
	suffixFrom string
	suffixTo   string
}

// NewExtractor creates an Extractor.
//
// Parameters:
//   - selector: CSS selector matching the <img> elements
//   - suffixFrom: substring replaced in every src (empty disables the rewrite)
//   - suffixTo: replacement for suffixFrom
func NewExtractor(selector, suffixFrom, suffixTo string) *Extractor {
	return &Extractor{
		selector:   selector,
		suffixFrom: suffixFrom,
		suffixTo:   suffixTo,
	}
}

// ExtractImageURLs returns the absolute image URLs on the page, in document order.
//
// The suffix rewrite is a literal replacement of every occurrence, applied
// before the link is resolved against baseURL. Elements without a src
// attribute are skipped. A stray '%' that does not start an escape is kept
// literally (encoded as %25), so every other matching element yields
// exactly one URL. A page with no matching elements yields an empty slice
// and a nil error.
//
// Returns an error if:
//   - baseURL cannot be parsed
//   - the HTML cannot be parsed
//   - a src cannot be parsed as a URL reference
func (e *Extractor) ExtractImageURLs(htmlContent, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid listing URL %q: %w", baseURL, err)
	}

	root, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse listing HTML: %w", err)
	}

	doc := goquery.NewDocumentFromNode(root)
	urls := make([]string, 0)

	var resolveErr error
	doc.Find(e.selector).EachWithBreak(func(_ int, img *goquery.Selection) bool {
		src, ok := img.Attr("src")
		if !ok {
			return true
		}
		if e.suffixFrom != "" {
			src = strings.ReplaceAll(src, e.suffixFrom, e.suffixTo)
		}
		abs, err := resolveURL(base, src)
		if err != nil {
			resolveErr = fmt.Errorf("invalid image src %q: %w", src, err)
			return false
		}
		urls = append(urls, abs)
		return true
	})
	if resolveErr != nil {
		return nil, resolveErr
	}

	return urls, nil
}

// resolveURL joins link against base the way a browser would.
func resolveURL(base *url.URL, link string) (string, error) {
	ref, err := url.Parse(escapeStrayPercents(strings.TrimSpace(link)))
	if err != nil {
		return "", err
	}
	return base.ResolveReference(ref).String(), nil
}

// escapeStrayPercents encodes every '%' not followed by two hex digits.
func escapeStrayPercents(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && (i+2 >= len(s) || !isHex(s[i+1]) || !isHex(s[i+2])) {
			b.WriteString("%25")
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
