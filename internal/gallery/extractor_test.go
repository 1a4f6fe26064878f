package gallery

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const testSelector = "div.list-item-image.fixed-size > a > img"

func item(src string) string {
	return fmt.Sprintf(`<div class="list-item-image fixed-size"><a href="#"><img src=%q></a></div>`, src)
}

func page(items ...string) string {
	return "<html><body>" + strings.Join(items, "\n") + "</body></html>"
}

func TestExtractor_ExtractImageURLs(t *testing.T) {
	tests := []struct {
		name    string
		html    string
		baseURL string
		want    []string
	}{
		{
			name:    "relative links are resolved and rewritten",
			html:    page(item("a.md.jpg"), item("b.jpg")),
			baseURL: "http://example.test/gallery",
			want:    []string{"http://example.test/a.jpg", "http://example.test/b.jpg"},
		},
		{
			name:    "absolute and root-relative links",
			html:    page(item("https://cdn.test/x/1.md.jpg"), item("/images/2.md.jpg")),
			baseURL: "https://example.test/album/abc",
			want:    []string{"https://cdn.test/x/1.jpg", "https://example.test/images/2.jpg"},
		},
		{
			name:    "protocol-relative link takes the base scheme",
			html:    page(item("//cdn.test/3.md.jpg")),
			baseURL: "https://example.test/album/abc",
			want:    []string{"https://cdn.test/3.jpg"},
		},
		{
			name:    "document order is kept",
			html:    page(item("c.jpg"), item("a.jpg"), item("b.jpg")),
			baseURL: "http://example.test/",
			want:    []string{"http://example.test/c.jpg", "http://example.test/a.jpg", "http://example.test/b.jpg"},
		},
		{
			name:    "replacement is a literal substring swap",
			html:    page(item("dir.md.jpg/p.md.jpg")),
			baseURL: "http://example.test/",
			want:    []string{"http://example.test/dir.jpg/p.jpg"},
		},
		{
			name: "non-matching structures are ignored",
			html: page(
				`<div class="list-item-image"><a><img src="no-fixed-size.jpg"></a></div>`,
				`<div class="list-item-image fixed-size"><img src="no-anchor.jpg"></div>`,
				`<div class="list-item-image fixed-size"><a><span><img src="nested.jpg"></span></a></div>`,
				item("ok.md.jpg"),
			),
			baseURL: "http://example.test/",
			want:    []string{"http://example.test/ok.jpg"},
		},
		{
			name:    "img without src is skipped",
			html:    page(`<div class="list-item-image fixed-size"><a><img alt="x"></a></div>`, item("y.jpg")),
			baseURL: "http://example.test/",
			want:    []string{"http://example.test/y.jpg"},
		},
		{
			name:    "stray percent is kept literally",
			html:    page(item("a%zz.md.jpg"), item("b.jpg"), item("c%2.jpg"), item("d%20e.jpg")),
			baseURL: "http://example.test/",
			want: []string{
				"http://example.test/a%25zz.jpg",
				"http://example.test/b.jpg",
				"http://example.test/c%252.jpg",
				"http://example.test/d%20e.jpg",
			},
		},
		{
			name:    "no matches",
			html:    `<html><body><img src="lonely.jpg"></body></html>`,
			baseURL: "http://example.test/",
			want:    []string{},
		},
		{
			name:    "empty document",
			html:    "",
			baseURL: "http://example.test/",
			want:    []string{},
		},
	}

	ext := NewExtractor(testSelector, ".md.jpg", ".jpg")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ext.ExtractImageURLs(tt.html, tt.baseURL)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got == nil {
				t.Fatal("expected a non-nil slice")
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ExtractImageURLs() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtractor_CountMatchesElements(t *testing.T) {
	const n = 25
	items := make([]string, n)
	for i := range items {
		items[i] = item(fmt.Sprintf("img/%02d.md.jpg", i))
	}

	got, err := NewExtractor(testSelector, ".md.jpg", ".jpg").ExtractImageURLs(page(items...), "http://example.test/gallery/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != n {
		t.Fatalf("got %d URLs, want %d", len(got), n)
	}
	for _, u := range got {
		if strings.Contains(u, ".md.jpg") {
			t.Errorf("suffix not rewritten: %s", u)
		}
		if !strings.HasPrefix(u, "http://example.test/gallery/img/") {
			t.Errorf("not resolved against base: %s", u)
		}
	}
}

func TestExtractor_NoRewrite(t *testing.T) {
	got, err := NewExtractor(testSelector, "", "").ExtractImageURLs(page(item("a.md.jpg")), "http://example.test/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"http://example.test/a.md.jpg"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractor_InvalidBaseURL(t *testing.T) {
	_, err := NewExtractor(testSelector, ".md.jpg", ".jpg").ExtractImageURLs(page(item("a.jpg")), "http://[::1")
	if err == nil {
		t.Error("expected error for invalid base URL")
	}
}

func TestExtractor_UnparsableSrc(t *testing.T) {
	_, err := NewExtractor(testSelector, ".md.jpg", ".jpg").ExtractImageURLs(page(item("ok.jpg"), item("http://[::1/x.md.jpg")), "http://example.test/")
	if err == nil {
		t.Fatal("expected error for unparsable src")
	}
	if !strings.Contains(err.Error(), "http://[::1/x.jpg") {
		t.Errorf("error does not name the src: %v", err)
	}
}
