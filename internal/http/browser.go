package http

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

// DefaultRenderWait is the pause after the body is ready that gives scripts
// time to fill a listing grid.
const DefaultRenderWait = 2 * time.Second

// BrowserClient fetches listing pages through headless Chrome.
//
// Some galleries fill the listing grid with JavaScript, leaving the raw HTML
// without any matching elements. BrowserClient navigates to the page, waits
// for the body, and returns the rendered document.
//
// A Chrome or Chromium binary must be installed. The browser is started
// lazily on the first Get and stays up until Close.
type BrowserClient struct {
	userAgent string
	wait      time.Duration

	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc
}

// NewBrowserClient creates a BrowserClient. wait is an extra pause after the
// body is ready, giving scripts time to populate the page.
func NewBrowserClient(userAgent string, wait time.Duration) *BrowserClient {
	return &BrowserClient{
		userAgent: userAgent,
		wait:      wait,
	}
}

func (b *BrowserClient) start() {
	if b.browserCtx != nil {
		return
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.DisableGPU,
		chromedp.NoSandbox,
		chromedp.Headless,
		chromedp.UserAgent(b.userAgent),
	)

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	b.allocCancel = allocCancel
	b.browserCtx, b.browserCancel = chromedp.NewContext(allocCtx)
}

// Get renders url and returns its outer HTML.
func (b *BrowserClient) Get(ctx context.Context, url string) ([]byte, error) {
	html, err := b.GetString(ctx, url)
	if err != nil {
		return nil, err
	}
	return []byte(html), nil
}

// GetString renders url and returns its outer HTML as a string.
func (b *BrowserClient) GetString(ctx context.Context, url string) (string, error) {
	b.start()

	tabCtx, cancel := chromedp.NewContext(b.browserCtx)
	defer cancel()

	// Propagate caller cancellation into the tab.
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	tasks := chromedp.Tasks{
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
	}
	if b.wait > 0 {
		tasks = append(tasks, chromedp.Sleep(b.wait))
	}

	var html string
	tasks = append(tasks, chromedp.OuterHTML("html", &html))

	if err := chromedp.Run(tabCtx, tasks); err != nil {
		return "", fmt.Errorf("render %s: %w", url, err)
	}
	return html, nil
}

// Close shuts the browser down.
func (b *BrowserClient) Close() {
	if b.browserCancel != nil {
		b.browserCancel()
	}
	if b.allocCancel != nil {
		b.allocCancel()
	}
	b.browserCtx = nil
}
