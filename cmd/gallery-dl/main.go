package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/log"
	"github.com/handiism/gallery-downloader/internal/download"
	"github.com/handiism/gallery-downloader/internal/http"
)

func main() {
	cli, err := parseCLI(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "gallery-dl: %v\n", err)
		os.Exit(1)
	}

	os.Exit(run(cli))
}

func run(cli *CLI) int {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "gallery-dl",
	})
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	settings, err := cli.settings()
	if err != nil {
		logger.Error("error loading config", "path", cli.Config, "err", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sp := spinner.New(spinner.CharSets[9], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	sp.Suffix = " downloading images"
	out := &spinnerLogger{spinner: sp, logger: logger}

	var opts []download.Option
	if settings.RenderJavaScript {
		browser := http.NewBrowserClient(settings.UserAgent, http.DefaultRenderWait)
		defer browser.Close()
		opts = append(opts, download.WithPageFetcher(browser))
	}

	manager := download.NewManager(settings, out.log, opts...)

	urls := cli.listingURLs()
	logger.Info("starting", "listings", len(urls), "output", settings.DownloadsPath, "workers", settings.Concurrency())

	done := make(chan struct{})
	go out.track(manager, done)
	sp.Start()

	folders, err := manager.DownloadListings(ctx, urls)
	close(done)
	sp.Stop()

	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			logger.Warn("download cancelled", "completed", len(folders))
			return 130
		}
		logger.Error("download failed", "err", err)
		return 1
	}

	received, files, _ := manager.GetProgress()
	logger.Info("complete", "listings", len(folders), "images", files, "size", fmt.Sprintf("%.2f MB", float64(received)/1024/1024))
	return 0
}

// spinnerLogger serializes log output with the spinner so lines are not
// drawn over each other.
type spinnerLogger struct {
	mu      sync.Mutex
	spinner *spinner.Spinner
	logger  *log.Logger
}

func (s *spinnerLogger) log(event download.ProgressEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := s.spinner.Active()
	if active {
		s.spinner.Stop()
	}

	switch event.Level {
	case download.LevelVerbose:
		s.logger.Debug(event.Message)
	case download.LevelWarning:
		s.logger.Warn(event.Message)
	case download.LevelError:
		s.logger.Error(event.Message)
	case download.LevelSuccess:
		s.logger.Info(event.Message, "done", true)
	default:
		s.logger.Info(event.Message)
	}

	if active {
		s.spinner.Start()
	}
}

// track keeps the spinner suffix in step with the manager's counters.
func (s *spinnerLogger) track(manager *download.Manager, done <-chan struct{}) {
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			_, files, total := manager.GetProgress()
			s.mu.Lock()
			s.spinner.Lock()
			s.spinner.Suffix = fmt.Sprintf(" downloading images (%d/%d)", files, total)
			s.spinner.Unlock()
			s.mu.Unlock()
		}
	}
}
