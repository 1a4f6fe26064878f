package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/handiism/gallery-downloader/internal/config"
	"github.com/handiism/gallery-downloader/internal/download"
	"github.com/handiism/gallery-downloader/internal/http"
	"github.com/handiism/gallery-downloader/internal/tui"
)

var cli struct {
	Config string `short:"c" type:"path" placeholder:"FILE" help:"Path to a JSON settings file."`
	Output string `short:"o" type:"path" placeholder:"DIR" help:"Directory the images_<id> folders are created in."`
	Render bool   `help:"Render listing pages in headless Chrome before extracting images."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("gallery-tui"),
		kong.Description("Interactive gallery image downloader."),
	)

	os.Exit(run())
}

func run() int {
	settings := config.DefaultSettings()
	if cli.Config != "" {
		var err error
		settings, err = config.Load(cli.Config)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			return 1
		}
	}
	if cli.Output != "" {
		settings.DownloadsPath = cli.Output
	}

	var opts []download.Option
	if cli.Render || settings.RenderJavaScript {
		browser := http.NewBrowserClient(settings.UserAgent, http.DefaultRenderWait)
		defer browser.Close()
		opts = append(opts, download.WithPageFetcher(browser))
	}

	if err := tui.Run(settings, opts...); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
