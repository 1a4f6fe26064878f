package main

import (
	"slices"

	"github.com/alecthomas/kong"
	"github.com/handiism/gallery-downloader/internal/config"
)

// CLI is the gallery-dl command line.
type CLI struct {
	URLs    []string `name:"urls" short:"u" required:"" sep:"none" placeholder:"URL" help:"Gallery listing URL(s) to download. Repeat the flag or list more URLs after it."`
	Extra   []string `arg:"" optional:"" name:"url" help:"More listing URLs."`
	Output  string   `short:"o" type:"path" placeholder:"DIR" help:"Directory the images_<id> folders are created in (default: downloads)."`
	Config  string   `short:"c" type:"path" placeholder:"FILE" help:"Path to a JSON settings file."`
	Workers int      `short:"w" help:"Maximum concurrent image downloads per listing (default: 3)."`
	Render  bool     `help:"Render listing pages in headless Chrome before extracting images."`
	Resize  bool     `help:"Shrink images larger than the configured max_image_size."`
	Verbose bool     `short:"v" help:"Show verbose output."`
}

func parseCLI(args []string, options ...kong.Option) (*CLI, error) {
	var cli CLI
	options = append([]kong.Option{
		kong.Name("gallery-dl"),
		kong.Description("Download full-size images from gallery listing pages."),
		kong.UsageOnError(),
	}, options...)

	parser, err := kong.New(&cli, options...)
	if err != nil {
		return nil, err
	}
	if _, err := parser.Parse(args); err != nil {
		return nil, err
	}
	return &cli, nil
}

// listingURLs returns the flag URLs followed by the positional ones, in the
// order they were given.
func (c *CLI) listingURLs() []string {
	urls := make([]string, 0, len(c.URLs)+len(c.Extra))
	for _, u := range slices.Concat(c.URLs, c.Extra) {
		if u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

// settings loads the config file, if any, and applies flag overrides.
func (c *CLI) settings() (*config.Settings, error) {
	settings := config.DefaultSettings()
	if c.Config != "" {
		var err error
		settings, err = config.Load(c.Config)
		if err != nil {
			return nil, err
		}
	}

	if c.Output != "" {
		settings.DownloadsPath = c.Output
	}
	if c.Workers > 0 {
		settings.MaxConcurrentImages = c.Workers
	}
	if c.Render {
		settings.RenderJavaScript = true
	}
	if c.Resize {
		settings.ResizeImages = true
	}
	return settings, nil
}
