package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/cheesesashimi/stara/pkg/catalog"
	"github.com/cheesesashimi/stara/pkg/config"
	"github.com/cheesesashimi/stara/pkg/contact"
	"github.com/cheesesashimi/stara/pkg/dealer"
	"github.com/cheesesashimi/stara/pkg/export"
	"github.com/cheesesashimi/stara/pkg/html"
	"github.com/cheesesashimi/stara/pkg/logging"
	"github.com/cheesesashimi/stara/pkg/server"
	"github.com/cheesesashimi/stara/pkg/tui"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	app := &cli.App{
		Name:  "stara",
		Usage: "Stara door site: web server, static export and dealer locator",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   config.DefaultFile,
				Usage:   "path to the YAML config file",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "run the web server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Usage: "address to listen on, overrides the config",
					},
				},
				Action: serve,
			},
			{
				Name:   "export",
				Usage:  "render every page to a directory",
				Flags:  []cli.Flag{&cli.StringFlag{Name: "dir", Usage: "output directory, overrides the config"}},
				Action: exportSite,
			},
			{
				Name:      "dealers",
				Usage:     "print the dealers matching a query",
				ArgsUsage: "[query...]",
				Action:    searchDealers,
			},
			{
				Name:      "locate",
				Usage:     "interactive dealer locator",
				ArgsUsage: "[query...]",
				Action:    locate,
			},
			{
				Name:      "query",
				Usage:     "search the dealers of a running site",
				ArgsUsage: "[query...]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "url", Value: "http://localhost:8080", Usage: "base URL of the site"},
				},
				Action: queryRemote,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type env struct {
	cfg      config.Config
	logger   *zap.Logger
	dealers  dealer.Dealers
	products catalog.Products
}

func setup(c *cli.Context) (*env, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(c.Bool("debug"))
	if err != nil {
		return nil, fmt.Errorf("could not build logger: %w", err)
	}

	dealers, err := loadDealers(cfg.Data.Dealers)
	if err != nil {
		return nil, err
	}

	products, err := loadProducts(cfg.Data.Products)
	if err != nil {
		return nil, err
	}

	logger.Debug("Loaded data",
		zap.Int("dealers", len(dealers)),
		zap.Int("products", len(products)),
	)

	return &env{
		cfg:      cfg,
		logger:   logger,
		dealers:  dealers,
		products: products,
	}, nil
}

func loadDealers(path string) (dealer.Dealers, error) {
	if path == "" {
		return dealer.Default()
	}

	return dealer.LoadFile(path)
}

func loadProducts(path string) (catalog.Products, error) {
	if path == "" {
		return catalog.Default()
	}

	return catalog.LoadFile(path)
}

func (e *env) site() html.Site {
	return html.Site{Name: e.cfg.SiteName, BaseURL: e.cfg.BaseURL}
}

func (e *env) sink() contact.Sink {
	logSink := contact.NewLogSink(e.logger)

	if e.cfg.Contact.WebhookURL == "" {
		return logSink
	}

	return contact.NewMultiSink(logSink, contact.NewWebhookSink(e.cfg.Contact.WebhookURL, e.cfg.Contact.WebhookTimeout))
}

func serve(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	defer e.logger.Sync()

	listen := e.cfg.Listen
	if c.String("listen") != "" {
		listen = c.String("listen")
	}

	handler := server.New(server.Options{
		Site:           e.site(),
		Dealers:        e.dealers,
		Products:       e.products,
		Sink:           e.sink(),
		Logger:         e.logger,
		MaxUploadBytes: e.cfg.Contact.MaxUploadBytes,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.ListenAndServe(ctx, listen, handler, e.logger)
}

func exportSite(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	defer e.logger.Sync()

	dir := e.cfg.Export.Dir
	if c.String("dir") != "" {
		dir = c.String("dir")
	}

	written, err := export.Run(export.Options{
		Dir:      dir,
		Workers:  e.cfg.Export.Workers,
		Site:     e.site(),
		Dealers:  e.dealers,
		Products: e.products,
		Logger:   e.logger,
	})
	if err != nil {
		return err
	}

	e.logger.Info("Exported site", zap.String("dir", dir), zap.Int("pages", len(written)))

	return nil
}

func searchDealers(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}

	printDealers(dealer.Search(strings.Join(c.Args().Slice(), " "), e.dealers))

	return nil
}

func locate(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}

	return tui.Run(e.dealers, strings.Join(c.Args().Slice(), " "))
}

func printDealers(dealers dealer.Dealers) {
	if len(dealers) == 0 {
		fmt.Println("No dealers found matching your search.")
		return
	}

	for _, d := range dealers {
		fmt.Printf("%s\n  %s, %s\n  %s\n", d.Name, d.Address, d.City, d.Phone)
	}
}
