package export

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/cheesesashimi/stara/pkg/catalog"
	"github.com/cheesesashimi/stara/pkg/dealer"
	"github.com/cheesesashimi/stara/pkg/html"
	"github.com/gammazero/workerpool"
	"go.uber.org/zap"
)

type Options struct {
	Dir      string
	Workers  int
	Site     html.Site
	Dealers  dealer.Dealers
	Products catalog.Products
	Logger   *zap.Logger
}

// Pages lists every page of the site that can be rendered ahead of time.
func Pages(dealers dealer.Dealers, products catalog.Products) []html.Page {
	pages := []html.Page{
		html.Home(products),
		html.About(),
		html.Custom(html.FormState{}),
		html.FAQ(),
		html.Collections(products),
		html.Contact(html.FormState{}),
		html.DealerLocator("", dealer.Search("", dealers), dealer.Cities(dealers)),
	}

	for _, p := range products {
		pages = append(pages, html.CollectionDetail(p, true))
	}

	return pages
}

// Run renders every page into <dir>/<path>/index.html and returns the files
// it wrote, sorted. The first error stops nothing already queued but is the
// one returned.
func Run(opts Options) ([]string, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	if opts.Workers < 1 {
		opts.Workers = 1
	}

	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create export dir %s: %w", opts.Dir, err)
	}

	var (
		mu       sync.Mutex
		written  []string
		firstErr error
	)

	wp := workerpool.New(opts.Workers)

	for _, page := range Pages(opts.Dealers, opts.Products) {
		page := page

		wp.Submit(func() {
			start := time.Now()

			filename, err := renderToDisk(opts.Site, page, opts.Dir)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				opts.Logger.Error("Could not render page", zap.String("path", page.Path), zap.Error(err))
				if firstErr == nil {
					firstErr = err
				}
				return
			}

			opts.Logger.Debug("Rendered page", zap.String("file", filename), zap.Duration("took", time.Since(start)))
			written = append(written, filename)
		})
	}

	wp.StopWait()

	sort.Strings(written)

	return written, firstErr
}

func renderToDisk(site html.Site, page html.Page, dir string) (string, error) {
	filename := filepath.Join(dir, filepath.FromSlash(strings.Trim(page.Path, "/")), "index.html")

	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return "", fmt.Errorf("could not create %s: %w", filepath.Dir(filename), err)
	}

	if err := ioutil.WriteFile(filename, []byte(site.Render(page)), 0644); err != nil {
		return "", fmt.Errorf("could not write %s: %w", filename, err)
	}

	return filename, nil
}
