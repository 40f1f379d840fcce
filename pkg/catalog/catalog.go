package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"strings"

	"github.com/cheesesashimi/stara/pkg/utils"
	"k8s.io/apimachinery/pkg/util/sets"
)

const (
	DefaultImage   string = "/assets/cards/card-1.jpg"
	DefaultSummary string = "Premium door collection featuring exceptional quality and craftsmanship."
)

var ErrDuplicateSlug = errors.New("duplicate product slug")

//go:embed data/products.json
var defaultProducts []byte

// DefaultSpecs is the spec sheet every collection ships with.
func DefaultSpecs() Specs {
	return Specs{
		Thickness: "40 mm (other sizes available)",
		Core:      "HDF / Solid / Marine (choose)",
		Finish:    "Matte / Satin / Textured",
		Warranty:  "5 years (finish) / 10 years (core)",
	}
}

// Default returns the catalog compiled into the binary.
func Default() (Products, error) {
	return Load(bytes.NewReader(defaultProducts))
}

func LoadFile(path string) (Products, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return Products{}, fmt.Errorf("could not read products file %s: %w", path, err)
	}

	return Load(bytes.NewReader(b))
}

// Load decodes a JSON product list. Missing slugs fall back to the id, and
// every slug must be unique.
func Load(r io.Reader) (Products, error) {
	out := Products{}

	if err := json.NewDecoder(r).Decode(&out); err != nil {
		return Products{}, fmt.Errorf("could not parse products: %w", err)
	}

	seen := sets.NewString()

	for i := range out {
		p := &out[i]

		if p.Slug == "" {
			p.Slug = p.ID
		}

		if p.Slug == "" {
			return Products{}, fmt.Errorf("product %d (%q) has no slug or id", i, p.Title)
		}

		if seen.Has(p.Slug) {
			return Products{}, fmt.Errorf("%w: %s", ErrDuplicateSlug, p.Slug)
		}
		seen.Insert(p.Slug)

		fillDefaults(p)
	}

	if out == nil {
		out = Products{}
	}

	return out, nil
}

// Find looks up a product by slug. When there is no such product, a
// placeholder built from the slug is returned with found set to false.
func (p Products) Find(slug string) (Product, bool) {
	for _, product := range p {
		if product.Slug == slug {
			return product, true
		}
	}

	fallback := Product{
		ID:       slug,
		Slug:     slug,
		Title:    utils.SlugToTitle(slug),
		Subtitle: DefaultSummary,
	}
	fillDefaults(&fallback)

	return fallback, false
}

// Href is where a collection card links to.
func Href(p Product) string {
	if p.Href != "" {
		return p.Href
	}

	if p.Slug != "" {
		return "/collections/" + p.Slug
	}

	return "/collections/" + p.ID
}

// Summary is the lead paragraph on a collection page.
func Summary(p Product) string {
	if strings.TrimSpace(p.Subtitle) == "" {
		return DefaultSummary
	}

	return p.Subtitle
}

func fillDefaults(p *Product) {
	if p.Image == "" {
		p.Image = DefaultImage
	}

	defaults := DefaultSpecs()
	if p.Specs.Thickness == "" {
		p.Specs.Thickness = defaults.Thickness
	}
	if p.Specs.Core == "" {
		p.Specs.Core = defaults.Core
	}
	if p.Specs.Finish == "" {
		p.Specs.Finish = defaults.Finish
	}
	if p.Specs.Warranty == "" {
		p.Specs.Warranty = defaults.Warranty
	}
}
