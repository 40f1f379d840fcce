package html

import (
	"github.com/cheesesashimi/stara/pkg/catalog"
	"github.com/julvo/htmlgo"
	a "github.com/julvo/htmlgo/attributes"
)

func Collections(products catalog.Products) Page {
	return Page{
		Path:        "/collections",
		Title:       "Collections — Stara",
		Description: "Explore our door collections: Modern Series, Heritage Series, WeatherGuard, Acoustic Series, Slimline Flush, and Custom Atelier.",
		Body: []htmlgo.HTML{
			hero(
				"Our Collections",
				"Each collection represents a distinct approach to door making—from modern minimalism to heritage craftsmanship.",
				"",
				cta{text: "Our Craft", href: "/about", variant: "primary"},
				cta{text: "Contact", href: "/contact", variant: "secondary"},
			),
			section("collections",
				htmlgo.P_(htmlgo.Text("Each collection is engineered for longevity, finished for beauty, and installed for performance. Explore our range of thoughtfully designed doors, each telling its own story of craft and design.")),
				collectionGrid(products),
			),
		},
	}
}

// CollectionDetail renders a single collection. found is false for slugs the
// catalog does not know, which still get a generic page.
func CollectionDetail(p catalog.Product, found bool) Page {
	description := "Explore the " + p.Slug + " collection from Stara. Premium doors with detailed specifications and warranty information."
	if found {
		description = "Explore the " + p.Title + " collection from Stara. " + p.Subtitle + ". Premium doors with detailed specifications."
	}

	return Page{
		Path:        "/collections/" + p.Slug,
		Title:       p.Title + " — Stara Collections",
		Description: description,
		Body: []htmlgo.HTML{
			htmlgo.Nav([]a.Attribute{a.Class_("breadcrumbs")},
				htmlgo.A([]a.Attribute{a.Href_("/")}, htmlgo.Text("Home")),
				htmlgo.Text(" / "),
				htmlgo.A([]a.Attribute{a.Href_("/collections")}, htmlgo.Text("Collections")),
				htmlgo.Text(" / "),
				htmlgo.Span_(text(p.Title)),
			),
			htmlgo.Article([]a.Attribute{a.Class_("collection-detail")},
				htmlgo.H1_(text(p.Title)),
				htmlgo.P([]a.Attribute{a.Class_("summary")}, text(catalog.Summary(p))),
				htmlgo.Img([]a.Attribute{a.Src(p.Image), a.Alt(attrValue(p.Title))}),
				htmlgo.H2_(htmlgo.Text("Specifications")),
				specTable(p.Specs),
				htmlgo.H2_(htmlgo.Text("Learn More")),
				htmlgo.Div([]a.Attribute{a.Class_("learn-more")},
					htmlgo.A([]a.Attribute{a.Href_("/contact")}, htmlgo.Text("Inquire")),
					htmlgo.A([]a.Attribute{a.Href_("/dealer-locator")}, htmlgo.Text("Find a Dealer")),
					htmlgo.A([]a.Attribute{a.Href_("/about")}, htmlgo.Text("Our Craft")),
				),
			),
		},
	}
}

func collectionGrid(products catalog.Products) htmlgo.HTML {
	cards := []htmlgo.HTML{}

	for _, p := range products {
		content := []htmlgo.HTML{
			htmlgo.Img([]a.Attribute{a.Src(p.Image), a.Alt(attrValue(p.Title))}),
			htmlgo.H3_(text(p.Title)),
		}

		if p.Subtitle != "" {
			content = append(content, htmlgo.P_(text(p.Subtitle)))
		}

		content = append(content, htmlgo.Span([]a.Attribute{a.Class_("explore")}, htmlgo.Text("Explore →")))

		cards = append(cards, htmlgo.A([]a.Attribute{a.Href(catalog.Href(p)), a.Class_("collection-card")},
			htmlgo.Article_(content...),
		))
	}

	return htmlgo.Div([]a.Attribute{a.Class_("collection-grid")}, cards...)
}

func specTable(specs catalog.Specs) htmlgo.HTML {
	rows := [][2]string{
		{"Thickness:", specs.Thickness},
		{"Core:", specs.Core},
		{"Finish:", specs.Finish},
		{"Warranty:", specs.Warranty},
	}

	trs := []htmlgo.HTML{}
	for _, row := range rows {
		trs = append(trs, htmlgo.Tr_(
			htmlgo.Td_(htmlgo.Text(row[0])),
			htmlgo.Td_(text(row[1])),
		))
	}

	return htmlgo.Table([]a.Attribute{a.Class_("specs")}, htmlgo.Tbody_(trs...))
}
