package html

import (
	"github.com/cheesesashimi/stara/pkg/utils"
	"github.com/julvo/htmlgo"
	a "github.com/julvo/htmlgo/attributes"
)

// Page is the content of a single route before it is wrapped in the layout.
type Page struct {
	Path        string
	Title       string
	Description string
	Body        []htmlgo.HTML
}

// Site holds what every page shares.
type Site struct {
	Name    string
	BaseURL string
}

type navItem struct {
	href  string
	label string
}

var navItems = []navItem{
	{href: "/", label: "Home"},
	{href: "/collections", label: "Collections"},
	{href: "/about", label: "About"},
	{href: "/custom", label: "Custom Atelier"},
	{href: "/dealer-locator", label: "Dealers"},
	{href: "/contact", label: "Contact"},
}

// Render wraps p in the site layout.
func (s Site) Render(p Page) htmlgo.HTML {
	return htmlgo.Html5_(
		htmlgo.Head_(
			htmlgo.Meta([]a.Attribute{a.Charset_("utf-8")}),
			htmlgo.Meta([]a.Attribute{a.Name_("viewport"), a.Content_("width=device-width, initial-scale=1, maximum-scale=5")}),
			htmlgo.Meta([]a.Attribute{a.Name_("theme-color"), a.Content_("#0b0b0b")}),
			htmlgo.Title_(text(p.Title)),
			htmlgo.Meta([]a.Attribute{a.Name_("description"), a.Content(attrValue(p.Description))}),
			htmlgo.Link([]a.Attribute{a.Rel_("canonical"), a.Href(utils.CanonicalURL(s.BaseURL, p.Path))}),
		),
		htmlgo.Body_(
			s.header(p.Path),
			htmlgo.Main_(p.Body...),
			s.footer(),
		),
	)
}

func (s Site) header(current string) htmlgo.HTML {
	links := []htmlgo.HTML{}

	for _, item := range navItems {
		attrs := []a.Attribute{a.Href_(item.href)}
		if item.href == current {
			attrs = append(attrs, a.Class_("nav-active"))
		}

		links = append(links, htmlgo.A(attrs, htmlgo.Text(item.label)))
	}

	return htmlgo.Header_(
		htmlgo.A([]a.Attribute{a.Href_("/"), a.Class_("brand")}, text(s.Name)),
		htmlgo.Nav_(links...),
	)
}

func (s Site) footer() htmlgo.HTML {
	return htmlgo.Footer_(
		htmlgo.P_(text(s.Name + ", Craft. Doors for life, made with craft.")),
	)
}

type cta struct {
	text    string
	href    string
	variant string
}

func hero(title, subtitle, kicker string, ctas ...cta) htmlgo.HTML {
	content := []htmlgo.HTML{}

	if kicker != "" {
		content = append(content, htmlgo.P([]a.Attribute{a.Class_("kicker")}, htmlgo.Text(kicker)))
	}

	content = append(content, htmlgo.H1_(htmlgo.Text(title)))

	if subtitle != "" {
		content = append(content, htmlgo.P([]a.Attribute{a.Class_("subtitle")}, htmlgo.Text(subtitle)))
	}

	for _, c := range ctas {
		content = append(content, htmlgo.A([]a.Attribute{a.Href_(c.href), a.Class_("cta cta-" + c.variant)}, htmlgo.Text(c.text)))
	}

	return htmlgo.Section([]a.Attribute{a.Class_("hero")}, content...)
}

func section(class string, children ...htmlgo.HTML) htmlgo.HTML {
	return htmlgo.Section([]a.Attribute{a.Class_(class)}, children...)
}

func bulletList(items ...string) htmlgo.HTML {
	listItems := []htmlgo.HTML{}
	for _, item := range items {
		listItems = append(listItems, htmlgo.Li_(htmlgo.Text(item)))
	}

	return htmlgo.Ul_(listItems...)
}
