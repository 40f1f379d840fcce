package html

import (
	"github.com/cheesesashimi/stara/pkg/catalog"
	"github.com/julvo/htmlgo"
	a "github.com/julvo/htmlgo/attributes"
)

type valueProp struct {
	title       string
	description string
}

var valueProps = []valueProp{
	{
		title:       "Craftsmanship",
		description: "Each door is milled, finished and inspected by artisans using time-tested joinery. We honor traditional techniques while embracing modern precision.",
	},
	{
		title:       "Materials",
		description: "Engineered cores, marine-grade veneer options, and high-performance finishes for every climate. We source materials that stand the test of time.",
	},
	{
		title:       "Heritage",
		description: "Stara began as a family workshop and grew into a brand that combines local craft with modern manufacturing. Every door carries this legacy forward.",
	},
}

type faq struct {
	question string
	answer   string
}

var faqs = []faq{
	{
		question: "What is the lead time for custom doors?",
		answer:   "4–8 weeks depending on finish and quantity.",
	},
	{
		question: "Do you offer on-site measurement?",
		answer:   `Yes — select "Measure & Install" in the contact form.`,
	},
	{
		question: "What warranties do you provide?",
		answer:   "5 years on finish and 10 years on door core defects for most ranges. See product page for specifics.",
	},
}

func Home(products catalog.Products) Page {
	props := []htmlgo.HTML{}
	for _, prop := range valueProps {
		props = append(props, htmlgo.Div([]a.Attribute{a.Class_("value-prop")},
			htmlgo.H3_(htmlgo.Text(prop.title)),
			htmlgo.P_(htmlgo.Text(prop.description)),
		))
	}

	return Page{
		Path:        "/",
		Title:       "Stara — Premium Doors by Stara, Craft",
		Description: "Premium interior and exterior doors by Stara. Hand-finished veneers, engineered cores, custom sizes and pro installation. Find a dealer or request a quote.",
		Body: []htmlgo.HTML{
			hero(
				"Doors that elevate",
				"Turning ordinary spaces into moments worth remembering.",
				"Craftsmanship | Heritage | Modern Manufacturing",
				cta{text: "Explore Collections", href: "/collections", variant: "primary"},
				cta{text: "Our Craft", href: "/about", variant: "secondary"},
			),
			section("value-props",
				htmlgo.H2_(htmlgo.Text("Doors for life, made with craft")),
				htmlgo.P_(htmlgo.Text("We believe doors are more than panels and hinges. They are thresholds, statements, and the first impression of your space. Every Stara door is engineered for longevity, finished for beauty, and installed for performance.")),
				htmlgo.Div_(props...),
			),
			htmlgo.Section([]a.Attribute{a.Id_("collections"), a.Class_("collections")},
				htmlgo.H2_(htmlgo.Text("Our Collections")),
				htmlgo.P_(htmlgo.Text("Each collection represents a distinct approach to door making—from modern minimalism to heritage craftsmanship. Explore our range of thoughtfully designed doors.")),
				collectionGrid(products),
			),
		},
	}
}

func About() Page {
	return Page{
		Path:        "/about",
		Title:       "About Stara, Craft — Stara",
		Description: "Stara began as a family workshop and grew into Stara, Craft — combining local craft and modern manufacturing.",
		Body: []htmlgo.HTML{
			hero(
				"About Stara, Craft",
				"Doors that craft a moment",
				"",
				cta{text: "Explore Collections", href: "/collections", variant: "primary"},
				cta{text: "Contact Us", href: "/contact", variant: "secondary"},
			),
			section("story",
				htmlgo.P_(
					htmlgo.Text("Stara began as a family workshop and grew into "),
					htmlgo.Strong_(htmlgo.Text("Stara, Craft")),
					htmlgo.Text(" — a parent label combining local craft and modern manufacturing. We believe doors are more than panels and hinges: they are thresholds, statements, and service. Every Stara door is engineered for longevity, finished for beauty, and installed for performance."),
				),
				htmlgo.H2_(htmlgo.Text("Our Mission")),
				bulletList(
					"Build beautiful, long-lasting doors.",
					"Support local installers and dealers.",
					"Provide transparent specs and easy custom orders.",
				),
			),
		},
	}
}

func Custom(form FormState) Page {
	return Page{
		Path:        "/custom",
		Title:       "Custom Orders — Stara",
		Description: "Request a custom door order. Any size, any finish. In-house design consultation available. Lead times: 4–8 weeks.",
		Body: []htmlgo.HTML{
			section("custom",
				htmlgo.H1_(htmlgo.Text("Custom Atelier")),
				htmlgo.P_(htmlgo.Text("Made to order. Any size, any finish. In-house design consultation available. Each custom door is a collaboration between you and our craftspeople.")),
				htmlgo.H2_(htmlgo.Text("The Process")),
				htmlgo.P_(htmlgo.Text("Our custom atelier works with you to create doors that are uniquely yours. From initial consultation to final installation, we guide you through every step.")),
				processList(),
				contactForm("/custom", form),
			),
		},
	}
}

func processList() htmlgo.HTML {
	steps := [][2]string{
		{"Any size, any finish", "Tailored to your exact specifications"},
		{"In-house design consultation", "Work directly with our design team"},
		{"Lead times: 4–8 weeks", "From consultation to installation"},
	}

	items := []htmlgo.HTML{}
	for _, step := range steps {
		items = append(items, htmlgo.Li_(
			htmlgo.Strong_(htmlgo.Text(step[0])),
			htmlgo.Span_(htmlgo.Text(step[1])),
		))
	}

	return htmlgo.Ul([]a.Attribute{a.Class_("process")}, items...)
}

func FAQ() Page {
	items := []htmlgo.HTML{}
	for _, f := range faqs {
		items = append(items, htmlgo.Div([]a.Attribute{a.Class_("faq-item")},
			htmlgo.H2_(htmlgo.Text(f.question)),
			htmlgo.P_(htmlgo.Text(f.answer)),
		))
	}

	return Page{
		Path:        "/faq",
		Title:       "FAQ — Stara",
		Description: "Frequently asked questions about Stara doors, lead times, warranties, and installation services.",
		Body: []htmlgo.HTML{
			section("faq",
				htmlgo.H1_(htmlgo.Text("Frequently Asked Questions")),
				htmlgo.Div_(items...),
			),
		},
	}
}

func NotFound(path string) Page {
	return Page{
		Path:        path,
		Title:       "Page not found — Stara",
		Description: "The page you were looking for does not exist.",
		Body: []htmlgo.HTML{
			section("not-found",
				htmlgo.H1_(htmlgo.Text("Page not found")),
				htmlgo.P_(text("We could not find "+path+".")),
				htmlgo.A([]a.Attribute{a.Href_("/")}, htmlgo.Text("Back to home")),
			),
		},
	}
}
