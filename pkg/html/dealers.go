package html

import (
	"fmt"
	"net/url"

	"github.com/cheesesashimi/stara/pkg/dealer"
	"github.com/cheesesashimi/stara/pkg/utils"
	"github.com/julvo/htmlgo"
	a "github.com/julvo/htmlgo/attributes"
)

const noDealersMessage string = "No dealers found matching your search."

// DealerLocator renders the search box, the matching dealers and links to
// each known city. results is expected to already be filtered by query.
func DealerLocator(query string, results dealer.Dealers, cities []string) Page {
	return Page{
		Path:        "/dealer-locator",
		Title:       "Dealer Locator — Stara",
		Description: "Find the nearest Stara dealer. Request samples, get measurement help, and schedule installation services.",
		Body: []htmlgo.HTML{
			section("dealer-locator",
				htmlgo.H1_(htmlgo.Text("Find a Dealer")),
				htmlgo.P_(htmlgo.Text("Find the nearest Stara dealer, request a sample, or schedule a site visit. Dealers carry samples, measurement help and installation services.")),
				htmlgo.Form([]a.Attribute{a.Method_("get"), a.Action_("/dealer-locator"), a.Class_("dealer-search")},
					htmlgo.Input([]a.Attribute{
						a.Type_("text"),
						a.Name_("q"),
						a.Value(attrValue(query)),
						a.Placeholder_("Search by city, name, or address..."),
					}),
					htmlgo.Button([]a.Attribute{a.Type_("submit")}, htmlgo.Text("Search")),
				),
				cityLinks(cities),
				dealerList(results),
			),
		},
	}
}

func cityLinks(cities []string) htmlgo.HTML {
	if len(cities) == 0 {
		return htmlgo.Text_("")
	}

	links := []htmlgo.HTML{}
	for _, city := range cities {
		href := "/dealer-locator?q=" + url.QueryEscape(city)
		links = append(links, htmlgo.A([]a.Attribute{a.Href(href), a.Class_("city")}, text(city)))
	}

	return htmlgo.Nav([]a.Attribute{a.Class_("cities")}, links...)
}

func dealerList(dealers dealer.Dealers) htmlgo.HTML {
	if len(dealers) == 0 {
		return htmlgo.P([]a.Attribute{a.Class_("dealer-empty")}, htmlgo.Text(noDealersMessage))
	}

	cards := []htmlgo.HTML{}
	for _, d := range dealers {
		cards = append(cards, htmlgo.Div([]a.Attribute{a.Class_("dealer-card")},
			htmlgo.H3_(text(d.Name)),
			htmlgo.P([]a.Attribute{a.Class_("address")}, text(d.Address)),
			htmlgo.P([]a.Attribute{a.Class_("city")}, text(d.City)),
			htmlgo.P_(phoneLink(d.Phone)),
		))
	}

	return htmlgo.Div([]a.Attribute{a.Class_("dealers")}, cards...)
}

// tel: is not on html/template's list of safe URL schemes, so the link is
// escaped by hand.
func phoneLink(phone string) htmlgo.HTML {
	return htmlgo.HTML(fmt.Sprintf(`<a href="%s" class="phone">%s</a>`,
		escapeText(utils.TelURL(phone)),
		escapeText(phone),
	))
}
