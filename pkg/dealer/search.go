package dealer

import (
	"strings"

	"k8s.io/apimachinery/pkg/util/sets"
)

// Search returns the dealers whose name, address or city contains query,
// ignoring case. Order is preserved. A blank query returns dealers as is.
func Search(query string, dealers Dealers) Dealers {
	if strings.TrimSpace(query) == "" {
		return dealers
	}

	needle := strings.ToLower(query)
	out := Dealers{}

	for _, d := range dealers {
		if d.matches(needle) {
			out = append(out, d)
		}
	}

	return out
}

// Phone is deliberately not searched.
func (d Dealer) matches(needle string) bool {
	return strings.Contains(strings.ToLower(d.Name), needle) ||
		strings.Contains(strings.ToLower(d.Address), needle) ||
		strings.Contains(strings.ToLower(d.City), needle)
}

// Cities returns the distinct, sorted city names across dealers.
func Cities(dealers Dealers) []string {
	cities := sets.NewString()

	for _, d := range dealers {
		if city := strings.TrimSpace(d.City); city != "" {
			cities.Insert(city)
		}
	}

	return cities.List()
}
