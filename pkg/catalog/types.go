package catalog

type Products []Product

// Product is a door collection shown in the catalog.
type Product struct {
	ID       string `json:"id"`
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image"`
	Href     string `json:"href,omitempty"`
	Specs    Specs  `json:"specs"`
}

type Specs struct {
	Thickness string `json:"thickness"`
	Core      string `json:"core"`
	Finish    string `json:"finish"`
	Warranty  string `json:"warranty"`
}
