package dealer

type Dealers []Dealer

// Dealer is a single retailer entry shown by the locator.
type Dealer struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Phone   string `json:"phone"`
}
