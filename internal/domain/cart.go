package domain

// Currency selects which unit price is used for display. It never
// affects stored per-line data.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyINR Currency = "INR"
)

// Valid reports whether c is one of the supported display currencies.
func (c Currency) Valid() bool {
	return c == CurrencyUSD || c == CurrencyINR
}

// CartLine pairs a product with a quantity. Identity is the product id;
// a cart never holds two lines for the same product.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"qty"`
}

// Totals is a pure projection of the cart lines: the sum of unit price
// times quantity in each supported currency.
type Totals struct {
	ItemsPriceUSD float64 `json:"itemsPriceUSD"`
	ItemsPriceINR float64 `json:"itemsPriceINR"`
}
