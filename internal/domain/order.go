package domain

// OrderItem is the per-line slice of an order submission, frozen from a
// cart line at submission time.
type OrderItem struct {
	Product  string  `json:"product"`
	Name     string  `json:"name"`
	Qty      int     `json:"qty"`
	PriceUSD float64 `json:"priceUSD"`
	PriceINR float64 `json:"priceINR"`
	Image    string  `json:"image,omitempty"`
}

// ShippingAddress carries the checkout shipping form. All fields are
// required; validation is non-empty only.
type ShippingAddress struct {
	FullName   string `json:"fullName"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// OrderSubmission is the write-once payload posted to the upstream API.
// It is constructed from a cart snapshot at submission time and never
// mutated afterwards.
type OrderSubmission struct {
	OrderItems      []OrderItem     `json:"orderItems"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	ItemsPriceUSD   float64         `json:"itemsPriceUSD"`
	ItemsPriceINR   float64         `json:"itemsPriceINR"`
	TotalPriceUSD   float64         `json:"totalPriceUSD"`
	TotalPriceINR   float64         `json:"totalPriceINR"`
}

// Order is an upstream order as seen by the admin console.
type Order struct {
	ID              string          `json:"_id"`
	User            *User           `json:"user,omitempty"`
	OrderItems      []OrderItem     `json:"orderItems"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	TotalPriceUSD   float64         `json:"totalPriceUSD"`
	TotalPriceINR   float64         `json:"totalPriceINR"`
	Status          string          `json:"status,omitempty"`
	CreatedAt       string          `json:"createdAt,omitempty"`
}
