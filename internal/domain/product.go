package domain

// Product is a read-only catalog entry owned by the upstream API.
// Either price may be absent in degraded upstream data; consumers
// treat a missing price as zero for display.
type Product struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	PriceUSD    float64 `json:"priceUSD"`
	PriceINR    float64 `json:"priceINR"`
	InStock     int     `json:"inStock"`
	IsFeatured  bool    `json:"isFeatured,omitempty"`
	Image       string  `json:"image,omitempty"`
}
