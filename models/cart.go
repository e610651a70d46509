package models

// Variant distinguishes cart lines of the same product. Empty fields mean
// "not chosen".
type Variant struct {
	Size        string `json:"size,omitempty"`
	Temperature string `json:"temperature,omitempty"`
}

// CartLine is a product plus its order-specific attributes. A line is
// identified by (Product.ID, Size, Temperature).
type CartLine struct {
	Product
	Quantity    int    `json:"quantity"`
	Size        string `json:"size,omitempty"`
	Temperature string `json:"temperature,omitempty"`
}

// Variant returns the size/temperature pair of the line.
func (l CartLine) Variant() Variant {
	return Variant{Size: l.Size, Temperature: l.Temperature}
}

// Matches reports whether the line is keyed by productID and v.
func (l CartLine) Matches(productID string, v Variant) bool {
	return l.ID == productID && l.Size == v.Size && l.Temperature == v.Temperature
}
