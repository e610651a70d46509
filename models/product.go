package models

// Product is a catalog entry. Loaded products are never patched in place;
// a reload replaces the whole catalog.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
	IsHot       bool    `json:"isHot,omitempty"`
	IsNew       bool    `json:"isNew,omitempty"`
}

// Category is a derived grouping of the catalog used by the menu view.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}
