package domain

import "time"

// Product is a catalog entry.
type Product struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	MinStock    int       `json:"minStockLevel,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Supplier    string    `json:"supplier,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

// LowOnStock reports whether the product has fallen to or below its minimum
// stock level.
func (p *Product) LowOnStock() bool {
	return p.Stock <= p.MinStock
}

// ProductInput is the payload for creating or replacing a product.
type ProductInput struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category" validate:"required"`
	Price       float64 `json:"price" validate:"gt=0"`
	Stock       int     `json:"stock" validate:"min=0"`
	MinStock    int     `json:"minStockLevel,omitempty" validate:"min=0"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Supplier    string  `json:"supplier,omitempty"`
}

// StockUpdate adjusts a product's stock to an absolute quantity.
type StockUpdate struct {
	Stock int `json:"stock" validate:"min=0"`
}

// ProductQuery filters catalog listings. Zero values mean "no filter".
type ProductQuery struct {
	Category string
	Search   string
	Page     int
	Limit    int
}
