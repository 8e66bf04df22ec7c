package product

import "time"

type Product struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    int       `json:"category"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateProductParams struct {
	Name        string
	Description string
	Category    int
	Price       float64
	Stock       int
	ImageURL    string
}

type UpdateProductParams struct {
	ProductID   uint
	Name        string
	Description string
	Category    int
	Price       float64
	Stock       int
	ImageURL    string
}
