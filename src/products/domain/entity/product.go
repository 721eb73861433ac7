package entity

import (
	shared "sales/src/shared/domain/entity"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo
type Product struct {
	shared.Base
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url,omitempty"`
	IsActive    bool            `json:"is_active"`
}

// NewProduct crea un nuevo producto activo
func NewProduct(name, description, category string, price decimal.Decimal, imageURL string) (*Product, error) {
	if name == "" {
		return nil, ErrProductNameRequired
	}
	if price.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidPrice
	}

	return &Product{
		Base:        shared.NewBase(),
		Name:        name,
		Description: description,
		Category:    category,
		Price:       price,
		ImageURL:    imageURL,
		IsActive:    true,
	}, nil
}

// Update modifica los datos del producto revalidando el precio
func (p *Product) Update(name, description, category string, price decimal.Decimal, imageURL string) error {
	if name == "" {
		return ErrProductNameRequired
	}
	if price.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidPrice
	}

	p.Name = name
	p.Description = description
	p.Category = category
	p.Price = price
	p.ImageURL = imageURL
	p.Touch()

	return nil
}

// Activate habilita el producto para la venta
func (p *Product) Activate() {
	p.IsActive = true
	p.Touch()
}

// Deactivate deshabilita el producto sin eliminarlo
func (p *Product) Deactivate() {
	p.IsActive = false
	p.Touch()
}
