package entity

import "errors"

var (
	// Reglas de negocio del aggregate Sale
	ErrInvalidQuantity     = errors.New("cannot sell more than 20 identical items or less than 1")
	ErrInvalidPrice        = errors.New("unit price must be greater than zero")
	ErrItemNotFound        = errors.New("item not found in this sale")
	ErrSaleAlreadyCanceled = errors.New("sale already canceled")

	// Errores de búsqueda (usados por repositorios y use cases)
	ErrSaleNotFound = errors.New("sale not found")
)
