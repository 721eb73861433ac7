package entity

import "errors"

var (
	ErrProductNameRequired = errors.New("product name is required")
	ErrInvalidPrice        = errors.New("price must be greater than zero")
	ErrProductNotFound     = errors.New("product not found")
)
