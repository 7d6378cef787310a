package entity

import "errors"

var (
	ErrSearchQueryRequired = errors.New("search query is required")
	ErrNameRequired        = errors.New("name is required")
	ErrInvalidPrice        = errors.New("price must be greater than 0")
)
