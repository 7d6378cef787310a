package entity

import "errors"

var (
	ErrProductIDRequired    = errors.New("product_id is required")
	ErrProductNameRequired  = errors.New("product_name is required")
	ErrBranchIDRequired     = errors.New("branch_id is required")
	ErrBranchNameRequired   = errors.New("branch_name is required")
	ErrInvalidUnitPrice     = errors.New("unit_price must be greater than 0")
	ErrInvalidStock         = errors.New("stock must be greater than or equal to 0")
	ErrInvalidQuantity      = errors.New("quantity must be greater than 0")
	ErrQuantityExceedsStock = errors.New("quantity exceeds available stock")
	ErrBuyOrderRequired     = errors.New("buy_order is required")
	ErrSessionIDRequired    = errors.New("session_id is required")
	ErrNoActiveSelection    = errors.New("no active selection")
)
