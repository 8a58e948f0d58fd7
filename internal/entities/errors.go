package entities

import "errors"

var (
	ErrItemNotFound     = errors.New("item not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrDiscountNotFound = errors.New("discount not found")
	ErrTaxNotFound      = errors.New("tax not found")
	ErrInvalidItem      = errors.New("invalid item")
)
