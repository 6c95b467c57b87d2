package utils

import "errors"

var (
	ErrSaleNotFound       = errors.New("sale not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrReviewNotFound     = errors.New("review not found")
	ErrSettingNotFound    = errors.New("setting not found")
	ErrInvalidSale        = errors.New("invalid sale payload")
	ErrInvalidAmount      = errors.New("amount must be a positive number of cents")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDatabaseError      = errors.New("database error")
)
