package internal

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrKeyCodeInvalid     = errors.New("key code invalid by luhn")

	ErrEmptyOrder     = errors.New("order is empty")
	ErrUnknownArticle = errors.New("one or more articles are not available")
	ErrBadAmount      = errors.New("article amount must be positive")

	ErrNoRecords = errors.New("no records")
	ErrBadPrice  = errors.New("price is not a valid amount")
)
