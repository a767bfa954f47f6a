package utils

import "errors"

var (
	ErrNoSubscription     = errors.New("account has no subscription")
	ErrQuotaExceeded      = errors.New("monthly quota exceeded")
	ErrInvalidTier        = errors.New("invalid plan tier")
	ErrAccountNotFound    = errors.New("account not found")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidApiKey      = errors.New("invalid api key")
	ErrLinkNotFound       = errors.New("link not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDatabaseError      = errors.New("database error")
)
