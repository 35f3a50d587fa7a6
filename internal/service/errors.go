package service

import "errors"

var (
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrWritesDisabled          = errors.New("writes are disabled: no token sign key configured")

	ErrListingUnsupported = errors.New("backing store cannot list values")
)
