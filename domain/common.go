package domain

import (
	"errors"
)

var (
	MessageSuccessPing          = "pong"
	MessageFailedBodyRequest    = "invalid request body"
	MessageFailedValidation     = "validation failed"
	MessageFailedProcessRequest = "failed to process request"
	MessageTooManyRequests      = "too many requests"

	ErrInternal        = errors.New("internal server error")
	ErrRouteNotFound   = errors.New("route not found")
	ErrTooManyRequests = errors.New("rate limit exceeded")
)
