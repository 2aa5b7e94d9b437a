package errors

import "fmt"

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")
	ErrEmptyWords  = fmt.Errorf("no censored words found")

	// Registry
	ErrDuplicateChannel = fmt.Errorf("channel already registered")
	ErrNotFound         = fmt.Errorf("channel not registered")
	ErrUnknownChannel   = fmt.Errorf("payload received on an unregistered channel")

	// Delivery
	ErrChannelClosed = fmt.Errorf("channel closed")
	ErrSendTimeout   = fmt.Errorf("channel send timed out")

	// Inbound payloads
	ErrMalformedPayload = fmt.Errorf("malformed payload")
	ErrUnsupportedType  = fmt.Errorf("unsupported payload type")
	ErrRateLimited      = fmt.Errorf("too many messages")

	// Accounts and contacts
	ErrInvalidToken         = fmt.Errorf("invalid or expired token")
	ErrInvalidCredentials   = fmt.Errorf("invalid username or password")
	ErrInvalidPassword      = fmt.Errorf("password does not meet requirements")
	ErrInvalidUsername      = fmt.Errorf("username does not meet requirements")
	ErrTokenGeneration      = fmt.Errorf("token generation failed")
	ErrUserAlreadyExists    = fmt.Errorf("user already exists")
	ErrUserNotFound         = fmt.Errorf("user not found")
	ErrContactAlreadyExists = fmt.Errorf("contact already added")
	ErrSelfContact          = fmt.Errorf("cannot add yourself as a contact")
)
