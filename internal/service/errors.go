package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrLoginOnServer    = errors.New("login on server failed")

	// ErrNoActiveUser is returned by the client contact engine when an
	// operation is dispatched before SetUser was called.
	ErrNoActiveUser = errors.New("no active user")

	ErrValidationNoContactsProvided        = errors.New("no contacts provided")
	ErrValidationNoDownloadRequestProvided = errors.New("no download requests provided")
	ErrValidationNoUpdateRequestsProvided  = errors.New("no update requests provided")
	ErrValidationNoDeleteRequestsProvided  = errors.New("no delete requests provided")
	ErrValidationNoUserID                  = errors.New("no user ID for contact data was given")
)
