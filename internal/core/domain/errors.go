package domain

import "errors"

// Common domain errors
var (
	ErrValidation          = errors.New("required field missing or invalid")
	ErrForbiddenTransition = errors.New("document is in a terminal state and cannot be modified")
	ErrNotCustodian        = errors.New("acting user is not the current custodian")
	ErrNotFound            = errors.New("resource not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidCredentials  = errors.New("invalid credentials")
)

// Session errors
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenRevoked = errors.New("token has been revoked")
)

// Directory errors
var (
	ErrStaffNotFound      = errors.New("staff not found in directory")
	ErrStaffAlreadyExists = errors.New("staff id already registered")
	ErrDepartmentNotFound = errors.New("department not found")
	ErrDepartmentInUse    = errors.New("department is referenced by staff records")
	ErrSelfDelete         = errors.New("cannot delete own account")
	ErrSelfRecipient      = errors.New("recipient cannot be the acting user")
)

// Note errors
var (
	ErrNoteNotFound = errors.New("note sheet not found")
)

// External boundary errors
var (
	ErrAssistantUnavailable = errors.New("assistant service unavailable")
	ErrInvalidBackup        = errors.New("backup package missing required collections")
)
