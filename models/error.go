package models

import "errors"

// ErrorMessageResponse returns the error message response struct
type ErrorMessageResponse struct {
	Response MessageError
}

// MessageError contains the inner details for the error message response
type MessageError struct {
	Message string
	Error   string
}

// Sentinel errors shared by the databases and handlers packages
var (
	// ErrNoMatch is returned when an exact-match query finds no record
	ErrNoMatch = errors.New("no matching record found")

	// ErrIncorrectPassword is returned when a stored password does not match
	ErrIncorrectPassword = errors.New("incorrect password")

	// ErrNotificationWrite flags the partial-write case where a medication
	// update succeeded but the follow-up notification insert failed
	ErrNotificationWrite = errors.New("medication updated but notification write failed")
)
