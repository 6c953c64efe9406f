package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token format is invalid or signature doesn't match
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrTokenNotYetValid indicates the token is not yet valid (nbf claim in the future)
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrWrongTokenType indicates a well-formed token issued for a different purpose
	ErrWrongTokenType = errors.New("wrong token type")

	// ErrInvalidCredentials is returned by sign-in for both an unknown username
	// and a wrong password, so callers cannot tell which one failed.
	ErrInvalidCredentials = errors.New("please check your login credentials")

	// ErrUserNotFound indicates a valid token whose username no longer exists
	ErrUserNotFound = errors.New("user not found")
)
