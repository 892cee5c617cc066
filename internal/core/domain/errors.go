package domain

import "errors"

var (
	// ErrInvalidCredentials deliberately covers unknown email, missing
	// password hash and wrong password alike, so login responses never
	// reveal whether an account exists.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUserNotFound   = errors.New("user not found")
	ErrEmailTaken     = errors.New("email already registered")
	ErrClientNotFound = errors.New("client not found")
	ErrForbidden      = errors.New("access forbidden")

	ErrGoogleAccount    = errors.New("google accounts cannot change password")
	ErrWrongPassword    = errors.New("current password is incorrect")
	ErrPasswordTooShort = errors.New("new password must be at least 6 characters")
	ErrSelfDelete       = errors.New("you cannot delete your own account")

	ErrGoogleVerification = errors.New("google authentication failed")
)
