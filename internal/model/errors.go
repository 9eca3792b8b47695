// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "errors"

// ErrorKind classifies a failed store operation.
type ErrorKind int

// Error kinds.
const (
	KindForbidden ErrorKind = iota + 1
	KindNotFound
	KindValidation
	KindCredentials
)

// String returns the machine-readable name of the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation_error"
	case KindCredentials:
		return "invalid_credentials"
	default:
		return "unknown"
	}
}

// Error is returned by store operations that were rejected before any
// state was mutated.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// ErrInvalidCredentials is returned for any failed login. It does not say
// whether the account exists.
var ErrInvalidCredentials = &Error{Kind: KindCredentials, Message: "credenciales inválidas"}

// Forbidden returns an authorization error.
func Forbidden(msg string) error {
	return &Error{Kind: KindForbidden, Message: msg}
}

// NotFound returns a not-found error.
func NotFound(msg string) error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// Invalid returns a validation error.
func Invalid(msg string) error {
	return &Error{Kind: KindValidation, Message: msg}
}

// KindOf returns the kind of err, or 0 if err is not an *Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsForbidden reports whether err is an authorization error.
func IsForbidden(err error) bool { return KindOf(err) == KindForbidden }

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool { return KindOf(err) == KindValidation }

// IsCredentials reports whether err is a credential error.
func IsCredentials(err error) bool { return KindOf(err) == KindCredentials }
