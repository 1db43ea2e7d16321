package domain

import "errors"

var (
	// ErrTokenExpired marks a structurally valid token past its expiry.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid covers malformed tokens and signature mismatches.
	ErrTokenInvalid = errors.New("token invalid")
	// ErrTokenRevoked marks a token explicitly revoked before expiry.
	ErrTokenRevoked = errors.New("token revoked")
)
