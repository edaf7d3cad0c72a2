package service

import "errors"

var (
	ErrSignupNotFound = errors.New("signup not found")
)
