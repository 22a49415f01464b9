package entity

import (
	"errors"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrConflict           = errors.New("conflict")
	ErrNoEligibleApprover = errors.New("no eligible approver")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrForbidden          = errors.New("forbidden")
	ErrUnavailable        = errors.New("temporarily unavailable")
)
