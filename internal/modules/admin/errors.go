package admin

import "errors"

var (
	ErrValidation              = errors.New("validation error")
	ErrNotFound                = errors.New("not found")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrAlreadyBlocked          = errors.New("slot already blocked")
	ErrSlotTaken               = errors.New("slot held by a booking")
)
