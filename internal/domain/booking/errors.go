package booking

import "appointment-booking/internal/pkg/errs"

func validationError(msg string) error {
	return errs.Mark(errs.New(msg), errs.ErrValidation)
}

var (
	ErrNameRequired  = validationError("name is required")
	ErrNameTooLong   = validationError("name exceeds maximum length")
	ErrEmailRequired = validationError("email is required")
	ErrInvalidEmail  = validationError("email is not a valid address")
	ErrDateRequired  = validationError("date is required")
	ErrInvalidDate   = validationError("date must be a calendar date in YYYY-MM-DD format")
	ErrSlotRequired  = validationError("slot is required")
	ErrInvalidSlot   = validationError("slot must be a time in HH:MM format")
	ErrSlotOffGrid   = validationError("slot is not part of the booking grid")
	ErrLabelTooLong  = validationError("label exceeds maximum length")
	ErrNotesTooLong  = validationError("notes exceed maximum length")
	ErrInvalidGrid   = validationError("invalid booking grid")

	ErrNotOwner         = errs.Mark(errs.New("booking belongs to another contact"), errs.ErrForbidden)
	ErrAlreadyCancelled = errs.Mark(errs.New("booking is already cancelled"), errs.ErrConflict)
)
