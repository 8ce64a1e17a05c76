package request

import (
	"appointment-booking/internal/usecase/commands"
)

type CreateBookingRequest struct {
	Name  string  `json:"name" binding:"required,max=200"`
	Email string  `json:"email" binding:"required,email"`
	Date  string  `json:"date" binding:"required"`
	Slot  string  `json:"slot" binding:"required"`
	Label *string `json:"label,omitempty" binding:"omitempty,max=200"`
	Notes *string `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

func (r *CreateBookingRequest) ToInput() commands.AdmitBookingInput {
	return commands.AdmitBookingInput{
		Name:  r.Name,
		Email: r.Email,
		Date:  r.Date,
		Slot:  r.Slot,
		Label: r.Label,
		Notes: r.Notes,
	}
}

type SlotsQuery struct {
	Date string `form:"date" binding:"required"`
}

type EmailQuery struct {
	Email string `form:"email" binding:"required"`
}
