package booking

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const (
	DateLayout = "2006-01-02"
	SlotLayout = "15:04"

	MaxNameLength  = 200
	MaxLabelLength = 200
	MaxNotesLength = 1000
)

// Lengths count runes, and emails use the same validator rule as request
// binding, so anything the HTTP layer accepts the domain accepts too.
var validate = validator.New()

// Date is a calendar day used as an opaque grouping key. It is validated on
// construction but never used for time arithmetic.
type Date struct {
	value string
}

func NewDate(s string) (Date, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Date{}, ErrDateRequired
	}
	if _, err := time.Parse(DateLayout, t); err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{value: t}, nil
}

func (d Date) String() string { return d.value }

// Slot is a time of day with minute precision, rendered as zero-padded HH:MM.
type Slot struct {
	minutes int
}

// ParseSlot accepts "9:00" as well as "09:00" and canonicalises both to "09:00".
func ParseSlot(s string) (Slot, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Slot{}, ErrSlotRequired
	}
	parsed, err := time.Parse(SlotLayout, t)
	if err != nil {
		return Slot{}, ErrInvalidSlot
	}
	return Slot{minutes: parsed.Hour()*60 + parsed.Minute()}, nil
}

func slotAt(minutes int) Slot {
	return Slot{minutes: minutes}
}

func (s Slot) Minutes() int { return s.minutes }

func (s Slot) String() string {
	return fmt.Sprintf("%02d:%02d", s.minutes/60, s.minutes%60)
}

type Contact struct {
	name  string
	email string
}

func NewContact(name, email string) (Contact, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return Contact{}, ErrNameRequired
	}
	if utf8.RuneCountInString(n) > MaxNameLength {
		return Contact{}, ErrNameTooLong
	}
	e := NormalizeEmail(email)
	if e == "" {
		return Contact{}, ErrEmailRequired
	}
	if err := validate.Var(e, "email"); err != nil {
		return Contact{}, ErrInvalidEmail
	}
	return Contact{name: n, email: e}, nil
}

func (c Contact) Name() string  { return c.name }
func (c Contact) Email() string { return c.email }

// NormalizeEmail is applied at write time and to lookup filters, so that
// identity comparisons are exact matches on the stored value.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type Label struct {
	value string
}

func NewLabel(value, fallback string) (Label, error) {
	t := strings.TrimSpace(value)
	if t == "" {
		t = fallback
	}
	if utf8.RuneCountInString(t) > MaxLabelLength {
		return Label{}, ErrLabelTooLong
	}
	return Label{value: t}, nil
}

func (l Label) String() string { return l.value }

type Notes struct {
	value string
}

func NewNotes(value string) (Notes, error) {
	t := strings.TrimSpace(value)
	if utf8.RuneCountInString(t) > MaxNotesLength {
		return Notes{}, ErrNotesTooLong
	}
	return Notes{value: t}, nil
}

func (n Notes) String() string { return n.value }

func (n Notes) IsEmpty() bool { return n.value == "" }
