package errs

// Error classes shared across layers. Use-case errors are marked with one of these
// so the handler can map a whole family of failures to a single status code.
var (
	ErrValidation = New("validation error")
	ErrConflict   = New("conflict")
	ErrNotFound   = New("not found")
	ErrForbidden  = New("forbidden")

	ErrDatabaseOperationFailed = New("database operation failed")
)
