package errs

import cr "github.com/cockroachdb/errors"

// Error kinds shared by every usecase. The handler layer maps them to HTTP
// statuses (404/400/409); anything unmarked becomes a 500.
//
// KindNotFound doubles as the access-masking signal: operations that hide
// another user's data report "not found" rather than "forbidden", so a caller
// cannot distinguish a missing entity from one it is not allowed to see.
var (
	KindNotFound   = cr.New("not found")
	KindValidation = cr.New("validation failed")
	KindConflict   = cr.New("conflict")
)

func NotFound(msg string) error {
	return cr.Mark(cr.New(msg), KindNotFound)
}

func Validation(msg string) error {
	return cr.Mark(cr.New(msg), KindValidation)
}

func Conflict(msg string) error {
	return cr.Mark(cr.New(msg), KindConflict)
}
