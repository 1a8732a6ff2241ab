// Package errs defines the error taxonomy shared by the domain, the
// application handlers and the adapters.
//
// Every kind has a sentinel for errors.Is and a struct carrying details:
//
//	ErrValueIsRequired    *ValueIsRequiredError    missing input
//	ErrValueIsInvalid     *ValueIsInvalidError     malformed input
//	ErrValueIsOutOfRange  *ValueIsOutOfRangeError  input outside its bounds
//	ErrObjectNotFound     *ObjectNotFoundError     unknown order, dish or pickup code
//	ErrInvalidTransition  *InvalidTransitionError  status change or operation refused
//	ErrConflict           *ConflictError           uniqueness could not be secured
//
// The three input kinds also match ErrValidation, which is what the HTTP
// layer maps to 400. Constructors come in pairs, with and without a cause.
package errs
