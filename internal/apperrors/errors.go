package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidState indicates that a workflow precondition was violated
// (e.g. approving an invoice that is not PENDING).
var ErrInvalidState = errors.New("invalid state for operation")

// ErrUnauthorized indicates the caller's credentials could not be verified.
var ErrUnauthorized = errors.New("authentication failed")

// ErrForbidden indicates the caller's role does not permit the operation.
var ErrForbidden = errors.New("operation not permitted")

// ErrConflict indicates the operation conflicts with referencing data
// (e.g. deleting a vendor that invoices still point at).
var ErrConflict = errors.New("operation conflicts with existing references")
