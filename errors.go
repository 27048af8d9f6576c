package huffarc

import "github.com/gorskim/huffarc/internal/errs"

// Sentinel errors a caller can match with errors.Is against the error
// returned by Run. See spec.md §7 for the abstract error kinds these
// correspond to.
var (
	ErrIoUnavailable   = errs.IoUnavailable
	ErrMalformedStream = errs.MalformedStream
	ErrMalformedFolder = errs.MalformedFolder
	ErrTableOverflow   = errs.TableOverflow
	ErrMissingInput    = errs.MissingInput
)
