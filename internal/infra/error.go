package infra

import (
	"errors"

	"hotel-desk/internal/pkg/errs"
)

type StoreErrorKind string

// Store-level error kinds; the usecase layer maps these onto its sentinel
// taxonomy.
const (
	KindNotFound StoreErrorKind = "NOT_FOUND"
	KindConflict StoreErrorKind = "CONFLICT"
	KindEmpty    StoreErrorKind = "EMPTY"
	KindFailure  StoreErrorKind = "FAILURE"
)

type StoreError struct {
	Kind StoreErrorKind
	msg  string
	err  error // wrapped low-level error, may be nil for in-memory stores
}

func (e StoreError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e StoreError) Unwrap() error {
	return e.err
}

func WrapStoreErr(msg string, err error, kinds ...StoreErrorKind) error {
	kind := KindFailure
	if len(kinds) > 0 {
		kind = kinds[0]
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return StoreError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind StoreErrorKind) bool {
	var e StoreError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
