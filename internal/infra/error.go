package infra

import (
	"errors"
	"log/slog"

	"studiobook/internal/pkg/errs"
)

type StoreErrorKind string

// Store error kinds. Persistence failures are always fatal to the triggering
// operation; corrupt data is recovered locally on read paths.
const (
	KindNotFound           StoreErrorKind = "NOT_FOUND"
	KindPersistenceFailure StoreErrorKind = "PERSISTENCE_FAILURE"
	KindCorruptData        StoreErrorKind = "CORRUPT_DATA"
)

type StoreError struct {
	Kind StoreErrorKind
	msg  string
	err  error // wrapped low-level error
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

func WrapStoreErr(logger *slog.Logger, kind StoreErrorKind, msg string, err error) error {
	logger.Error("store error: "+msg, slog.String("kind", string(kind)))

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
