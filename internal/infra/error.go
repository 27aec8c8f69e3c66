package infra

import (
	"errors"
	"log/slog"

	"parcel-registry/internal/pkg/errs"
	"parcel-registry/internal/pkg/pgconv"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr logs failures at error level; expected outcomes such as a
// missing row only reach debug.
func WrapRepoErr(kind RepositoryErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	if kind == KindDBFailure {
		slog.Error("Repository error: "+msg, logArgs...)
	} else {
		slog.Debug("Repository error: "+msg, logArgs...)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
)

// ClassifyPgErr wraps a driver error with the kind its SQLSTATE implies.
func ClassifyPgErr(msg string, err error) error {
	switch {
	case pgconv.IsNoRows(err):
		return WrapRepoErr(KindNotFound, msg, err)
	case pgconv.Code(err) == pgconv.CodeUniqueViolation:
		return WrapRepoErr(KindDuplicateKey, msg, err)
	case pgconv.Code(err) == pgconv.CodeForeignKeyViolation:
		return WrapRepoErr(KindForeignKeyViolated, msg, err)
	default:
		return WrapRepoErr(KindDBFailure, msg, err)
	}
}
