package infra

import (
	"context"
	"errors"
	"log/slog"

	"parkease/internal/pkg/errs"
	"parkease/internal/pkg/pgconv"
	"parkease/internal/usecase/shared"
)

type RepositoryErrorKind string

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindConflict           RepositoryErrorKind = "CONFLICT"
	KindCapacity           RepositoryErrorKind = "CAPACITY"
)

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

// Is lets use cases test repository failures against the storage-neutral
// sentinels in shared.
func (e RepositoryError) Is(target error) bool {
	switch target {
	case shared.ErrNotFound:
		return e.Kind == KindNotFound
	case shared.ErrDuplicate:
		return e.Kind == KindDuplicateKey
	case shared.ErrCapacityExhausted:
		return e.Kind == KindCapacity
	default:
		return false
	}
}

// WrapRepoErr classifies err from its pg error code unless a kind is given.
// Expected outcomes (not found, capacity) are logged at debug; the rest at error.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := classify(err)
	if len(kind) > 0 {
		k = kind[0]
	}

	level := slog.LevelError
	if k == KindNotFound || k == KindCapacity || k == KindConflict {
		level = slog.LevelDebug
	}
	args := []any{slog.String("kind", string(k))}
	if err != nil {
		args = append(args, slog.String("error", err.Error()))
		err = errs.Wrap(err, msg)
	}
	slog.Log(context.Background(), level, "repository error: "+msg, args...)

	return RepositoryError{Kind: k, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func classify(err error) RepositoryErrorKind {
	if err == nil {
		return KindDBFailure
	}
	if pgconv.IsNoRows(err) {
		return KindNotFound
	}
	switch pgconv.ErrorCode(err) {
	case pgconv.CodeUniqueViolation:
		return KindDuplicateKey
	case pgconv.CodeForeignKeyViolation:
		return KindForeignKeyViolated
	case pgconv.CodeCheckViolation:
		return KindCapacity
	case pgconv.CodeSerializationFailure, pgconv.CodeDeadlockDetected:
		return KindConflict
	default:
		return KindDBFailure
	}
}
