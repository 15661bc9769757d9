//go:build unit

package infra_test

import (
	"errors"
	"fmt"
	"testing"

	"parkease/internal/infra"
	"parkease/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		kind     []infra.RepositoryErrorKind
		wantKind infra.RepositoryErrorKind
		sentinel error
	}{
		{"no rows", fmt.Errorf("scan: %w", pgx.ErrNoRows), nil, infra.KindNotFound, shared.ErrNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, nil, infra.KindDuplicateKey, shared.ErrDuplicate},
		{"check violation", &pgconn.PgError{Code: "23514"}, nil, infra.KindCapacity, shared.ErrCapacityExhausted},
		{"foreign key", &pgconn.PgError{Code: "23503"}, nil, infra.KindForeignKeyViolated, nil},
		{"deadlock", &pgconn.PgError{Code: "40P01"}, nil, infra.KindConflict, nil},
		{"connection", errors.New("dial tcp: refused"), nil, infra.KindDBFailure, nil},
		{"explicit kind wins", errors.New("0 rows affected"), []infra.RepositoryErrorKind{infra.KindCapacity}, infra.KindCapacity, shared.ErrCapacityExhausted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := infra.WrapRepoErr("op", tt.err, tt.kind...)

			assert.True(t, infra.IsKind(got, tt.wantKind))
			assert.ErrorIs(t, got, tt.err)
			if tt.sentinel != nil {
				assert.ErrorIs(t, got, tt.sentinel)
			}
			if tt.sentinel != shared.ErrNotFound {
				assert.NotErrorIs(t, got, shared.ErrNotFound)
			}
		})
	}
}
