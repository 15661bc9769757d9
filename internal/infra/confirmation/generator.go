package confirmation

import (
	"context"
	"encoding/base32"
	"log/slog"
	"strings"

	"parkease/internal/infra/db"
	"parkease/internal/infra/repository"
	"parkease/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	prefix      = "PE-"
	codeLength  = 8
	maxAttempts = 5
)

var ErrCodeSpaceExhausted = errs.New("could not find an unused confirmation code")

var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// ExistsFunc reports whether a code is already taken.
type ExistsFunc func(ctx context.Context, code string) (bool, error)

// Generator issues PE-XXXXXXXX codes from random UUID bytes and retries on
// collision. The unique index on bookings.confirmation_code stays the
// final guard.
type Generator struct {
	exists ExistsFunc
	random func() uuid.UUID
}

func NewGenerator(dbtx db.DBTX) *Generator {
	return NewGeneratorWith(func(ctx context.Context, code string) (bool, error) {
		return repository.ConfirmationCodeExists(ctx, dbtx, code)
	}, uuid.New)
}

func NewGeneratorWith(exists ExistsFunc, random func() uuid.UUID) *Generator {
	return &Generator{exists: exists, random: random}
}

func (g *Generator) Generate(ctx context.Context) (string, error) {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		code := format(g.random())
		taken, err := g.exists(ctx, code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
		slog.Warn("confirmation code collision", "attempt", attempt)
	}
	return "", ErrCodeSpaceExhausted
}

func format(id uuid.UUID) string {
	return prefix + strings.ToUpper(encoding.EncodeToString(id[:]))[:codeLength]
}
