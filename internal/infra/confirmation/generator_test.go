//go:build unit

package confirmation_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"parkease/internal/infra/confirmation"
	"parkease/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var codePattern = regexp.MustCompile(`^PE-[A-Z2-7]{8}$`)

func TestGenerate(t *testing.T) {
	t.Run("format", func(t *testing.T) {
		g := confirmation.NewGeneratorWith(func(context.Context, string) (bool, error) { return false, nil }, uuid.New)
		code, err := g.Generate(context.Background())
		require.NoError(t, err)
		assert.Regexp(t, codePattern, code)
	})

	t.Run("retries on collision", func(t *testing.T) {
		calls := 0
		g := confirmation.NewGeneratorWith(func(context.Context, string) (bool, error) {
			calls++
			return calls < 3, nil
		}, uuid.New)

		code, err := g.Generate(context.Background())
		require.NoError(t, err)
		assert.Regexp(t, codePattern, code)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after repeated collisions", func(t *testing.T) {
		fixed := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
		calls := 0
		g := confirmation.NewGeneratorWith(func(context.Context, string) (bool, error) {
			calls++
			return true, nil
		}, func() uuid.UUID { return fixed })

		_, err := g.Generate(context.Background())
		require.True(t, errs.Is(err, confirmation.ErrCodeSpaceExhausted))
		assert.Equal(t, 5, calls)
	})

	t.Run("lookup failure is returned", func(t *testing.T) {
		boom := errors.New("db down")
		g := confirmation.NewGeneratorWith(func(context.Context, string) (bool, error) { return false, boom }, uuid.New)

		_, err := g.Generate(context.Background())
		require.ErrorIs(t, err, boom)
	})

	t.Run("same entropy gives same code", func(t *testing.T) {
		fixed := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
		g := confirmation.NewGeneratorWith(func(context.Context, string) (bool, error) { return false, nil }, func() uuid.UUID { return fixed })
		a, _ := g.Generate(context.Background())
		b, _ := g.Generate(context.Background())
		assert.Equal(t, a, b)
	})
}
