//go:build unit

package user_test

import (
	"testing"

	"parkease/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	for _, s := range []string{"admin", "owner", "watchman", "customer"} {
		r, err := user.NewRole(s)
		require.NoError(t, err)
		assert.Equal(t, s, r.String())
	}

	_, err := user.NewRole("superuser")
	require.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestActorCanProcess(t *testing.T) {
	ownerA := uuid.New()
	ownerB := uuid.New()

	tests := []struct {
		name  string
		actor user.Actor
		want  bool
	}{
		{"admin processes any location", user.Actor{ID: uuid.New(), Role: user.RoleAdmin}, true},
		{"owner processes own location", user.Actor{ID: uuid.New(), Role: user.RoleOwner, OwnerProfileID: &ownerA}, true},
		{"owner of another location is refused", user.Actor{ID: uuid.New(), Role: user.RoleOwner, OwnerProfileID: &ownerB}, false},
		{"owner without profile is refused", user.Actor{ID: uuid.New(), Role: user.RoleOwner}, false},
		{"watchman never processes", user.Actor{ID: uuid.New(), Role: user.RoleWatchman, EmployerOwnerID: &ownerA}, false},
		{"customer never processes", user.Actor{ID: uuid.New(), Role: user.RoleCustomer}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.actor.CanProcess(ownerA))
		})
	}
}

func TestActorCanSubmit(t *testing.T) {
	ownerA := uuid.New()
	ownerB := uuid.New()

	assert.True(t, user.Actor{Role: user.RoleWatchman, EmployerOwnerID: &ownerA}.CanSubmit(ownerA))
	assert.False(t, user.Actor{Role: user.RoleWatchman, EmployerOwnerID: &ownerB}.CanSubmit(ownerA))
	assert.False(t, user.Actor{Role: user.RoleWatchman}.CanSubmit(ownerA))
	assert.True(t, user.Actor{Role: user.RoleOwner, OwnerProfileID: &ownerA}.CanSubmit(ownerA))
	assert.True(t, user.Actor{Role: user.RoleAdmin}.CanSubmit(ownerB))
	assert.False(t, user.Actor{Role: user.RoleCustomer}.CanSubmit(ownerA))
}
