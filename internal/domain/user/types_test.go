//go:build unit

package user_test

import (
	"testing"

	"parcel-registry/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		errIs    error
		elevated bool
	}{
		{name: "administrator", in: "administrator", elevated: true},
		{name: "manager", in: "manager", elevated: true},
		{name: "officer", in: "officer"},
		{name: "citizen", in: "citizen"},
		{name: "consultant", in: "consultant"},
		{name: "unknown role", in: "admin", errIs: user.ErrInvalidRole},
		{name: "empty role", in: "", errIs: user.ErrInvalidRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, err := user.NewRole(tt.in)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.elevated, role.IsElevated())

			actor := user.NewActor(uuid.New(), role)
			assert.Equal(t, tt.elevated, actor.IsElevated())
		})
	}
}
