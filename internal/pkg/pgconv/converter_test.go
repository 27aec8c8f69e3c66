//go:build unit

package pgconv_test

import (
	"testing"

	"parcel-registry/internal/pkg/pgconv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloat64Numeric(t *testing.T) {
	tests := []struct {
		name  string
		value *float64
	}{
		{name: "nil", value: nil},
		{name: "zero", value: ptr(0)},
		{name: "price with cents", value: ptr(15000000.75)},
		{name: "small fraction", value: ptr(0.01)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := pgconv.Float64PtrToNumeric(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.value != nil, n.Valid)

			back, err := pgconv.Float64PtrFromNumeric(n)
			require.NoError(t, err)
			if tt.value == nil {
				assert.Nil(t, back)
				return
			}
			require.NotNil(t, back)
			assert.InDelta(t, *tt.value, *back, 1e-9)
		})
	}
}

func ptr(f float64) *float64 { return &f }
