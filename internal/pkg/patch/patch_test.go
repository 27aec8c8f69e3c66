//go:build unit

package patch_test

import (
	"testing"

	"parcel-registry/internal/pkg/patch"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	notes := "Vente entre particuliers"
	assert.Equal(t, notes, patch.Coalesce(&notes, ""))
	assert.Equal(t, "", patch.Coalesce[string](nil, ""))
	assert.Equal(t, 30, patch.Coalesce[int](nil, 30))
}

func TestTrimmed(t *testing.T) {
	s := func(v string) *string { return &v }

	tests := []struct {
		name string
		in   *string
		want *string
	}{
		{name: "nil", in: nil, want: nil},
		{name: "blank", in: s("   \t"), want: nil},
		{name: "padded", in: s("  Bornage contradictoire "), want: s("Bornage contradictoire")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, patch.Trimmed(tt.in))
		})
	}
}
