package domain_test

import (
	"testing"

	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidReference(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "canonical", in: "3f1c0b6e-9d2a-4c5e-8f7a-1b2c3d4e5f60", want: true},
		{name: "upper case", in: "3F1C0B6E-9D2A-4C5E-8F7A-1B2C3D4E5F60", want: true},
		{name: "null sentinel", in: string(domain.NullIdentifier), want: false},
		{name: "empty", in: "", want: false},
		{name: "no dashes", in: "3f1c0b6e9d2a4c5e8f7a1b2c3d4e5f60", want: false},
		{name: "braced", in: "{3f1c0b6e-9d2a-4c5e-8f7a-1b2c3d4e5f60}", want: false},
		{name: "urn", in: "urn:uuid:3f1c0b6e-9d2a-4c5e-8f7a-1b2c3d4e5f60", want: false},
		{name: "wrong grouping", in: "3f1c0b6e9-d2a-4c5e-8f7a-1b2c3d4e5f60", want: false},
		{name: "not hex", in: "3f1c0b6e-9d2a-4c5e-8f7a-1b2c3d4e5fzz", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.IsValidReference(tt.in))
		})
	}
}

func TestParseIdentifier(t *testing.T) {
	id, err := domain.ParseIdentifier(" 3F1C0B6E-9D2A-4C5E-8F7A-1B2C3D4E5F60 ")
	require.NoError(t, err)
	assert.Equal(t, domain.Identifier("3f1c0b6e-9d2a-4c5e-8f7a-1b2c3d4e5f60"), id)
	assert.False(t, id.IsNull())

	null, err := domain.ParseIdentifier(string(domain.NullIdentifier))
	require.NoError(t, err)
	assert.True(t, null.IsNull())

	_, err = domain.ParseIdentifier("not-an-identifier")
	require.ErrorContains(t, err, domain.ErrInvalidIdentifier.Error())
}

func TestIdentifier_IsNull(t *testing.T) {
	assert.True(t, domain.Identifier("").IsNull())
	assert.True(t, domain.NullIdentifier.IsNull())
	assert.Equal(t, "00000000-0000-0000-0000-000000000000", domain.NullIdentifier.String())
}
