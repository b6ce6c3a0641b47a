package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kitfetch/internal/core/domain"
)

func TestDecodeVersionToken(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		want    domain.Version
		wantErr bool
	}{
		{
			name:  "Four Digit Token",
			token: "5124",
			want:  domain.Version{Major: 5, Minor: 12, Patch: 4},
		},
		{
			name:  "Three Digit Token",
			token: "514",
			want:  domain.Version{Major: 5, Minor: 1, Patch: 4},
		},
		{
			name:  "Two Digit Token Has Zero Patch",
			token: "59",
			want:  domain.Version{Major: 5, Minor: 9, Patch: 0},
		},
		{
			name:  "Long Minor",
			token: "5150",
			want:  domain.Version{Major: 5, Minor: 15, Patch: 0},
		},
		{
			name:    "Empty",
			token:   "",
			wantErr: true,
		},
		{
			name:    "Single Character",
			token:   "5",
			wantErr: true,
		},
		{
			name:    "Non Numeric",
			token:   "5x4",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.DecodeVersionToken(tt.token)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrBadVersionToken)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVersion_Token(t *testing.T) {
	t.Run("Round Trip", func(t *testing.T) {
		for _, token := range []string{"5124", "5150", "5991"} {
			v, err := domain.DecodeVersionToken(token)
			require.NoError(t, err)
			assert.Equal(t, token, v.Token())
		}
	})

	t.Run("Elided Patch Re-Encodes With Zero", func(t *testing.T) {
		v, err := domain.DecodeVersionToken("59")
		require.NoError(t, err)
		assert.Equal(t, "590", v.Token())
	})
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    domain.Version
		wantErr bool
	}{
		{
			name: "Full",
			in:   "5.12.4",
			want: domain.Version{Major: 5, Minor: 12, Patch: 4},
		},
		{
			name: "Patch Defaults To Zero",
			in:   "5.9",
			want: domain.Version{Major: 5, Minor: 9, Patch: 0},
		},
		{
			name:    "Too Few Parts",
			in:      "5",
			wantErr: true,
		},
		{
			name:    "Too Many Parts",
			in:      "5.12.4.1",
			wantErr: true,
		},
		{
			name:    "Negative",
			in:      "5.-1.0",
			wantErr: true,
		},
		{
			name:    "Garbage",
			in:      "five.twelve",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseVersion(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrBadVersion)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVersion_Less(t *testing.T) {
	a := domain.Version{Major: 5, Minor: 9, Patch: 9}
	b := domain.Version{Major: 5, Minor: 12, Patch: 0}
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.False(t, a.Less(a))
}

func TestVersion_String(t *testing.T) {
	assert.Equal(t, "5.12.4", domain.Version{Major: 5, Minor: 12, Patch: 4}.String())
}
