package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedRequest struct {
	Name string `json:"name" validate:"required,notblank"`
}

func TestNotBlank(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"word", "Thums Up", false},
		{"spaces only", "   ", true},
		{"tabs and newlines", "\t\n", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Get().Struct(namedRequest{Name: tt.input})
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.NotEmpty(t, Messages(err))
		})
	}
}

func TestMessages_UsesJSONNames(t *testing.T) {
	err := Get().Struct(namedRequest{Name: "  "})

	require.Error(t, err)
	msgs := Messages(err)
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "name: notblank")
}
