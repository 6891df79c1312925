package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name     string `validate:"required,min=3,max=5"`
	Password string `validate:"required"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name        string
		input       sample
		expectedErr string
	}{
		{name: "Valid", input: sample{Name: "alice", Password: "x"}},
		{name: "Missing fields", input: sample{}, expectedErr: "name is required; password is required"},
		{name: "Too short", input: sample{Name: "al", Password: "x"}, expectedErr: "name must be at least 3 characters"},
		{name: "Too long", input: sample{Name: "alexander", Password: "x"}, expectedErr: "name must be at most 5 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.input)
			if tt.expectedErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.expectedErr)
		})
	}
}
