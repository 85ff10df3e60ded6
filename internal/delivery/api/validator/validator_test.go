package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type contactRequest struct {
	Email string `validate:"required,email"`
	Phone string `validate:"omitempty,phone"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		req     contactRequest
		wantErr bool
	}{
		{name: "email only", req: contactRequest{Email: "a@example.com"}},
		{name: "with phone", req: contactRequest{Email: "a@example.com", Phone: "+1 (555) 010-2000"}},
		{name: "short phone", req: contactRequest{Email: "a@example.com", Phone: "555-01"}, wantErr: true},
		{name: "letters in phone", req: contactRequest{Email: "a@example.com", Phone: "555-010-CALL"}, wantErr: true},
		{name: "bad email", req: contactRequest{Email: "nope"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := v.Validate(&tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
