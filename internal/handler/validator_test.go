package handler

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_CallbackStatus(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		status  string
		wantErr bool
	}{
		// Best case
		{"success", "success", false},
		{"error", "error", false},
		{"failed", "failed", false},

		// Edge: case insensitive, empty means failure
		{"uppercase", "SUCCESS", false},
		{"empty allowed", "", false},

		// Invalid
		{"unknown status", "done", true},
		{"typo", "sucess", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(CallbackRequest{JobID: "job", Status: tt.status})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_CallbackJobID(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		jobID   string
		wantErr bool
	}{
		{"uuid", "0b7e3a52-7a53-4b39-8f1d-0f1a4d2d9b11", false},
		{"at max length", strings.Repeat("a", 64), false},
		{"over max length", strings.Repeat("a", 65), true},
		{"missing", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(CallbackRequest{JobID: tt.jobID, Status: "success"})
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	InitValidator()
	v := GetValidator()

	t.Run("uses json field names", func(t *testing.T) {
		err := v.ValidateStruct(CallbackRequest{Status: "bogus"})
		require.Error(t, err)

		fields := FormatValidationError(err)
		assert.Equal(t, "This field is required", fields["job_id"])
		assert.Equal(t, "Must be success or error", fields["status"])
	})

	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, FormatValidationError(nil))
	})

	t.Run("non validation error", func(t *testing.T) {
		fields := FormatValidationError(errors.New("boom"))
		assert.Equal(t, map[string]string{"error": "Invalid request format"}, fields)
	})
}
