package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_Handle(t *testing.T) {
	InitValidator()

	tests := []struct {
		username string
		valid    bool
	}{
		{"", true},
		{"mike_s", true},
		{"@mike_s", true},
		{"Фредди", true},
		{"with.dot", true},
		{"has space", false},
		{"@@double", false},
		{"semi;colon", false},
	}

	for _, tt := range tests {
		t.Run(tt.username, func(t *testing.T) {
			err := GetValidator().ValidateStruct(SessionRequest{UserID: 1, Username: tt.username})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidator_ItemID(t *testing.T) {
	InitValidator()

	assert.NoError(t, GetValidator().ValidateStruct(SellItemRequest{UserID: 1, ItemID: "golden_freddy"}))
	assert.Error(t, GetValidator().ValidateStruct(SellItemRequest{UserID: 1, ItemID: "Golden_Freddy"}))
	assert.Error(t, GetValidator().ValidateStruct(SellItemRequest{UserID: 1, ItemID: ""}))
}

func TestFormatValidationError(t *testing.T) {
	InitValidator()

	err := GetValidator().ValidateStruct(GrantCurrencyRequest{Actor: "@ave4ge", Target: "bad target"})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, "Invalid username", fields["target"])
	assert.Equal(t, "This field is required", fields["amount"])
	assert.NotContains(t, fields, "actor")

	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(errors.New("x")))
}
