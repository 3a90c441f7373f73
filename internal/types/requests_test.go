package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantity_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Quantity
	}{
		{name: "integer", input: `2`, expected: "2"},
		{name: "decimal", input: `1.5`, expected: "1.5"},
		{name: "string", input: `"3 packs"`, expected: "3 packs"},
		{name: "empty string", input: `""`, expected: ""},
		{name: "null", input: `null`, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var q Quantity
			require.NoError(t, q.UnmarshalJSON([]byte(tt.input)))
			assert.Equal(t, tt.expected, q)
		})
	}

	t.Run("should reject objects", func(t *testing.T) {
		var q Quantity
		assert.Error(t, q.UnmarshalJSON([]byte(`{"value": 1}`)))
	})
}

func TestAddFoodRequest_Decode(t *testing.T) {
	var req AddFoodRequest
	body := `{"name":"Paneer","expiry":"12/02/2024","quantity":200,"location":"Fridge","nutrients":{"protein":"18g"}}`

	require.NoError(t, json.Unmarshal([]byte(body), &req))
	assert.Equal(t, Quantity("200"), req.Quantity)
	assert.Equal(t, "18g", req.Nutrients["protein"])
	assert.Nil(t, req.ImageURL)
}

func TestAddFoodRequest_DecodeNullQuantity(t *testing.T) {
	var req AddFoodRequest
	body := `{"name":"Paneer","expiry":"12/02/2024","quantity":null,"location":"Fridge"}`

	require.NoError(t, json.Unmarshal([]byte(body), &req))
	assert.Equal(t, Quantity(""), req.Quantity)
}
