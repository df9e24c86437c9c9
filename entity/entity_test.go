package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderItemGroupDate(t *testing.T) {
	prep := "2025-01-15"
	empty := ""

	tests := []struct {
		name  string
		order OrderItem
		want  string
	}{
		{"prep date wins", OrderItem{OrderDate: "2025-01-10", PrepDate: &prep}, "2025-01-15"},
		{"no prep date", OrderItem{OrderDate: "2025-01-10"}, "2025-01-10"},
		{"empty prep date falls back", OrderItem{OrderDate: "2025-01-10", PrepDate: &empty}, "2025-01-10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.order.GroupDate())
		})
	}
}

func TestUserMarshalHidesPassword(t *testing.T) {
	u := User{ID: 1, Name: "Pat", Email: "pat@kitchen.test", Password: "hashed-secret"}

	data, err := json.Marshal(u)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &out))
	assert.NotContains(t, out, "password")
	assert.Equal(t, "pat@kitchen.test", out["email"])
}
