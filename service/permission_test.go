package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kitchenops/entity"
)

func TestHasPermission(t *testing.T) {
	grants := []entity.Permission{
		{UserID: 1, Resource: "ingredients", Action: "create"},
		{UserID: 1, Resource: "order_items", Action: "delete"},
	}

	tests := []struct {
		name     string
		role     string
		resource string
		action   string
		want     bool
	}{
		{"admin bypasses grants", RoleAdmin, "users", "delete", true},
		{"granted pair", RoleUser, "ingredients", "create", true},
		{"other granted pair", RoleUser, "order_items", "delete", true},
		{"right resource wrong action", RoleUser, "ingredients", "delete", false},
		{"wrong resource right action", RoleUser, "recipes", "create", false},
		{"unknown role without grant", "viewer", "users", "delete", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasPermission(tt.role, grants, tt.resource, tt.action))
		})
	}
}

func TestHasPermissionNoGrants(t *testing.T) {
	assert.False(t, HasPermission(RoleUser, nil, "ingredients", "read"))
	assert.True(t, HasPermission(RoleAdmin, nil, "ingredients", "read"))
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleAdmin))
	assert.True(t, ValidRole(RoleUser))
	assert.False(t, ValidRole(""))
	assert.False(t, ValidRole("superadmin"))
}

func TestValidGrant(t *testing.T) {
	assert.True(t, ValidGrant("ingredients", "create"))
	assert.True(t, ValidGrant("daily_ingredient_summary", "read"))
	assert.False(t, ValidGrant("ingredients", "bake"))
	assert.False(t, ValidGrant("pantry", "read"))
	assert.False(t, ValidGrant("", ""))
}
