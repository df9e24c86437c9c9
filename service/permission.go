package service

import (
	"kitchenops/entity"
)

// Roles known to the system.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Resources is the fixed catalog of permissionable resources.
var Resources = []string{
	"ingredients",
	"recipe_types",
	"recipes",
	"order_items",
	"users",
	"permissions",
	"daily_ingredient_summary",
}

// Actions is the fixed catalog of permissionable actions.
var Actions = []string{"create", "read", "update", "delete", "assign", "revoke"}

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}

// ValidGrant reports whether (resource, action) is inside the fixed
// catalogs. There are no wildcard or hierarchy semantics.
func ValidGrant(resource, action string) bool {
	return contains(Resources, resource) && contains(Actions, action)
}

// HasPermission is the capability lookup gating every guarded operation:
// admins implicitly hold every permission, everyone else only what was
// explicitly granted.
func HasPermission(role string, grants []entity.Permission, resource, action string) bool {
	if role == RoleAdmin {
		return true
	}
	for _, g := range grants {
		if g.Resource == resource && g.Action == action {
			return true
		}
	}
	return false
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
