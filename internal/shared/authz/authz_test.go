package authz

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type ownedResource struct {
	owner uuid.UUID
}

func (r ownedResource) OwnerID() uuid.UUID { return r.owner }

func TestAuthorize(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()

	tests := []struct {
		name     string
		identity Identity
		action   Action
		resource Resource
		allowed  bool
		reason   string
	}{
		{
			name:     "anonymous can view",
			identity: Anonymous,
			action:   ActionView,
			resource: ownedResource{owner: owner},
			allowed:  true,
		},
		{
			name:     "anonymous denied create",
			identity: Anonymous,
			action:   ActionCreate,
			resource: nil,
			allowed:  false,
			reason:   "Authentication credentials were not provided.",
		},
		{
			name:     "anonymous denied delete",
			identity: Anonymous,
			action:   ActionDelete,
			resource: ownedResource{owner: owner},
			allowed:  false,
			reason:   "Authentication credentials were not provided.",
		},
		{
			name:     "authenticated can create",
			identity: Identity{ID: other, Role: RoleViewer},
			action:   ActionCreate,
			resource: nil,
			allowed:  true,
		},
		{
			name:     "owner can edit regardless of role",
			identity: Identity{ID: owner, Role: RoleViewer},
			action:   ActionEdit,
			resource: ownedResource{owner: owner},
			allowed:  true,
		},
		{
			name:     "owner can delete regardless of role",
			identity: Identity{ID: owner, Role: RoleMember},
			action:   ActionDelete,
			resource: ownedResource{owner: owner},
			allowed:  true,
		},
		{
			name:     "member cannot edit another's resource",
			identity: Identity{ID: other, Role: RoleMember},
			action:   ActionEdit,
			resource: ownedResource{owner: owner},
			allowed:  false,
			reason:   "You do not have permission to perform this action.",
		},
		{
			name:     "editor can edit another's resource",
			identity: Identity{ID: other, Role: RoleEditor},
			action:   ActionEdit,
			resource: ownedResource{owner: owner},
			allowed:  true,
		},
		{
			name:     "editor cannot delete another's resource",
			identity: Identity{ID: other, Role: RoleEditor},
			action:   ActionDelete,
			resource: ownedResource{owner: owner},
			allowed:  false,
		},
		{
			name:     "librarian can delete another's resource",
			identity: Identity{ID: other, Role: RoleLibrarian},
			action:   ActionDelete,
			resource: ownedResource{owner: owner},
			allowed:  true,
		},
		{
			name:     "admin can delete ownerless catalog resource",
			identity: Identity{ID: other, Role: RoleAdmin},
			action:   ActionDelete,
			resource: ownedResource{owner: uuid.Nil},
			allowed:  true,
		},
		{
			name:     "member cannot delete ownerless catalog resource",
			identity: Identity{ID: other, Role: RoleMember},
			action:   ActionDelete,
			resource: ownedResource{owner: uuid.Nil},
			allowed:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := Authorize(tt.identity, tt.action, tt.resource)
			assert.Equal(t, tt.allowed, decision.Allowed)
			if tt.reason != "" {
				assert.Equal(t, tt.reason, decision.Reason)
			}
		})
	}
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleAdmin))
	assert.True(t, ValidRole(RoleMember))
	assert.False(t, ValidRole(Role("superuser")))
	assert.False(t, ValidRole(Role("")))
}
