package authz

import (
	"github.com/google/uuid"
)

// Action is a named permission checked against a role's grants.
type Action string

const (
	ActionView   Action = "can_view"
	ActionCreate Action = "can_create"
	ActionEdit   Action = "can_edit"
	ActionDelete Action = "can_delete"
)

// Role is the identity's role as carried in the access token.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleEditor    Role = "editor"
	RoleLibrarian Role = "librarian"
	RoleMember    Role = "member"
	RoleViewer    Role = "viewer"
)

// rolePermissions is the static role -> permission grant table.
// Absence of a grant is itself a deny, never an error.
var rolePermissions = map[Role]map[Action]bool{
	RoleAdmin: {
		ActionView: true, ActionCreate: true, ActionEdit: true, ActionDelete: true,
	},
	RoleEditor: {
		ActionView: true, ActionCreate: true, ActionEdit: true,
	},
	RoleLibrarian: {
		ActionView: true, ActionCreate: true, ActionEdit: true, ActionDelete: true,
	},
	RoleMember: {
		ActionView: true, ActionCreate: true,
	},
	RoleViewer: {
		ActionView: true,
	},
}

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	_, ok := rolePermissions[r]
	return ok
}

// Identity is the caller of the API, anonymous or authenticated.
type Identity struct {
	ID       uuid.UUID
	Username string
	Role     Role
}

// Anonymous is the unauthenticated identity.
var Anonymous = Identity{}

func (i Identity) Authenticated() bool {
	return i.ID != uuid.Nil
}

// Resource is any object with an owning identity. A nil Resource means
// the action has no object context (create).
type Resource interface {
	OwnerID() uuid.UUID
}

// Decision is the outcome of an authorization check. Deny carries a
// reason; it is a value, not an error.
type Decision struct {
	Allowed bool
	Reason  string
}

func Allow() Decision {
	return Decision{Allowed: true}
}

func Deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// Authorize decides whether identity may perform action on resource.
//
// Rules:
//   - read-only actions are open to everyone, anonymous included
//   - anonymous identities are denied every write
//   - create (no object context) is open to any authenticated identity
//   - edit/delete require ownership or an explicit role grant
func Authorize(identity Identity, action Action, resource Resource) Decision {
	if action == ActionView {
		return Allow()
	}

	if !identity.Authenticated() {
		return Deny("Authentication credentials were not provided.")
	}

	if resource == nil {
		if action == ActionCreate {
			return Allow()
		}
		return Deny("You do not have permission to perform this action.")
	}

	if resource.OwnerID() == identity.ID {
		return Allow()
	}

	if rolePermissions[identity.Role][action] {
		return Allow()
	}

	return Deny("You do not have permission to perform this action.")
}
