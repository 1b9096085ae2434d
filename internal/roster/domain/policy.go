package domain

// Role hierarchy policy. Pure decision functions with no store access:
// the lifecycle services resolve the actor's role first and then consult
// these. Acting on one's own membership is rejected by the services
// before any of these are evaluated.

// CanCreateInvite reports whether an actor may invite a new member at
// the given role. ADMINs may invite up to their own level; only OWNERs
// may hand out ownership.
func CanCreateInvite(actor, invited Role) bool {
	if !actor.AtLeast(RoleAdmin) {
		return false
	}
	if invited == RoleOwner {
		return actor == RoleOwner
	}
	return true
}

// CanCancelInvite reports whether an actor may revoke a pending invite.
func CanCancelInvite(actor Role) bool {
	return actor.AtLeast(RoleAdmin)
}

// CanViewInvites reports whether an actor may list a company's invites.
func CanViewInvites(actor Role) bool {
	return actor.AtLeast(RoleAdmin)
}

// CanChangeRole reports whether an actor may move another member from
// the current role to the next one. Any transition touching OWNER, in
// either direction, is reserved to OWNERs.
func CanChangeRole(actor, current, next Role) bool {
	if !actor.AtLeast(RoleAdmin) {
		return false
	}
	if current == RoleOwner || next == RoleOwner {
		return actor == RoleOwner
	}
	return true
}

// CanRemoveMember reports whether an actor may remove a member holding
// the target role. Deposing an OWNER is reserved to OWNERs.
func CanRemoveMember(actor, target Role) bool {
	if !actor.AtLeast(RoleAdmin) {
		return false
	}
	if target == RoleOwner {
		return actor == RoleOwner
	}
	return true
}
