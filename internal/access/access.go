// Package access is the single place that decides who may do what.
//
// Every function here is a pure decision over the facts passed in: the
// actor's id and role, and the target aggregate's ownership fields. No other
// package branches on roles directly; controllers load the facts, ask this
// package, and surface the reason on a deny.
package access

// Role is the actor's system-wide role. Treated as an open enumeration:
// unknown values fall through every switch and end up denied.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleLeader Role = "leader"
	RoleMember Role = "member"
)

// ValidRole reports whether r is one of the roles this deployment assigns.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleLeader, RoleMember:
		return true
	}
	return false
}

// Actor is the authenticated user performing an operation.
type Actor struct {
	ID   uint
	Role Role
}

// TeamFacts are the ownership facts of the team an operation targets.
// MemberIDs holds the roster; the leader is tracked separately and is
// conceptually also "in" the team.
type TeamFacts struct {
	TeamID    uint
	LeaderID  uint
	MemberIDs []uint
}

// InTeam reports whether id is the leader or on the roster.
func (t TeamFacts) InTeam(id uint) bool {
	if id == t.LeaderID {
		return true
	}
	return t.IsMember(id)
}

// IsMember reports whether id is on the roster (leader excluded).
func (t TeamFacts) IsMember(id uint) bool {
	for _, m := range t.MemberIDs {
		if m == id {
			return true
		}
	}
	return false
}

// Decision is the outcome of an authorization check. Reason is set on deny
// and is safe to surface to the caller.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Reason: reason}
}

// CanCreateTeam: admins and leaders may create teams.
func CanCreateTeam(actor Actor) Decision {
	switch actor.Role {
	case RoleAdmin, RoleLeader:
		return allow()
	}
	return deny("only admins and leaders can create teams")
}

// CanViewTeam: admins see every team; others only teams they belong to.
func CanViewTeam(actor Actor, team TeamFacts) Decision {
	if actor.Role == RoleAdmin {
		return allow()
	}
	if team.InTeam(actor.ID) {
		return allow()
	}
	return deny("you are not a member of this team")
}

// CanManageTeam covers team update and delete: admin or the team's leader.
func CanManageTeam(actor Actor, team TeamFacts) Decision {
	if actor.Role == RoleAdmin {
		return allow()
	}
	if actor.ID == team.LeaderID {
		return allow()
	}
	return deny("only the team leader or an admin can manage this team")
}

// CanManageMembers covers adding and removing roster entries.
func CanManageMembers(actor Actor, team TeamFacts) Decision {
	if actor.Role == RoleAdmin {
		return allow()
	}
	if actor.ID == team.LeaderID {
		return allow()
	}
	return deny("only the team leader or an admin can manage team members")
}

// CanRemoveMember additionally refuses removal of the leader, for everyone
// including admins. The leader leaves a team only by deleting it.
func CanRemoveMember(actor Actor, team TeamFacts, targetID uint) Decision {
	if d := CanManageMembers(actor, team); !d.Allowed {
		return d
	}
	if targetID == team.LeaderID {
		return deny("the team leader cannot be removed from the team")
	}
	return allow()
}

// CanCreateReport: only the leader publishes the week's report. Members can
// read and contribute but not create; the asymmetry is deliberate.
func CanCreateReport(actor Actor, team TeamFacts) Decision {
	if actor.Role == RoleAdmin {
		return allow()
	}
	if actor.ID == team.LeaderID {
		return allow()
	}
	return deny("only the team leader or an admin can create weekly reports")
}

// CanViewReport: admin, or anyone in the report's team.
func CanViewReport(actor Actor, team TeamFacts) Decision {
	if actor.Role == RoleAdmin {
		return allow()
	}
	if team.InTeam(actor.ID) {
		return allow()
	}
	return deny("you are not a member of this report's team")
}

// CanModifyReport covers report update and delete: admin, the team's leader,
// or the report's author.
func CanModifyReport(actor Actor, team TeamFacts, submittedByID uint) Decision {
	if actor.Role == RoleAdmin {
		return allow()
	}
	if actor.ID == team.LeaderID {
		return allow()
	}
	if actor.ID == submittedByID {
		return allow()
	}
	return deny("only the report author, the team leader, or an admin can modify this report")
}

// CanContribute decides contribution creation. Contributing for yourself
// requires team membership; contributing on behalf of someone else requires
// leader/admin authority and the target must be on the roster.
func CanContribute(actor Actor, team TeamFacts, targetUserID uint) Decision {
	if targetUserID == actor.ID {
		if team.InTeam(actor.ID) {
			return allow()
		}
		return deny("you are not a member of this report's team")
	}
	if actor.Role != RoleAdmin && actor.ID != team.LeaderID {
		return deny("only the team leader or an admin can add contributions for another user")
	}
	if !team.IsMember(targetUserID) {
		return deny("the target user is not a member of this team")
	}
	return allow()
}

// CanModifyContribution covers contribution update and delete: admin, the
// team's leader, or the contribution's owner.
func CanModifyContribution(actor Actor, team TeamFacts, ownerID uint) Decision {
	if actor.Role == RoleAdmin {
		return allow()
	}
	if actor.ID == team.LeaderID {
		return allow()
	}
	if actor.ID == ownerID {
		return allow()
	}
	return deny("only the contribution owner, the team leader, or an admin can modify this contribution")
}

// CanAdministrate gates the admin-only surface (user listing).
func CanAdministrate(actor Actor) Decision {
	if actor.Role == RoleAdmin {
		return allow()
	}
	return deny("administrator privileges required")
}
