package access

import (
	"github.com/google/uuid"

	"github.com/Timurc390/Boardly/internal/domain"
)

// The predicates below are pure: they never touch storage and never fail.
// Owner satisfies every admin check through Role.IsAdmin.

// CanViewBoard reports whether role grants any access to the board.
// Favorite toggling uses the same rule.
func CanViewBoard(role domain.Role) bool {
	return role.IsMember()
}

// CanManageBoard covers updating, archiving and deleting a board, editing its
// permission flags and labels, and regenerating its invite token.
func CanManageBoard(role domain.Role) bool {
	return role.IsAdmin()
}

// CanCreateList allows admins, and developers when the board lets them.
func CanCreateList(role domain.Role, board *domain.Board) bool {
	if role.IsAdmin() {
		return true
	}
	return role == domain.RoleDeveloper && board.Permissions.DevCanCreateLists
}

// CanManageList covers updating, archiving, copying and deleting a list.
func CanManageList(role domain.Role) bool {
	return role.IsAdmin()
}

// CanCreateCard checks both the board flag and the list override for developers.
func CanCreateCard(role domain.Role, board *domain.Board, list *domain.List) bool {
	if role.IsAdmin() {
		return true
	}
	return role == domain.RoleDeveloper &&
		board.Permissions.DevCanCreateCards &&
		list.AllowDevAddCards
}

// CanViewCard allows board members, and anyone when the card is public.
func CanViewCard(role domain.Role, card *domain.Card) bool {
	return role.IsMember() || card.IsPublic
}

// CanEditCard allows developers to edit only cards they are assigned to.
// Checklists, checklist items and attachments reuse this rule.
func CanEditCard(role domain.Role, board *domain.Board, card *domain.Card, userID uuid.UUID) bool {
	if role.IsAdmin() {
		return true
	}
	return role == domain.RoleDeveloper &&
		board.Permissions.DevCanEditAssignedCards &&
		card.IsAssigned(userID)
}

// CanArchiveCard mirrors CanEditCard with the archive flag.
func CanArchiveCard(role domain.Role, board *domain.Board, card *domain.Card, userID uuid.UUID) bool {
	if role.IsAdmin() {
		return true
	}
	return role == domain.RoleDeveloper &&
		board.Permissions.DevCanArchiveAssignedCards &&
		card.IsAssigned(userID)
}

// CanMoveCard requires, for developers, edit and create rights on the board,
// assignment to the card and a target list that accepts developer cards.
func CanMoveCard(role domain.Role, board *domain.Board, card *domain.Card, target *domain.List, userID uuid.UUID) bool {
	if role.IsAdmin() {
		return true
	}
	return role == domain.RoleDeveloper &&
		board.Permissions.DevCanEditAssignedCards &&
		board.Permissions.DevCanCreateCards &&
		card.IsAssigned(userID) &&
		target.AllowDevAddCards
}

// CanDeleteCard is admin-only; developers archive instead.
func CanDeleteCard(role domain.Role) bool {
	return role.IsAdmin()
}

// CanManageCardMembers covers assigning and unassigning other users.
func CanManageCardMembers(role domain.Role) bool {
	return role.IsAdmin()
}

// CanJoinCard covers self-assignment and self-unassignment.
func CanJoinCard(role domain.Role, board *domain.Board) bool {
	if role.IsAdmin() {
		return true
	}
	return role == domain.RoleDeveloper && board.Permissions.DevCanJoinCard
}

// CanComment allows every board member, viewers included.
func CanComment(role domain.Role) bool {
	return role.IsMember()
}

// CanEditComment allows the author and board admins.
func CanEditComment(role domain.Role, comment *domain.Comment, userID uuid.UUID) bool {
	if role.IsAdmin() {
		return true
	}
	return role.IsMember() && userID != uuid.Nil && comment.AuthorID == userID
}

// CanDeleteComment is admin-only. Authors may edit but not delete.
func CanDeleteComment(role domain.Role) bool {
	return role.IsAdmin()
}

// CanAddMember covers inviting a user directly.
func CanAddMember(role domain.Role) bool {
	return role.IsAdmin()
}

// CanChangeMemberRole never allows targeting the owner.
func CanChangeMemberRole(role domain.Role, board *domain.Board, targetID uuid.UUID) bool {
	return role.IsAdmin() && !board.IsOwner(targetID)
}

// CanRemoveMember never allows removing the owner. Any other member may
// remove themselves.
func CanRemoveMember(role domain.Role, board *domain.Board, actorID, targetID uuid.UUID) bool {
	if board.IsOwner(targetID) {
		return false
	}
	if role.IsAdmin() {
		return true
	}
	return role.IsMember() && actorID != uuid.Nil && actorID == targetID
}
