package access

import (
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Timurc390/Boardly/internal/domain"
)

var deniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "boardly",
		Subsystem: "access",
		Name:      "denied_total",
		Help:      "Permission checks that denied an operation, by check.",
	},
	[]string{"check"},
)

// Ensure turns a predicate result into an error. The reason is shown to the caller.
func Ensure(allowed bool, check, reason string) error {
	if allowed {
		return nil
	}
	deniedTotal.WithLabelValues(check).Inc()
	return domain.NewPermissionDenied(reason)
}

func EnsureManageBoard(role domain.Role) error {
	return Ensure(CanManageBoard(role), "manage_board",
		"only the board owner or an admin can do this")
}

func EnsureCreateList(role domain.Role, board *domain.Board) error {
	return Ensure(CanCreateList(role, board), "create_list",
		"you do not have permission to create lists on this board")
}

func EnsureManageList(role domain.Role) error {
	return Ensure(CanManageList(role), "manage_list",
		"only the board owner or an admin can change lists")
}

func EnsureCreateCard(role domain.Role, board *domain.Board, list *domain.List) error {
	return Ensure(CanCreateCard(role, board, list), "create_card",
		"you do not have permission to add cards to this list")
}

func EnsureCardEdit(role domain.Role, board *domain.Board, card *domain.Card, userID uuid.UUID) error {
	return Ensure(CanEditCard(role, board, card, userID), "edit_card",
		"you do not have permission to edit this card")
}

func EnsureCardArchive(role domain.Role, board *domain.Board, card *domain.Card, userID uuid.UUID) error {
	return Ensure(CanArchiveCard(role, board, card, userID), "archive_card",
		"you do not have permission to archive this card")
}

func EnsureCardMove(role domain.Role, board *domain.Board, card *domain.Card, target *domain.List, userID uuid.UUID) error {
	return Ensure(CanMoveCard(role, board, card, target, userID), "move_card",
		"you do not have permission to move this card to that list")
}

func EnsureCardDelete(role domain.Role) error {
	return Ensure(CanDeleteCard(role), "delete_card",
		"only the board owner or an admin can delete cards")
}

func EnsureManageCardMembers(role domain.Role) error {
	return Ensure(CanManageCardMembers(role), "manage_card_members",
		"only the board owner or an admin can assign card members")
}

// EnsureJoinCard gates both joining and leaving a card.
func EnsureJoinCard(role domain.Role, board *domain.Board) error {
	return Ensure(CanJoinCard(role, board), "join_card",
		"you do not have permission to join cards on this board")
}

func EnsureComment(role domain.Role) error {
	return Ensure(CanComment(role), "comment",
		"only board members can comment")
}

func EnsureEditComment(role domain.Role, comment *domain.Comment, userID uuid.UUID) error {
	return Ensure(CanEditComment(role, comment, userID), "edit_comment",
		"only the author or an admin can edit this comment")
}

func EnsureDeleteComment(role domain.Role) error {
	return Ensure(CanDeleteComment(role), "delete_comment",
		"only the board owner or an admin can delete comments")
}

func EnsureAddMember(role domain.Role) error {
	return Ensure(CanAddMember(role), "add_member",
		"only the board owner or an admin can add members")
}

// EnsureChangeMemberRole denies any change to the owner's role, whoever asks.
func EnsureChangeMemberRole(role domain.Role, board *domain.Board, targetID uuid.UUID) error {
	if board.IsOwner(targetID) {
		return Ensure(false, "change_member_role", "the owner's role cannot be changed")
	}
	return Ensure(CanChangeMemberRole(role, board, targetID), "change_member_role",
		"only the board owner or an admin can change roles")
}

// EnsureRemoveMember denies removing the owner, including the owner leaving.
// Other members may remove themselves; removing someone else needs admin.
func EnsureRemoveMember(role domain.Role, board *domain.Board, actorID, targetID uuid.UUID) error {
	if board.IsOwner(targetID) {
		if actorID == targetID {
			return Ensure(false, "remove_member", "the owner cannot leave the board; transfer ownership first")
		}
		return Ensure(false, "remove_member", "the owner cannot be removed from the board")
	}
	return Ensure(CanRemoveMember(role, board, actorID, targetID), "remove_member",
		"only the board owner or an admin can remove other members")
}
