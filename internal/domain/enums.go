package domain

// Role is a user's effective authority on a board.
// Owner and None are computed and never stored on a Membership row.
type Role string

const (
	RoleOwner     Role = "owner"
	RoleAdmin     Role = "admin"
	RoleDeveloper Role = "developer"
	RoleViewer    Role = "viewer"
	RoleNone      Role = "none"
)

func (r Role) String() string { return string(r) }

// IsValid reports whether r is one of the known roles, including computed ones.
func (r Role) IsValid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleDeveloper, RoleViewer, RoleNone:
		return true
	}
	return false
}

// IsAssignable reports whether r may be stored on a Membership.
func (r Role) IsAssignable() bool {
	switch r {
	case RoleAdmin, RoleDeveloper, RoleViewer:
		return true
	}
	return false
}

// IsAdmin reports whether r carries unconditional board rights (owner or admin).
func (r Role) IsAdmin() bool {
	return r == RoleOwner || r == RoleAdmin
}

// IsMember reports whether r grants any access to the board.
func (r Role) IsMember() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleDeveloper, RoleViewer:
		return true
	}
	return false
}

// ActivityRetention is the per-user activity log retention window.
type ActivityRetention string

const (
	Retention7Days   ActivityRetention = "7d"
	Retention30Days  ActivityRetention = "30d"
	Retention365Days ActivityRetention = "365d"

	DefaultActivityRetention = Retention30Days
)

func (r ActivityRetention) String() string { return string(r) }

func (r ActivityRetention) IsValid() bool {
	switch r {
	case Retention7Days, Retention30Days, Retention365Days:
		return true
	}
	return false
}

// Days returns the retention window in days. Unknown values fall back to 30.
func (r ActivityRetention) Days() int {
	switch r {
	case Retention7Days:
		return 7
	case Retention365Days:
		return 365
	default:
		return 30
	}
}

// EntityType identifies the kind of entity an activity log entry refers to.
type EntityType string

const (
	EntityTypeBoard         EntityType = "board"
	EntityTypeList          EntityType = "list"
	EntityTypeCard          EntityType = "card"
	EntityTypeLabel         EntityType = "label"
	EntityTypeChecklist     EntityType = "checklist"
	EntityTypeChecklistItem EntityType = "checklist_item"
	EntityTypeComment       EntityType = "comment"
	EntityTypeAttachment    EntityType = "attachment"
	EntityTypeMembership    EntityType = "membership"
	EntityTypeUser          EntityType = "user"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeBoard, EntityTypeList, EntityTypeCard, EntityTypeLabel,
		EntityTypeChecklist, EntityTypeChecklistItem, EntityTypeComment,
		EntityTypeAttachment, EntityTypeMembership, EntityTypeUser:
		return true
	}
	return false
}

// Action names the user action recorded in the activity log.
type Action string

const (
	ActionCreateBoard            Action = "create_board"
	ActionUpdateBoard            Action = "update_board"
	ActionRenameBoard            Action = "rename_board"
	ActionArchiveBoard           Action = "archive_board"
	ActionUnarchiveBoard         Action = "unarchive_board"
	ActionDeleteBoard            Action = "delete_board"
	ActionUpdateBoardPermissions Action = "update_board_permissions"
	ActionRegenerateInvite       Action = "regenerate_invite"
	ActionJoinBoard              Action = "join_board"
	ActionFavoriteBoard          Action = "favorite_board"
	ActionUnfavoriteBoard        Action = "unfavorite_board"
	ActionAddBoardMember         Action = "add_board_member"
	ActionChangeMemberRole       Action = "change_member_role"
	ActionRemoveBoardMember      Action = "remove_board_member"
	ActionLeaveBoard             Action = "leave_board"

	ActionCreateList    Action = "create_list"
	ActionUpdateList    Action = "update_list"
	ActionRenameList    Action = "rename_list"
	ActionMoveList      Action = "move_list"
	ActionArchiveList   Action = "archive_list"
	ActionUnarchiveList Action = "unarchive_list"
	ActionDeleteList    Action = "delete_list"
	ActionCopyList      Action = "copy_list"

	ActionCreateCard            Action = "create_card"
	ActionUpdateCard            Action = "update_card"
	ActionUpdateCardDescription Action = "update_card_description"
	ActionUpdateCardDueDate     Action = "update_card_due_date"
	ActionCompleteCard          Action = "complete_card"
	ActionUncompleteCard        Action = "uncomplete_card"
	ActionArchiveCard           Action = "archive_card"
	ActionUnarchiveCard         Action = "unarchive_card"
	ActionMoveCard              Action = "move_card"
	ActionCopyCard              Action = "copy_card"
	ActionDeleteCard            Action = "delete_card"
	ActionTogglePublic          Action = "toggle_public"
	ActionJoinCard              Action = "join_card"
	ActionLeaveCard             Action = "leave_card"
	ActionAddCardMember         Action = "add_card_member"
	ActionRemoveCardMember      Action = "remove_card_member"
	ActionUpdateCardLabels      Action = "update_card_labels"

	ActionCreateLabel Action = "create_label"
	ActionUpdateLabel Action = "update_label"
	ActionDeleteLabel Action = "delete_label"

	ActionCreateChecklist     Action = "create_checklist"
	ActionDeleteChecklist     Action = "delete_checklist"
	ActionAddChecklistItem    Action = "add_checklist_item"
	ActionToggleChecklistItem Action = "toggle_checklist_item"
	ActionUpdateChecklistItem Action = "update_checklist_item"
	ActionDeleteChecklistItem Action = "delete_checklist_item"

	ActionAddComment    Action = "add_comment"
	ActionUpdateComment Action = "update_comment"
	ActionDeleteComment Action = "delete_comment"

	ActionAddAttachment    Action = "add_attachment"
	ActionDeleteAttachment Action = "delete_attachment"

	ActionUpdateProfile Action = "update_profile"
)

func (a Action) String() string { return string(a) }
