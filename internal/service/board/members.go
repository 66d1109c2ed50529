package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Timurc390/Boardly/internal/access"
	"github.com/Timurc390/Boardly/internal/domain"
	"github.com/Timurc390/Boardly/pkg/ctxutil"
)

// ListMembers returns the owner and every member of a board.
func (s *Service) ListMembers(ctx context.Context, boardID uuid.UUID) ([]domain.Member, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	board, _, err := s.load(ctx, userID, boardID)
	if err != nil {
		return nil, err
	}

	members, err := s.memberships.ListMembers(ctx, board.ID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return members, nil
}

// AddMember adds a user, found by id or email, to a board.
func (s *Service) AddMember(ctx context.Context, input AddMemberInput) (*domain.Membership, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	board, role, err := s.load(ctx, userID, input.BoardID)
	if err != nil {
		return nil, err
	}
	if err := access.EnsureAddMember(role); err != nil {
		return nil, err
	}

	var target *domain.User
	if input.UserID != uuid.Nil {
		target, err = s.users.GetByID(ctx, input.UserID)
	} else {
		target, err = s.users.GetByEmail(ctx, domain.NormalizeIdentity(input.Email))
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if board.IsOwner(target.ID) {
		return nil, fmt.Errorf("user %s is the owner: %w", target.ID, domain.ErrAlreadyExists)
	}

	newRole := input.Role
	if newRole == "" {
		newRole = domain.RoleDeveloper
	}

	var membership *domain.Membership
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		membership, err = s.memberships.CreateMembership(txCtx, &domain.Membership{
			BoardID: board.ID,
			UserID:  target.ID,
			Role:    newRole,
		})
		if err != nil {
			return fmt.Errorf("add member: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	meta := boardMeta(board)
	meta["member_id"] = target.ID.String()
	meta["member_username"] = target.Username
	meta["role"] = newRole.String()
	s.logActivity(ctx, userID, domain.ActionAddBoardMember, domain.EntityTypeMembership, membership.ID, meta)

	s.log.InfoContext(ctx, "board member added",
		slog.String("user_id", userID.String()),
		slog.String("board_id", board.ID.String()),
		slog.String("member_id", target.ID.String()),
	)
	return membership, nil
}

// ChangeMemberRole assigns a new stored role to a member. The owner's role is
// computed and can never be changed.
func (s *Service) ChangeMemberRole(ctx context.Context, input ChangeMemberRoleInput) (*domain.Membership, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	board, role, err := s.load(ctx, userID, input.BoardID)
	if err != nil {
		return nil, err
	}
	if err := access.EnsureChangeMemberRole(role, board, input.UserID); err != nil {
		return nil, err
	}

	m, err := s.memberships.GetMembership(ctx, board.ID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("get membership: %w", err)
	}
	oldRole := m.Role
	m.Role = input.Role

	var updated *domain.Membership
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = s.memberships.UpdateMembership(txCtx, m)
		if err != nil {
			return fmt.Errorf("change member role: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	meta := boardMeta(board)
	meta["member_id"] = input.UserID.String()
	meta["old_role"] = oldRole.String()
	meta["role"] = updated.Role.String()
	s.logActivity(ctx, userID, domain.ActionChangeMemberRole, domain.EntityTypeMembership, updated.ID, meta)

	s.log.InfoContext(ctx, "board member role changed",
		slog.String("user_id", userID.String()),
		slog.String("board_id", board.ID.String()),
		slog.String("member_id", input.UserID.String()),
		slog.String("role", updated.Role.String()),
	)
	return updated, nil
}

// RemoveMember removes a member from a board. Members may remove themselves;
// the owner can neither leave nor be removed.
func (s *Service) RemoveMember(ctx context.Context, boardID, targetID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if targetID == uuid.Nil {
		return domain.NewValidationError("user_id", "required")
	}

	board, role, err := s.load(ctx, userID, boardID)
	if err != nil {
		return err
	}
	if err := access.EnsureRemoveMember(role, board, userID, targetID); err != nil {
		return err
	}

	if _, err := s.memberships.GetMembership(ctx, board.ID, targetID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("member %s: %w", targetID, domain.ErrNotFound)
		}
		return fmt.Errorf("get membership: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.memberships.DeleteMembership(txCtx, board.ID, targetID); err != nil {
			return fmt.Errorf("remove member: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	meta := boardMeta(board)
	action := domain.ActionLeaveBoard
	if targetID != userID {
		action = domain.ActionRemoveBoardMember
		meta["member_id"] = targetID.String()
	}
	s.logActivity(ctx, userID, action, domain.EntityTypeBoard, board.ID, meta)

	s.log.InfoContext(ctx, "board member removed",
		slog.String("user_id", userID.String()),
		slog.String("board_id", board.ID.String()),
		slog.String("member_id", targetID.String()),
	)
	return nil
}
