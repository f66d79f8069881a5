// Copyright 2026 Parasautohuolto.fi
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/parasautohuolto/directory-service/internal/types"
)

const invitationColumns = "id, email, role, token, invited_by, created_at, expires_at, used_at"

func (s *Storage) CreateInvitation(ctx context.Context, invitation *types.Invitation) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateInvitation")
	defer span.End()

	var inv types.Invitation
	err := s.db.Statement(ctx).
		Insert("invitations").
		Columns("id", "email", "role", "token", "invited_by", "expires_at").
		Values(invitation.ID, invitation.Email, invitation.Role, invitation.Token, invitation.InvitedBy, invitation.ExpiresAt).
		Suffix("RETURNING " + invitationColumns).
		QueryRowContext(ctx).
		Scan(&inv.ID, &inv.Email, &inv.Role, &inv.Token, &inv.InvitedBy, &inv.CreatedAt, &inv.ExpiresAt, &inv.UsedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert invitation: %w", err)
	}

	return &inv, nil
}

func (s *Storage) GetInvitationByToken(ctx context.Context, token string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInvitationByToken")
	defer span.End()

	var inv types.Invitation
	err := s.db.Statement(ctx).
		Select("id", "email", "role", "token", "invited_by", "created_at", "expires_at", "used_at").
		From("invitations").
		Where(sq.Eq{"token": token}).
		QueryRowContext(ctx).
		Scan(&inv.ID, &inv.Email, &inv.Role, &inv.Token, &inv.InvitedBy, &inv.CreatedAt, &inv.ExpiresAt, &inv.UsedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invitation by token: %w", err)
	}

	return &inv, nil
}

// GetPendingInvitationByEmail returns the unconsumed, unexpired invitation for
// an email address, newest first when several are pending.
func (s *Storage) GetPendingInvitationByEmail(ctx context.Context, email string, now time.Time) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPendingInvitationByEmail")
	defer span.End()

	var inv types.Invitation
	err := s.db.Statement(ctx).
		Select("id", "email", "role", "token", "invited_by", "created_at", "expires_at", "used_at").
		From("invitations").
		Where(sq.Eq{"email": email, "used_at": nil}).
		Where(sq.Gt{"expires_at": now}).
		OrderBy("created_at DESC").
		Limit(1).
		QueryRowContext(ctx).
		Scan(&inv.ID, &inv.Email, &inv.Role, &inv.Token, &inv.InvitedBy, &inv.CreatedAt, &inv.ExpiresAt, &inv.UsedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get pending invitation: %w", err)
	}

	return &inv, nil
}

func (s *Storage) ListInvitations(ctx context.Context) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListInvitations")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "email", "role", "token", "invited_by", "created_at", "expires_at", "used_at").
		From("invitations").
		OrderBy("created_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	defer rows.Close()

	var invitations []*types.Invitation
	for rows.Next() {
		var inv types.Invitation
		if err := rows.Scan(&inv.ID, &inv.Email, &inv.Role, &inv.Token, &inv.InvitedBy, &inv.CreatedAt, &inv.ExpiresAt, &inv.UsedAt); err != nil {
			return nil, fmt.Errorf("failed to scan invitation: %w", err)
		}
		invitations = append(invitations, &inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return invitations, nil
}

// ClaimInvitation marks an invitation consumed. The update is conditional on
// used_at still being null so that of two concurrent redemptions exactly one
// succeeds; the loser gets ErrInvitationClaimed.
func (s *Storage) ClaimInvitation(ctx context.Context, id string, usedAt time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.ClaimInvitation")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("invitations").
		Set("used_at", usedAt).
		Where(sq.Eq{"id": id, "used_at": nil}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to claim invitation: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrInvitationClaimed
	}

	return nil
}
