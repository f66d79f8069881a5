// Copyright 2026 Parasautohuolto.fi
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/parasautohuolto/directory-service/internal/types"
)

const identityColumns = "id, email, role, invited_by, invited_at, created_at"

func (s *Storage) GetIdentity(ctx context.Context, id string) (*types.Identity, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetIdentity")
	defer span.End()

	var i types.Identity
	err := s.db.Statement(ctx).
		Select("id", "email", "role", "invited_by", "invited_at", "created_at").
		From("identities").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&i.ID, &i.Email, &i.Role, &i.InvitedBy, &i.InvitedAt, &i.CreatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get identity: %w", err)
	}

	return &i, nil
}

func (s *Storage) GetIdentityByEmail(ctx context.Context, email string) (*types.Identity, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetIdentityByEmail")
	defer span.End()

	var i types.Identity
	err := s.db.Statement(ctx).
		Select("id", "email", "role", "invited_by", "invited_at", "created_at").
		From("identities").
		Where(sq.Eq{"email": email}).
		QueryRowContext(ctx).
		Scan(&i.ID, &i.Email, &i.Role, &i.InvitedBy, &i.InvitedAt, &i.CreatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get identity by email: %w", err)
	}

	return &i, nil
}

func (s *Storage) CountIdentities(ctx context.Context) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountIdentities")
	defer span.End()

	var count int64
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("identities").
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count identities: %w", err)
	}

	return count, nil
}

func (s *Storage) CreateIdentity(ctx context.Context, identity *types.Identity) (*types.Identity, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateIdentity")
	defer span.End()

	var i types.Identity
	err := s.db.Statement(ctx).
		Insert("identities").
		Columns("id", "email", "role", "invited_by", "invited_at").
		Values(identity.ID, identity.Email, identity.Role, identity.InvitedBy, identity.InvitedAt).
		Suffix("RETURNING " + identityColumns).
		QueryRowContext(ctx).
		Scan(&i.ID, &i.Email, &i.Role, &i.InvitedBy, &i.InvitedAt, &i.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert identity: %w", err)
	}

	return &i, nil
}

func (s *Storage) ListIdentities(ctx context.Context) ([]*types.Identity, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListIdentities")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "email", "role", "invited_by", "invited_at", "created_at").
		From("identities").
		OrderBy("created_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list identities: %w", err)
	}
	defer rows.Close()

	var identities []*types.Identity
	for rows.Next() {
		var i types.Identity
		if err := rows.Scan(&i.ID, &i.Email, &i.Role, &i.InvitedBy, &i.InvitedAt, &i.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan identity: %w", err)
		}
		identities = append(identities, &i)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return identities, nil
}
