// Copyright 2026 Parasautohuolto.fi
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"

	"github.com/parasautohuolto/directory-service/internal/logging"
	"github.com/parasautohuolto/directory-service/internal/monitoring"
	"github.com/parasautohuolto/directory-service/internal/tracing"
	"github.com/parasautohuolto/directory-service/internal/types"
)

// ErrDenied is surfaced to callers as a generic denial; the reason is logged
// on the security channel but never elaborated over the wire.
var ErrDenied = errors.New("authorization denied")

type Authorizer struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAuthorizer(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	authorizer := new(Authorizer)

	authorizer.tracer = tracer
	authorizer.monitor = monitor
	authorizer.logger = logger

	return authorizer
}

// CheckAdmin enforces admin-only operations, e.g. invitation management.
func (a *Authorizer) CheckAdmin(ctx context.Context, principal *types.Principal, policy string) error {
	_, span := a.tracer.Start(ctx, "authorization.Authorizer.CheckAdmin")
	defer span.End()

	if principal == nil {
		a.logger.Security().AuthzFailure("", policy)
		return ErrDenied
	}

	if !principal.IsAdmin() {
		a.logger.Security().AuthzFailure(principal.ID, policy)
		return ErrDenied
	}

	return nil
}

// CheckNoteAccess enforces the author-or-admin rule on note mutations.
func (a *Authorizer) CheckNoteAccess(ctx context.Context, principal *types.Principal, authorID string) error {
	_, span := a.tracer.Start(ctx, "authorization.Authorizer.CheckNoteAccess")
	defer span.End()

	if principal == nil {
		a.logger.Security().AuthzFailure("", PolicyNotesMutate)
		return ErrDenied
	}

	if principal.ID == authorID || principal.IsAdmin() {
		return nil
	}

	a.logger.Security().AuthzFailure(principal.ID, PolicyNotesMutate)
	return ErrDenied
}
