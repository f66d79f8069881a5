// Copyright 2026 Parasautohuolto.fi
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"
)

type MailerInterface interface {
	Send(ctx context.Context, to, subject, body string) error
}
