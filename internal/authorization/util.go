// Copyright 2026 Parasautohuolto.fi
// SPDX-License-Identifier: AGPL-3.0

package authorization

// Policy names, used for security audit logging only.
const (
	PolicyInvitationsCreate = "invitations_create"
	PolicyInvitationsList   = "invitations_list"
	PolicyIdentitiesList    = "identities_list"
	PolicyDirectoryRefresh  = "directory_refresh"
	PolicyNotesMutate       = "notes_mutate"
)
