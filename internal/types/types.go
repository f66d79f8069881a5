// Copyright 2026 Parasautohuolto.fi
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

const (
	NoteTypeGeneral        = "general"
	NoteTypeContactAttempt = "contact_attempt"
	NoteTypeIssue          = "issue"
	NoteTypeFollowUp       = "follow_up"
	NoteTypeClosed         = "closed"
)

// Identity is the application user record. Created on first resolved
// sign-in; the role is never re-derived afterwards.
type Identity struct {
	ID        string     `db:"id" json:"id"`
	Email     string     `db:"email" json:"email"`
	Role      string     `db:"role" json:"role"`
	InvitedBy *string    `db:"invited_by" json:"invited_by,omitempty"`
	InvitedAt *time.Time `db:"invited_at" json:"invited_at,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
}

// Invitation is a single-use, time-bounded token pre-assigning a role to an
// email address.
type Invitation struct {
	ID        string     `db:"id" json:"id"`
	Email     string     `db:"email" json:"email"`
	Role      string     `db:"role" json:"role"`
	Token     string     `db:"token" json:"token"`
	InvitedBy string     `db:"invited_by" json:"invited_by"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	ExpiresAt time.Time  `db:"expires_at" json:"expires_at"`
	UsedAt    *time.Time `db:"used_at" json:"used_at,omitempty"`
}

// Pending reports whether the invitation is still redeemable.
func (i *Invitation) Pending(now time.Time) bool {
	return i.UsedAt == nil && now.Before(i.ExpiresAt)
}

// Place is a read-only scored business-directory entry.
type Place struct {
	CID              string   `db:"cid" json:"cid"`
	Title            string   `db:"title" json:"title"`
	CategoryName     string   `db:"category_name" json:"category_name"`
	Address          string   `db:"address" json:"address"`
	City             string   `db:"city" json:"city"`
	PostalCode       string   `db:"postal_code" json:"postal_code"`
	Phone            string   `db:"phone" json:"phone"`
	Website          string   `db:"website" json:"website"`
	Email            string   `db:"email" json:"email"`
	TotalScore       float64  `db:"total_score" json:"total_score"`
	ReviewsCount     int      `db:"reviews_count" json:"reviews_count"`
	TrustScore       float64  `db:"score_trust" json:"score_trust"`
	PointsScore      float64  `db:"score_points" json:"score_points"`
	AmountsScore     float64  `db:"score_amounts" json:"score_amounts"`
	PerfScore        float64  `db:"score_perf" json:"score_perf"`
	Grade            string   `db:"grade" json:"grade"`
	Region           string   `db:"region" json:"region"`
	Rank             int      `db:"rank" json:"rank"`
	AISentiment      string   `db:"ai_sentiment" json:"ai_sentiment,omitempty"`
	AITopics         []string `db:"ai_topics" json:"ai_topics,omitempty"`
	AISummary        string   `db:"ai_summary" json:"ai_summary,omitempty"`
	AISentimentScore float64  `db:"ai_sentiment_score" json:"ai_sentiment_score,omitempty"`
}

// Note is a collaborative annotation on a Place.
type Note struct {
	ID        string    `db:"id" json:"id"`
	CID       string    `db:"cid" json:"cid"`
	UserID    string    `db:"user_id" json:"user_id"`
	UserEmail string    `db:"user_email" json:"user_email,omitempty"`
	Content   string    `db:"content" json:"content"`
	NoteType  string    `db:"note_type" json:"note_type"`
	IsPinned  bool      `db:"is_pinned" json:"is_pinned"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Stats are the aggregates computed over a filtered directory view.
type Stats struct {
	Count          int     `json:"count"`
	AvgTrustScore  float64 `json:"avg_trust_score"`
	AvgRating      float64 `json:"avg_rating"`
	CountWithEmail int     `json:"count_with_email"`
}

// Principal is the authenticated caller extracted from a session token.
type Principal struct {
	ID    string
	Email string
	Role  string
}

// IsAdmin reports whether the principal holds the admin role.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}
