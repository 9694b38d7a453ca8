package domain

import (
	"maps"
	"time"
)

// Stage represents where a member currently is in the onboarding flow.
type Stage string

const (
	StageAwaitingStart   Stage = "AWAITING_START"
	StageAwaitingEmail   Stage = "AWAITING_EMAIL"
	StageInviteSubmitted Stage = "INVITE_SUBMITTED"
	StagePendingApproval Stage = "PENDING_APPROVAL"
	StageAwaitingPhoto   Stage = "AWAITING_PHOTO"
	StageCompleted       Stage = "COMPLETED"
	StageRejected        Stage = "REJECTED"
	StageExpired         Stage = "EXPIRED"
)

func (s Stage) String() string { return string(s) }

func (s Stage) IsValid() bool {
	switch s {
	case StageAwaitingStart, StageAwaitingEmail, StageInviteSubmitted,
		StagePendingApproval, StageAwaitingPhoto, StageCompleted,
		StageRejected, StageExpired:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are possible from s.
func (s Stage) IsTerminal() bool {
	switch s {
	case StageCompleted, StageRejected, StageExpired:
		return true
	}
	return false
}

// Session tracks one member's progress through onboarding. At most one live
// session exists per member; it is created on first contact and removed on a
// terminal stage.
type Session struct {
	// MemberID is the chat-platform identifier of the prospective member.
	MemberID string
	// ChannelID is the private channel used to exchange messages with them.
	ChannelID string

	Stage Stage

	// Fields accumulates collected profile data. Each stage only adds the
	// fields it owns; existing keys are never overwritten.
	Fields map[string]string

	// AwaitingUpload is true only while the member has been asked to supply
	// a single photo and none has arrived yet.
	AwaitingUpload bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clone returns a deep copy of the session, including the Fields map.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	cp := *s
	cp.Fields = maps.Clone(s.Fields)
	return &cp
}

// Correlation links a contact email to the member and channel it belongs to.
// Created exactly once, when the member submits a valid email.
type Correlation struct {
	Email     string
	MemberID  string
	ChannelID string
}
