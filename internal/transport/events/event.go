// Package events is the boundary between a chat adapter and the onboarding
// service: typed inbound events in, routed service calls and error replies
// out.
package events

import "github.com/greekrow/chaptergate-backend/internal/domain"

// Join fires when a member enters the community and gets their channel.
type Join struct {
	MemberID  string
	ChannelID string
}

// StartRequest fires when someone presses the start prompt.
// RequesterID is who pressed; MemberID is whose prompt it was.
type StartRequest struct {
	MemberID    string
	RequesterID string
	ChannelID   string
}

// EmailSubmitted fires when someone replies to the email prompt.
type EmailSubmitted struct {
	MemberID    string
	RequesterID string
	ChannelID   string
	Email       string
}

// DecisionSubmitted fires when an operator acts on a review notification.
type DecisionSubmitted struct {
	OperatorID  string
	ChannelID   string
	ActionToken string
	Decision    domain.Decision
}

// AttachmentReceived fires when a message carrying attachments arrives.
type AttachmentReceived struct {
	MemberID       string
	ChannelID      string
	AttachmentURLs []string
}
