package domain

import (
	"strings"
	"time"
)

// Decision is an operator's verdict on a pending application.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

func (d Decision) String() string { return string(d) }

func (d Decision) IsValid() bool {
	return d == DecisionApprove || d == DecisionReject
}

// Application is one awaiting-approval record in ChapterDesk. It is a
// read-only snapshot owned by the external service and fetched fresh on
// every poll.
type Application struct {
	// Roll is the external service's stable identifier for the application.
	Roll        string
	FirstName   string
	LastName    string
	Email       string
	Status      string
	SubmittedAt time.Time
	Notes       string
}

// FullName joins the name parts, skipping empty ones.
func (a Application) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// PendingSet is the decoded pending-approval payload. ChapterDesk sometimes
// returns only a queue length instead of item detail; in that case HasDetail
// is false and Count is the only usable information.
type PendingSet struct {
	Items     []Application
	Count     int
	HasDetail bool
}

// Invitation is ChapterDesk's record of a submitted invitation. Its fields
// are surfaced verbatim in operator notifications when present.
type Invitation struct {
	ID           string
	EmailAddress string
	Status       string
	CreatedAt    string
	UpdatedAt    string
}

// MemberRecord is the authoritative member profile held by ChapterDesk for
// an approved application.
type MemberRecord struct {
	Roll        string
	FirstName   string
	LastName    string
	Status      string
	FamilyLine  string
	Majors      []string
	Hometown    string
	OnCouncil   bool
	SocialLinks map[string]string
	CreatedAt   time.Time
}

// FullName joins the name parts, skipping empty ones.
func (r MemberRecord) FullName() string {
	return strings.TrimSpace(r.FirstName + " " + r.LastName)
}

// AdmissionRecord is the final record published when a member completes
// onboarding: the approved profile fields plus the submitted photo.
type AdmissionRecord struct {
	MemberID string
	Roll     string
	Fields   map[string]string
	PhotoURL string
}
