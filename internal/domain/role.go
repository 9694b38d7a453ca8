package domain

import "strings"

// RoleCategory is the local access-control role a member should hold based
// on their membership status in ChapterDesk.
type RoleCategory string

const (
	RoleActive   RoleCategory = "ACTIVE"
	RoleAlumni   RoleCategory = "ALUMNI"
	RoleProspect RoleCategory = "PROSPECT"
	RoleNone     RoleCategory = "NONE"
)

func (r RoleCategory) String() string { return string(r) }

// RoleForStatus maps a free-text membership status to a role category.
// Matching is case-insensitive and checked in a fixed priority order:
// alumni first, then active, then prospect/new-pledge. An unrecognized
// status yields RoleNone, meaning no role change.
func RoleForStatus(status string) RoleCategory {
	s := strings.ToLower(status)
	switch {
	case strings.Contains(s, "alum"):
		return RoleAlumni
	case strings.Contains(s, "active"):
		return RoleActive
	case strings.Contains(s, "pnm"), strings.Contains(s, "pledge"), strings.Contains(s, "prospect"):
		return RoleProspect
	}
	return RoleNone
}
