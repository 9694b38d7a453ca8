package chapterdesk

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/greekrow/chaptergate-backend/internal/domain"
)

// flexString decodes a JSON value that may arrive as a string or a number.
// ChapterDesk is inconsistent about roll numbers and record ids.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("neither string nor number: %w", err)
	}
	*f = flexString(n.String())
	return nil
}

// apiApplication mirrors one pending application as ChapterDesk returns it.
type apiApplication struct {
	Roll        flexString `json:"roll"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Email       string     `json:"email"`
	Status      string     `json:"status"`
	SubmittedAt string     `json:"submittedAt"`
	Notes       string     `json:"notes"`
}

// apiPendingEnvelope covers the wrapped response shapes.
type apiPendingEnvelope struct {
	Data []apiApplication `json:"data"`
	List []apiApplication `json:"list"`
}

// apiInvitation mirrors ChapterDesk's invitation record.
type apiInvitation struct {
	ID           flexString `json:"id"`
	EmailAddress string     `json:"emailAddress"`
	Status       string     `json:"status"`
	CreatedAt    string     `json:"createdAt"`
	UpdatedAt    string     `json:"updatedAt"`
}

// apiMemberRecord mirrors one approved member profile.
type apiMemberRecord struct {
	Roll        flexString        `json:"roll"`
	FirstName   string            `json:"firstName"`
	LastName    string            `json:"lastName"`
	Status      string            `json:"status"`
	FamilyLine  string            `json:"familyLine"`
	Majors      []string          `json:"majors"`
	Hometown    string            `json:"hometown"`
	OnCouncil   bool              `json:"onCouncil"`
	SocialLinks map[string]string `json:"socialLinks"`
	CreatedAt   string            `json:"createdAt"`
}

// decodePending accepts the three pending-payload shapes: a bare array, an
// object wrapping the array under "data" or "list", or a bare count when
// item detail is unavailable.
func decodePending(body []byte) (domain.PendingSet, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return domain.PendingSet{}, fmt.Errorf("empty payload")
	}

	switch trimmed[0] {
	case '[':
		var items []apiApplication
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return domain.PendingSet{}, fmt.Errorf("decode array: %w", err)
		}
		return mapPendingItems(items), nil
	case '{':
		var env apiPendingEnvelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return domain.PendingSet{}, fmt.Errorf("decode object: %w", err)
		}
		if env.Data != nil {
			return mapPendingItems(env.Data), nil
		}
		if env.List != nil {
			return mapPendingItems(env.List), nil
		}
		return domain.PendingSet{}, fmt.Errorf("object has neither data nor list")
	default:
		count, err := strconv.Atoi(string(trimmed))
		if err != nil {
			return domain.PendingSet{}, fmt.Errorf("decode count: %w", err)
		}
		return domain.PendingSet{Count: count, HasDetail: false}, nil
	}
}

func mapPendingItems(items []apiApplication) domain.PendingSet {
	set := domain.PendingSet{
		Items:     make([]domain.Application, 0, len(items)),
		Count:     len(items),
		HasDetail: true,
	}
	for _, it := range items {
		set.Items = append(set.Items, domain.Application{
			Roll:        string(it.Roll),
			FirstName:   it.FirstName,
			LastName:    it.LastName,
			Email:       it.Email,
			Status:      it.Status,
			SubmittedAt: parseTime(it.SubmittedAt),
			Notes:       it.Notes,
		})
	}
	return set
}

func mapInvitation(inv apiInvitation) *domain.Invitation {
	return &domain.Invitation{
		ID:           string(inv.ID),
		EmailAddress: inv.EmailAddress,
		Status:       inv.Status,
		CreatedAt:    inv.CreatedAt,
		UpdatedAt:    inv.UpdatedAt,
	}
}

func mapMemberRecord(rec apiMemberRecord) domain.MemberRecord {
	return domain.MemberRecord{
		Roll:        string(rec.Roll),
		FirstName:   rec.FirstName,
		LastName:    rec.LastName,
		Status:      rec.Status,
		FamilyLine:  rec.FamilyLine,
		Majors:      rec.Majors,
		Hometown:    rec.Hometown,
		OnCouncil:   rec.OnCouncil,
		SocialLinks: rec.SocialLinks,
		CreatedAt:   parseTime(rec.CreatedAt),
	}
}

// parseTime accepts the timestamp formats seen in ChapterDesk payloads.
// Unparseable values map to the zero time rather than failing the record.
func parseTime(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
