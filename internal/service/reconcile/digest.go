package reconcile

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/greekrow/chaptergate-backend/internal/domain"
)

// fingerprint reduces a pending set to a stable digest. Every content field
// of every application participates, so any edit to an item re-notifies the
// whole set, while two sets with the same applications produce the same
// digest regardless of item order. When the payload carried no item detail
// only the queue length participates.
func fingerprint(set domain.PendingSet) string {
	if !set.HasDetail {
		return digestOf("count:" + strconv.Itoa(set.Count))
	}

	lines := make([]string, 0, len(set.Items))
	for _, app := range set.Items {
		lines = append(lines, strings.Join([]string{
			app.Roll,
			app.FirstName,
			app.LastName,
			app.Email,
			app.Status,
			app.SubmittedAt.UTC().Format(time.RFC3339),
			app.Notes,
		}, "|"))
	}
	sort.Strings(lines)
	return digestOf(strings.Join(lines, "\n"))
}

func digestOf(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
