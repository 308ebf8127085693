package chat

import (
	"regexp"
	"sort"
	"strings"

	"github.com/EvarJr/EBotikaApp/internal/models"
)

// UserFinder is the slice of the user directory the inbox needs.
type UserFinder interface {
	FindByID(id string) (models.User, bool)
}

// Conversation is one aggregated inbox entry for a doctor: the thread, the
// resolved patient, and how many patient messages the doctor has not read.
type Conversation struct {
	ConversationID string                            `json:"conversation_id"`
	Patient        models.User                       `json:"patient"`
	Messages       []models.PatientDoctorChatMessage `json:"messages"`
	UnreadCount    int                               `json:"unread_count"`
}

// Inbox derives the doctor's conversation view from the thread store and
// the user directory. The view is recomputed on every read, never cached.
type Inbox struct {
	Threads *Store
	Users   UserFinder
}

func NewInbox(threads *Store, users UserFinder) *Inbox {
	return &Inbox{Threads: threads, Users: users}
}

// ConversationsFor returns every conversation involving the doctor, sorted
// by most recent message first. Threads whose counterpart cannot be found
// in the directory are dropped rather than shown with missing data; threads
// with no messages sort last.
func (in *Inbox) ConversationsFor(doctorID string) []Conversation {
	threads := in.Threads.Snapshot()

	ids := make([]string, 0, len(threads))
	for id := range threads {
		ids = append(ids, id)
	}
	sort.Strings(ids) // deterministic order before the stable sort below

	convos := make([]Conversation, 0, len(ids))
	for _, id := range ids {
		patientID, ok := Counterpart(id, doctorID)
		if !ok {
			continue
		}
		patient, ok := in.Users.FindByID(patientID)
		if !ok {
			continue
		}
		unread := 0
		for _, msg := range threads[id] {
			if msg.Sender == models.SenderPatient && !msg.ReadByDoctor {
				unread++
			}
		}
		convos = append(convos, Conversation{
			ConversationID: id,
			Patient:        patient,
			Messages:       threads[id],
			UnreadCount:    unread,
		})
	}

	sort.SliceStable(convos, func(i, j int) bool {
		mi, mj := convos[i].Messages, convos[j].Messages
		if len(mj) == 0 {
			return len(mi) > 0
		}
		if len(mi) == 0 {
			return false
		}
		return mi[len(mi)-1].Timestamp.After(mj[len(mj)-1].Timestamp)
	})
	return convos
}

// GroupedByBarangay buckets the sorted conversations by the barangay token
// parsed from each patient's address. Order within a bucket follows the
// sorted conversation list.
func (in *Inbox) GroupedByBarangay(doctorID string) map[string][]Conversation {
	grouped := make(map[string][]Conversation)
	for _, convo := range in.ConversationsFor(doctorID) {
		brgy := ParseBarangay(convo.Patient.Address)
		grouped[brgy] = append(grouped[brgy], convo)
	}
	return grouped
}

var barangayRe = regexp.MustCompile(`(?i)Brgy\.\s*([^,]+)`)

// UnknownBarangay is the fallback bucket for addresses without a
// recognizable "Brgy." marker.
const UnknownBarangay = "Unknown"

// ParseBarangay extracts a locality token from a free-text address.
// Best-effort: the first segment after a "Brgy." marker, up to the next
// comma. Anything unparseable lands in the Unknown bucket.
func ParseBarangay(address string) string {
	if address == "" {
		return UnknownBarangay
	}
	m := barangayRe.FindStringSubmatch(address)
	if m == nil {
		return UnknownBarangay
	}
	return strings.TrimSpace(m[1])
}
