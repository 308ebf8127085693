package chat_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EvarJr/EBotikaApp/internal/chat"
	"github.com/EvarJr/EBotikaApp/internal/models"
)

// stubDirectory is a minimal UserFinder for inbox tests.
type stubDirectory map[string]models.User

func (d stubDirectory) FindByID(id string) (models.User, bool) {
	u, ok := d[id]
	return u, ok
}

func inboxFixture() (*chat.Store, stubDirectory) {
	users := stubDirectory{
		"p1": {ID: "p1", Name: "Juan", Role: models.RolePatient, Address: "123 Rizal Ave, Brgy. Poblacion, Manila"},
		"p2": {ID: "p2", Name: "Anna", Role: models.RolePatient, Address: "456 Bonifacio St, Brgy. Estancia, Cebu"},
		"p3": {ID: "p3", Name: "Pedro", Role: models.RolePatient, Address: "789 Mabini Blvd, Davao"},
		"d1": {ID: "d1", Name: "Dr. Maria", Role: models.RoleDoctor},
	}
	return chat.NewStore(), users
}

func TestInboxSortsByMostRecentMessage(t *testing.T) {
	store, users := inboxFixture()
	inbox := chat.NewInbox(store, users)
	t0 := time.Date(2024, 8, 1, 9, 0, 0, 0, time.UTC)

	store.Append(chat.Resolve("p1", "d1"), patientMsg("m1", "oldest", t0))
	store.Append(chat.Resolve("p2", "d1"), patientMsg("m2", "newest", t0.Add(2*time.Hour)))
	store.Append(chat.Resolve("p3", "d1"), patientMsg("m3", "middle", t0.Add(time.Hour)))

	convos := inbox.ConversationsFor("d1")
	require.Len(t, convos, 3)
	assert.Equal(t, "p2", convos[0].Patient.ID)
	assert.Equal(t, "p3", convos[1].Patient.ID)
	assert.Equal(t, "p1", convos[2].Patient.ID)
}

func TestInboxEmptyThreadsSortLast(t *testing.T) {
	store, users := inboxFixture()
	inbox := chat.NewInbox(store, users)

	store.Restore(map[string][]models.PatientDoctorChatMessage{
		chat.Resolve("p1", "d1"): {},
		chat.Resolve("p2", "d1"): {patientMsg("m1", "hi", time.Now())},
	})

	convos := inbox.ConversationsFor("d1")
	require.Len(t, convos, 2)
	assert.Equal(t, "p2", convos[0].Patient.ID)
	assert.Equal(t, "p1", convos[1].Patient.ID)
}

func TestInboxDropsUnresolvableCounterpart(t *testing.T) {
	store, users := inboxFixture()
	inbox := chat.NewInbox(store, users)

	store.Append(chat.Resolve("p1", "d1"), patientMsg("m1", "hi", time.Now()))
	store.Append(chat.Resolve("ghost", "d1"), patientMsg("m2", "boo", time.Now()))

	convos := inbox.ConversationsFor("d1")
	require.Len(t, convos, 1)
	assert.Equal(t, "p1", convos[0].Patient.ID)
}

func TestInboxSkipsForeignConversations(t *testing.T) {
	store, users := inboxFixture()
	inbox := chat.NewInbox(store, users)

	store.Append(chat.Resolve("p1", "d1"), patientMsg("m1", "hi", time.Now()))
	store.Append(chat.Resolve("p1", "d2"), patientMsg("m2", "other doctor", time.Now()))

	convos := inbox.ConversationsFor("d1")
	require.Len(t, convos, 1)
	assert.Equal(t, chat.Resolve("p1", "d1"), convos[0].ConversationID)
}

func TestInboxUnreadCount(t *testing.T) {
	store, users := inboxFixture()
	inbox := chat.NewInbox(store, users)
	now := time.Now()
	convoID := chat.Resolve("p1", "d1")

	store.Append(convoID, patientMsg("m1", "one", now))
	store.Append(convoID, doctorMsg("m2", "reply", now))
	store.Append(convoID, patientMsg("m3", "two", now))
	read := patientMsg("m4", "seen already", now)
	read.ReadByDoctor = true
	store.Append(convoID, read)

	convos := inbox.ConversationsFor("d1")
	require.Len(t, convos, 1)
	assert.Equal(t, 2, convos[0].UnreadCount,
		"unread = patient messages without the doctor-read flag, not total")
}

func TestInboxGroupedByBarangay(t *testing.T) {
	store, users := inboxFixture()
	inbox := chat.NewInbox(store, users)
	now := time.Now()

	store.Append(chat.Resolve("p1", "d1"), patientMsg("m1", "a", now))
	store.Append(chat.Resolve("p2", "d1"), patientMsg("m2", "b", now.Add(time.Minute)))
	store.Append(chat.Resolve("p3", "d1"), patientMsg("m3", "c", now.Add(2*time.Minute)))

	grouped := inbox.GroupedByBarangay("d1")
	require.Len(t, grouped, 3)
	assert.Equal(t, "p1", grouped["Poblacion"][0].Patient.ID)
	assert.Equal(t, "p2", grouped["Estancia"][0].Patient.ID)
	// p3's address has no Brgy. marker.
	assert.Equal(t, "p3", grouped[chat.UnknownBarangay][0].Patient.ID)
}

func TestParseBarangay(t *testing.T) {
	cases := map[string]string{
		"123 Rizal Ave, Brgy. Poblacion, Manila": "Poblacion",
		"Brgy. San Jose, Kalibo":                 "San Jose",
		"brgy. lowercase, Town":                  "lowercase",
		"Brgy.NoSpace, Town":                     "NoSpace",
		"789 Mabini Blvd, Davao":                 chat.UnknownBarangay,
		"":                                       chat.UnknownBarangay,
	}
	for address, want := range cases {
		assert.Equal(t, want, chat.ParseBarangay(address), "address %q", address)
	}
}
