package chat_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EvarJr/EBotikaApp/internal/chat"
	"github.com/EvarJr/EBotikaApp/internal/models"
)

func patientMsg(id, content string, at time.Time) models.PatientDoctorChatMessage {
	return models.PatientDoctorChatMessage{
		ID: id, Sender: models.SenderPatient, Content: content,
		Timestamp: at, ReadByPatient: true,
	}
}

func doctorMsg(id, content string, at time.Time) models.PatientDoctorChatMessage {
	return models.PatientDoctorChatMessage{
		ID: id, Sender: models.SenderDoctor, Content: content,
		Timestamp: at, ReadByDoctor: true,
	}
}

func TestStoreAppendPreservesOrder(t *testing.T) {
	store := chat.NewStore()
	now := time.Now()

	store.Append("p1:d1", patientMsg("m1", "first", now))
	store.Append("p1:d1", doctorMsg("m2", "second", now.Add(time.Minute)))
	store.Append("p1:d1", patientMsg("m3", "third", now.Add(2*time.Minute)))

	thread := store.History("p1:d1")
	require.Len(t, thread, 3)
	assert.Equal(t, "m1", thread[0].ID)
	assert.Equal(t, "m2", thread[1].ID)
	assert.Equal(t, "m3", thread[2].ID)
}

func TestStoreHistoryMissingThread(t *testing.T) {
	store := chat.NewStore()
	assert.Empty(t, store.History("no:thread"))
}

func TestStoreMarkReadByDoctor(t *testing.T) {
	store := chat.NewStore()
	now := time.Now()
	store.Append("p1:d1", patientMsg("m1", "hello", now))
	store.Append("p1:d1", doctorMsg("m2", "hi", now))
	store.Append("p1:d1", patientMsg("m3", "question", now))

	store.MarkReadByDoctor("p1:d1")

	thread := store.History("p1:d1")
	assert.True(t, thread[0].ReadByDoctor)
	assert.True(t, thread[2].ReadByDoctor)
	// The doctor message keeps its own flags untouched.
	assert.True(t, thread[1].ReadByDoctor)
	assert.False(t, thread[1].ReadByPatient)
	// Content, sender and timestamps are immutable.
	assert.Equal(t, "hello", thread[0].Content)
	assert.Equal(t, models.SenderPatient, thread[0].Sender)
}

func TestStoreMarkReadByDoctorIdempotent(t *testing.T) {
	store := chat.NewStore()
	store.Append("p1:d1", patientMsg("m1", "hello", time.Now()))

	store.MarkReadByDoctor("p1:d1")
	once := store.History("p1:d1")
	store.MarkReadByDoctor("p1:d1")
	twice := store.History("p1:d1")

	assert.Equal(t, once, twice)
}

func TestStoreMarkReadByDoctorMissingThreadNoOp(t *testing.T) {
	store := chat.NewStore()
	assert.NotPanics(t, func() { store.MarkReadByDoctor("no:thread") })
	assert.Empty(t, store.History("no:thread"))
}

func TestStoreSnapshotIsACopy(t *testing.T) {
	store := chat.NewStore()
	store.Append("p1:d1", patientMsg("m1", "hello", time.Now()))

	snap := store.Snapshot()
	snap["p1:d1"][0].Content = "mutated"
	snap["p2:d1"] = []models.PatientDoctorChatMessage{patientMsg("x", "new", time.Now())}

	assert.Equal(t, "hello", store.History("p1:d1")[0].Content)
	assert.Empty(t, store.History("p2:d1"))
}

func TestStoreRestore(t *testing.T) {
	store := chat.NewStore()
	store.Restore(map[string][]models.PatientDoctorChatMessage{
		"p1:d1": {patientMsg("m1", "hello", time.Now())},
	})
	require.Len(t, store.History("p1:d1"), 1)
	assert.Equal(t, "m1", store.History("p1:d1")[0].ID)
}
