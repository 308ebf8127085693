package storage_test

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EvarJr/EBotikaApp/internal/models"
	"github.com/EvarJr/EBotikaApp/internal/storage"
)

func testService(t *testing.T) *storage.Service {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return storage.NewService(rdb)
}

func TestSessionRoundTrip(t *testing.T) {
	svc := testService(t)

	_, found, err := svc.LoadSession("p1")
	require.NoError(t, err)
	assert.False(t, found)

	sess := storage.Session{
		UserID:     "p1",
		Role:       models.RolePatient,
		Language:   "Aklanon",
		LoggedInAt: time.Date(2024, 8, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, svc.SaveSession(sess))

	got, found, err := svc.LoadSession("p1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, sess, got)

	require.NoError(t, svc.DeleteSession("p1"))
	_, found, err = svc.LoadSession("p1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestTranscriptRoundTrip(t *testing.T) {
	svc := testService(t)

	history, err := svc.LoadTranscript("p1")
	require.NoError(t, err)
	assert.Nil(t, history)

	saved := []models.TriageMessage{
		{ID: "t1", Sender: "user", Text: "I have a fever.", Timestamp: time.Date(2024, 8, 1, 10, 0, 0, 0, time.UTC)},
		{ID: "t2", Sender: "ai", Text: "When did it start?", Timestamp: time.Date(2024, 8, 1, 10, 0, 30, 0, time.UTC)},
	}
	require.NoError(t, svc.SaveTranscript("p1", saved))

	history, err = svc.LoadTranscript("p1")
	require.NoError(t, err)
	assert.Equal(t, saved, history)

	require.NoError(t, svc.DeleteTranscript("p1"))
	history, err = svc.LoadTranscript("p1")
	require.NoError(t, err)
	assert.Nil(t, history)
}

func TestThreadsAndAccessWindowsRoundTrip(t *testing.T) {
	svc := testService(t)

	threads, err := svc.LoadThreads()
	require.NoError(t, err)
	assert.Nil(t, threads, "nothing saved yet")

	saved := map[string][]models.PatientDoctorChatMessage{
		"d1:p1": {{
			ID: "m1", Sender: models.SenderPatient, Content: "hello",
			Timestamp: time.Date(2024, 8, 3, 11, 0, 0, 0, time.UTC), ReadByPatient: true,
		}},
	}
	require.NoError(t, svc.SaveThreads(saved))
	threads, err = svc.LoadThreads()
	require.NoError(t, err)
	assert.Equal(t, saved, threads)

	windows := map[string]time.Time{
		"d1:p1": time.Date(2024, 8, 3, 11, 0, 0, 0, time.UTC),
	}
	require.NoError(t, svc.SaveAccessWindows(windows))
	got, err := svc.LoadAccessWindows()
	require.NoError(t, err)
	assert.Equal(t, windows, got)
}
