package chat_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EvarJr/EBotikaApp/internal/chat"
	"github.com/EvarJr/EBotikaApp/internal/models"
)

func serviceFixture(clock *fakeClock) (*chat.Service, *chat.Store) {
	users := stubDirectory{
		"p1":   {ID: "p1", Name: "Juan", Role: models.RolePatient},
		"prem": {ID: "prem", Name: "Paying Patient", Role: models.RolePatient, IsPremium: true},
		"d1":   {ID: "d1", Name: "Dr. Maria", Role: models.RoleDoctor},
		"ph1":  {ID: "ph1", Name: "Pharmacist", Role: models.RolePharmacy},
	}
	store := chat.NewStore()
	svc := chat.NewService(users, chat.NewGateWithClock(clock.Now), store)
	return svc, store
}

func TestServicePatientSendAppends(t *testing.T) {
	svc, store := serviceFixture(newFakeClock())

	msg, err := svc.SendPatientMessage("p1", "d1", "hello doc")
	require.NoError(t, err)
	assert.Equal(t, models.SenderPatient, msg.Sender)
	assert.True(t, msg.ReadByPatient)
	assert.False(t, msg.ReadByDoctor)

	thread := store.History(chat.Resolve("p1", "d1"))
	require.Len(t, thread, 1)
	assert.Equal(t, "hello doc", thread[0].Content)
}

func TestServiceBlockedSendAppendsNothing(t *testing.T) {
	clock := newFakeClock()
	svc, store := serviceFixture(clock)

	_, err := svc.SendPatientMessage("p1", "d1", "first")
	require.NoError(t, err)

	clock.Advance(25 * time.Hour)
	_, err = svc.SendPatientMessage("p1", "d1", "locked out")

	var blocked *chat.BlockedError
	require.ErrorAs(t, err, &blocked)
	assert.Greater(t, blocked.RetryAfter, time.Duration(0))
	assert.Len(t, store.History(chat.Resolve("p1", "d1")), 1,
		"a blocked send must not append a message")
}

func TestServicePremiumPatientNeverBlocked(t *testing.T) {
	clock := newFakeClock()
	svc, _ := serviceFixture(clock)

	_, err := svc.SendPatientMessage("prem", "d1", "first")
	require.NoError(t, err)

	clock.Advance(25 * time.Hour)
	_, err = svc.SendPatientMessage("prem", "d1", "still fine")
	assert.NoError(t, err)

	clock.Advance(3 * 24 * time.Hour)
	_, err = svc.SendPatientMessage("prem", "d1", "also fine")
	assert.NoError(t, err)
}

func TestServiceDoctorSendNeverGated(t *testing.T) {
	clock := newFakeClock()
	svc, store := serviceFixture(clock)

	// Exhaust the patient's window so the conversation is locked.
	_, err := svc.SendPatientMessage("p1", "d1", "first")
	require.NoError(t, err)
	clock.Advance(25 * time.Hour)

	msg, err := svc.SendDoctorMessage("d1", "p1", "how are you feeling?")
	require.NoError(t, err)
	assert.Equal(t, models.SenderDoctor, msg.Sender)
	assert.True(t, msg.ReadByDoctor)
	assert.False(t, msg.ReadByPatient)
	assert.Len(t, store.History(chat.Resolve("p1", "d1")), 2)
}

func TestServiceRejectsWrongRoles(t *testing.T) {
	svc, _ := serviceFixture(newFakeClock())

	_, err := svc.SendPatientMessage("ph1", "d1", "not a patient")
	assert.ErrorIs(t, err, chat.ErrWrongRole)

	_, err = svc.SendDoctorMessage("p1", "d1", "not a doctor")
	assert.ErrorIs(t, err, chat.ErrWrongRole)

	_, err = svc.SendPatientMessage("missing", "d1", "who am I")
	assert.ErrorIs(t, err, chat.ErrUnknownUser)
}

func TestServiceHistoryIsSharedBothDirections(t *testing.T) {
	svc, _ := serviceFixture(newFakeClock())

	_, err := svc.SendPatientMessage("p1", "d1", "ping")
	require.NoError(t, err)
	_, err = svc.SendDoctorMessage("d1", "p1", "pong")
	require.NoError(t, err)

	assert.Len(t, svc.History("p1", "d1"), 2)
	assert.Equal(t, svc.History("p1", "d1"), svc.History("d1", "p1"))
}
