package chat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/EvarJr/EBotikaApp/internal/chat"
)

// TestResolveCommutative verifies the conversation id is order-independent.
func TestResolveCommutative(t *testing.T) {
	pairs := [][2]string{
		{"p1", "d1"},
		{"d1", "p1"},
		{"a", "b"},
		{"bhw1", "ph1"},
		{"550e8400-e29b-41d4-a716-446655440000", "p1"},
	}
	for _, pair := range pairs {
		assert.Equal(t, chat.Resolve(pair[0], pair[1]), chat.Resolve(pair[1], pair[0]),
			"Resolve must be commutative for %v", pair)
	}
}

func TestResolveDistinctPairsDistinctIDs(t *testing.T) {
	assert.NotEqual(t, chat.Resolve("p1", "d1"), chat.Resolve("p1", "d2"))
	assert.NotEqual(t, chat.Resolve("p1", "d1"), chat.Resolve("p2", "d1"))
}

func TestCounterpart(t *testing.T) {
	convoID := chat.Resolve("p1", "d1")

	other, ok := chat.Counterpart(convoID, "d1")
	assert.True(t, ok)
	assert.Equal(t, "p1", other)

	other, ok = chat.Counterpart(convoID, "p1")
	assert.True(t, ok)
	assert.Equal(t, "d1", other)

	_, ok = chat.Counterpart(convoID, "d2")
	assert.False(t, ok, "a non-participant must not resolve a counterpart")
}

// UUID participant ids contain dashes; the key shape must still be
// recoverable.
func TestCounterpartUUIDParticipants(t *testing.T) {
	patientID := "550e8400-e29b-41d4-a716-446655440000"
	convoID := chat.Resolve(patientID, "d1")

	other, ok := chat.Counterpart(convoID, "d1")
	assert.True(t, ok)
	assert.Equal(t, patientID, other)
}
