package chat

import "strings"

// Separator joins the two participant ids of a conversation key. Ids are
// either seeded short ids ("p1", "d2") or UUIDs; neither contains a colon.
const Separator = ":"

// Resolve derives the canonical conversation id for two participants.
// The ids are sorted lexicographically before joining, so
// Resolve(a, b) == Resolve(b, a) for every pair. Callers are expected to
// supply valid, distinct ids; malformed input is not checked here.
func Resolve(idA, idB string) string {
	if idA > idB {
		idA, idB = idB, idA
	}
	return idA + Separator + idB
}

// Counterpart recovers the other participant from a conversation id.
// The doctor inbox depends on this, which is why the key shape above is
// part of the contract. Returns false when selfID is not a participant.
func Counterpart(conversationID, selfID string) (string, bool) {
	if other, ok := strings.CutPrefix(conversationID, selfID+Separator); ok {
		return other, true
	}
	if other, ok := strings.CutSuffix(conversationID, Separator+selfID); ok {
		return other, true
	}
	return "", false
}
