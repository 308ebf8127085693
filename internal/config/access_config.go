package config

import "time"

const (
	// Chat access window (free tier)
	FreeChatWindow   = 24 * time.Hour
	FreeChatCycle    = 7 * 24 * time.Hour

	// Triage
	TriageMaxAITurns    = 3
	TriageChunkDelay    = 20 * time.Millisecond
	TriageInitialDelay  = 1 * time.Second

	// Session
	SessionTokenTTL = 72 * time.Hour
	SessionTTL      = 30 * 24 * time.Hour
)

// UrgencyRank orders triage urgency levels for dashboard sorting.
var UrgencyRank = map[string]int{
	"Low":      1,
	"Medium":   2,
	"High":     3,
	"Critical": 4,
}
