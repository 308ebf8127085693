// Package triage implements the mock AI symptom-check assistant. It mimics
// the request/stream shape of a real LLM client while serving canned
// responses, in English or Aklanon. After a fixed number of assistant turns
// the stream terminates with a structured JSON summary.
package triage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/EvarJr/EBotikaApp/internal/config"
	"github.com/EvarJr/EBotikaApp/internal/models"
)

// LanguageAklanon selects the Aklanon response set; anything else falls
// back to English.
const LanguageAklanon = "Aklanon"

var followUpsEn = []string{
	"Okay, I understand. Can you tell me more about the symptoms? For example, when did they start?",
	"Thank you for that information. Are you experiencing any other symptoms, like a fever or body aches?",
	"I see. One last question, on a scale of 1 to 10, how would you rate the discomfort?",
}

var followUpsAk = []string{
	"Okay, naintindihan ko. Pwede mo pa bang isaysay ang mga sintomas? Halimbawa, san-o raya nagsimula?",
	"Salamat sa impormasyon. May iba ka pa bang nabatyagan, parehas it lagnat o pagsakit it kalawasan?",
	"Naintindihan ko. Isaeang pang pamangkot, sa iskaeang 1 hasta 10, paano mo i-rate ro kahasakit?",
}

var summaryEn = models.AISummary{
	DiagnosisSuggestion: "Possible Common Cold or Flu",
	UrgencyLevel:        "Low",
	Recommendation: `Based on your symptoms, here are some recommendations:

• Rest and stay well-hydrated by drinking plenty of fluids.
• You may take over-the-counter pain relievers like Paracetamol for fever or aches, as directed.
• Monitor your symptoms closely.

Please consult a doctor if:
- Your symptoms worsen after 3 days.
- You develop a high fever (above 38.5°C or 101.3°F).
- You experience difficulty breathing.`,
}

var summaryAk = models.AISummary{
	DiagnosisSuggestion: "Posibleng Trangkaso o Sip-on",
	UrgencyLevel:        "Low",
	Recommendation: `Base sa imong mga sintomas, yari ro pilang rekomendasyon:

• Magpahuway ag siguraduhon nga may bastante nga inom it tubi.
• Pwede kang mag-inom it mga bulong nga mabakae sa botika parehas it Paracetamol para sa lagnat o sakit it kalawasan, suno sa direksyon.
• Bantayan it mayad ro imong mga sintomas.

Palihog magpakonsulta sa doktor kung:
- Maglala ro imong mga sintomas pagkatapos it 3 adlaw.
- Magka-high fever ka (sobra sa 38.5°C o 101.3°F).
- Mabudlayan ka sa pagginhawa.`,
}

// Responder generates mock assistant replies. ChunkDelay paces the stream
// so the UI gets a typing effect; tests set it to zero.
type Responder struct {
	ChunkDelay   time.Duration
	InitialDelay time.Duration
}

func NewResponder() *Responder {
	return &Responder{
		ChunkDelay:   config.TriageChunkDelay,
		InitialDelay: config.TriageInitialDelay,
	}
}

// Reply computes the full next assistant message for the given history.
// While fewer than TriageMaxAITurns assistant messages exist it returns a
// follow-up question; afterwards it returns the JSON-encoded summary and
// the parsed summary itself.
func (r *Responder) Reply(history []models.TriageMessage, language string) (string, *models.AISummary) {
	followUps, summary := followUpsEn, summaryEn
	if language == LanguageAklanon {
		followUps, summary = followUpsAk, summaryAk
	}

	turn := 0
	for _, msg := range history {
		if msg.Sender == "ai" {
			turn++
		}
	}

	if turn < config.TriageMaxAITurns {
		return followUps[turn], nil
	}

	payload, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		// The summary structs are static; this cannot happen at runtime.
		panic(err)
	}
	return string(payload), &summary
}

// Stream yields the next assistant reply rune by rune. The channel closes
// when the reply is fully sent or the context is cancelled. When the reply
// is the terminal summary, the parsed summary is returned alongside the
// channel so the caller can store the completed consultation.
func (r *Responder) Stream(ctx context.Context, history []models.TriageMessage, language string) (<-chan string, *models.AISummary) {
	reply, summary := r.Reply(history, language)

	ch := make(chan string)
	go func() {
		defer close(ch)
		if r.InitialDelay > 0 {
			select {
			case <-time.After(r.InitialDelay):
			case <-ctx.Done():
				return
			}
		}
		for _, ru := range reply {
			select {
			case ch <- string(ru):
			case <-ctx.Done():
				return
			}
			if r.ChunkDelay > 0 {
				select {
				case <-time.After(r.ChunkDelay):
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return ch, summary
}
