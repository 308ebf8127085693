package chat

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/EvarJr/EBotikaApp/internal/models"
)

// PrivateStore holds the professional-to-professional chats (doctor,
// pharmacy, admin, BHW). Same conversation-key scheme as patient-doctor
// threads, but no access gate and no read flags.
type PrivateStore struct {
	mu      sync.RWMutex
	threads map[string][]models.PrivateChatMessage
	now     func() time.Time
}

func NewPrivateStore() *PrivateStore {
	return &PrivateStore{
		threads: make(map[string][]models.PrivateChatMessage),
		now:     time.Now,
	}
}

// Send appends a message to the conversation between sender and recipient.
func (p *PrivateStore) Send(senderID, recipientID, content string) models.PrivateChatMessage {
	msg := models.PrivateChatMessage{
		ID:          uuid.New().String(),
		SenderID:    senderID,
		RecipientID: recipientID,
		Content:     content,
		Timestamp:   p.now(),
	}
	conversationID := Resolve(senderID, recipientID)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.threads[conversationID] = append(p.threads[conversationID], msg)
	return msg
}

// Restore replaces all private threads, used when loading seed data.
func (p *PrivateStore) Restore(threads map[string][]models.PrivateChatMessage) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.threads = make(map[string][]models.PrivateChatMessage, len(threads))
	for id, thread := range threads {
		cp := make([]models.PrivateChatMessage, len(thread))
		copy(cp, thread)
		p.threads[id] = cp
	}
}

// History returns the conversation between two professionals, oldest first.
func (p *PrivateStore) History(idA, idB string) []models.PrivateChatMessage {
	p.mu.RLock()
	defer p.mu.RUnlock()
	thread := p.threads[Resolve(idA, idB)]
	out := make([]models.PrivateChatMessage, len(thread))
	copy(out, thread)
	return out
}
