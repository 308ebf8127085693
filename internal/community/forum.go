// Package community implements the shared announcement board for the
// professional roles.
package community

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/EvarJr/EBotikaApp/internal/models"
)

// Forum is the in-memory post board. Posts keep insertion order.
type Forum struct {
	mu    sync.RWMutex
	posts []models.ForumPost
	now   func() time.Time
}

func NewForum(seed []models.ForumPost) *Forum {
	f := &Forum{posts: make([]models.ForumPost, len(seed)), now: time.Now}
	copy(f.posts, seed)
	return f
}

// Posts returns every post, oldest first.
func (f *Forum) Posts() []models.ForumPost {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]models.ForumPost, len(f.posts))
	copy(out, f.posts)
	return out
}

// AddPost appends a new post by the given author.
func (f *Forum) AddPost(author models.User, content string) models.ForumPost {
	post := models.ForumPost{
		ID:        uuid.New().String(),
		Author:    author,
		Timestamp: f.now().Format("2006-01-02 03:04 PM"),
		Content:   content,
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.posts = append(f.posts, post)
	return post
}
