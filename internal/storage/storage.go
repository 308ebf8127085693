// Package storage is the key-value persistence boundary. The app is a demo
// with no real database; what survives a restart is serialized to Redis:
// session snapshots, in-progress AI chat transcripts, the patient-doctor
// threads and the chat access-window anchors.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/EvarJr/EBotikaApp/internal/config"
	"github.com/EvarJr/EBotikaApp/internal/models"
)

// Key layout. Session and transcript entries are per user; threads and
// access windows are whole-map snapshots under one key each.
const (
	sessionKeyPrefix    = "ebotika:session:"
	transcriptKeyPrefix = "ebotika:chat_history:"
	threadsKey          = "ebotika:threads"
	accessWindowsKey    = "ebotika:chat_access"
)

// Session is the authenticated-session snapshot restored on reload.
type Session struct {
	UserID     string      `json:"user_id"`
	Role       models.Role `json:"role"`
	Language   string      `json:"language"`
	LoggedInAt time.Time   `json:"logged_in_at"`
}

// Service wraps the Redis client with the typed operations the rest of the
// app uses.
type Service struct {
	Redis *redis.Client
	Ctx   context.Context
}

func NewService(rdb *redis.Client) *Service {
	return &Service{
		Redis: rdb,
		Ctx:   context.Background(),
	}
}

// SaveSession stores the session snapshot for a user.
func (s *Service) SaveSession(sess Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.Redis.Set(s.Ctx, sessionKeyPrefix+sess.UserID, data, config.SessionTTL).Err()
}

// LoadSession restores a user's session snapshot. The boolean is false when
// no session exists.
func (s *Service) LoadSession(userID string) (Session, bool, error) {
	data, err := s.Redis.Get(s.Ctx, sessionKeyPrefix+userID).Bytes()
	if errors.Is(err, redis.Nil) {
		return Session{}, false, nil
	}
	if err != nil {
		return Session{}, false, err
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return Session{}, false, err
	}
	return sess, true, nil
}

// DeleteSession removes the snapshot on logout.
func (s *Service) DeleteSession(userID string) error {
	return s.Redis.Del(s.Ctx, sessionKeyPrefix+userID).Err()
}

// SaveTranscript stores an in-progress AI triage transcript so a reload can
// resume the symptom check.
func (s *Service) SaveTranscript(userID string, history []models.TriageMessage) error {
	data, err := json.Marshal(history)
	if err != nil {
		return err
	}
	return s.Redis.Set(s.Ctx, transcriptKeyPrefix+userID, data, config.SessionTTL).Err()
}

// LoadTranscript restores an in-progress transcript; nil when none exists.
func (s *Service) LoadTranscript(userID string) ([]models.TriageMessage, error) {
	data, err := s.Redis.Get(s.Ctx, transcriptKeyPrefix+userID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var history []models.TriageMessage
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// DeleteTranscript removes the transcript once the consultation completes.
func (s *Service) DeleteTranscript(userID string) error {
	return s.Redis.Del(s.Ctx, transcriptKeyPrefix+userID).Err()
}

// SaveThreads snapshots all patient-doctor threads.
func (s *Service) SaveThreads(threads map[string][]models.PatientDoctorChatMessage) error {
	data, err := json.Marshal(threads)
	if err != nil {
		return err
	}
	return s.Redis.Set(s.Ctx, threadsKey, data, 0).Err()
}

// LoadThreads restores the thread snapshot; nil when none has been saved.
func (s *Service) LoadThreads() (map[string][]models.PatientDoctorChatMessage, error) {
	data, err := s.Redis.Get(s.Ctx, threadsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var threads map[string][]models.PatientDoctorChatMessage
	if err := json.Unmarshal(data, &threads); err != nil {
		return nil, err
	}
	return threads, nil
}

// SaveAccessWindows snapshots the chat access anchors so the free-tier
// policy holds across restarts.
func (s *Service) SaveAccessWindows(windows map[string]time.Time) error {
	data, err := json.Marshal(windows)
	if err != nil {
		return err
	}
	return s.Redis.Set(s.Ctx, accessWindowsKey, data, 0).Err()
}

// LoadAccessWindows restores the access anchors; nil when none were saved.
func (s *Service) LoadAccessWindows() (map[string]time.Time, error) {
	data, err := s.Redis.Get(s.Ctx, accessWindowsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var windows map[string]time.Time
	if err := json.Unmarshal(data, &windows); err != nil {
		return nil, err
	}
	return windows, nil
}
