// Package directory holds every identity known to the application and the
// operations the other components use to look them up and moderate them.
// All state is in memory; there is no database behind it.
package directory

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/EvarJr/EBotikaApp/internal/models"
)

var (
	ErrNotFound           = errors.New("directory: user not found")
	ErrBanned             = errors.New("directory: account is banned")
	ErrInvalidCredentials = errors.New("directory: invalid email or password")
	ErrEmailTaken         = errors.New("directory: email already registered")
)

// Directory is the in-memory user directory. Users keep their insertion
// order so that All() is deterministic.
type Directory struct {
	mu    sync.RWMutex
	users []models.User
}

// New returns a directory seeded with the given users.
func New(seed []models.User) *Directory {
	d := &Directory{users: make([]models.User, len(seed))}
	copy(d.users, seed)
	return d
}

// FindByID looks up a user by id.
func (d *Directory) FindByID(id string) (models.User, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, u := range d.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// FindByEmail looks up a user by email, case-insensitively.
func (d *Directory) FindByEmail(email string) (models.User, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, u := range d.users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return models.User{}, false
}

// All returns a copy of every known user, in insertion order.
func (d *Directory) All() []models.User {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]models.User, len(d.users))
	copy(out, d.users)
	return out
}

// Authenticate checks the mock credentials. Banned accounts cannot log in.
func (d *Directory) Authenticate(email, password string) (models.User, error) {
	u, ok := d.FindByEmail(email)
	if !ok || u.Password != password {
		return models.User{}, ErrInvalidCredentials
	}
	if u.Status == models.StatusBanned {
		return models.User{}, ErrBanned
	}
	return u, nil
}

// Register creates a new patient account.
func (d *Directory) Register(name, email, password, contactNumber, address string) (models.User, error) {
	if _, exists := d.FindByEmail(email); exists {
		return models.User{}, ErrEmailTaken
	}
	u := models.User{
		ID:            uuid.New().String(),
		Name:          name,
		Email:         email,
		Password:      password,
		Role:          models.RolePatient,
		ContactNumber: contactNumber,
		Address:       address,
		Status:        models.StatusActive,
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.users = append(d.users, u)
	return u, nil
}

// AddProfessional registers a doctor, pharmacy, admin or BHW account,
// typically from the RHU dashboard.
func (d *Directory) AddProfessional(u models.User) (models.User, error) {
	if _, exists := d.FindByEmail(u.Email); exists {
		return models.User{}, ErrEmailTaken
	}
	u.ID = uuid.New().String()
	u.Status = models.StatusActive
	d.mu.Lock()
	defer d.mu.Unlock()
	d.users = append(d.users, u)
	return u, nil
}

// UpdateStatus sets a user's moderation status (active or banned).
func (d *Directory) UpdateStatus(id string, status models.UserStatus) error {
	return d.mutate(id, func(u *models.User) {
		u.Status = status
	})
}

// UpgradeToPremium sets the premium flag, exempting the patient from the
// chat access window from that point on.
func (d *Directory) UpgradeToPremium(id string) error {
	return d.mutate(id, func(u *models.User) {
		u.IsPremium = true
	})
}

// SetOnline flips the presence indicator shown in the professionals
// directory.
func (d *Directory) SetOnline(id string, online bool) error {
	return d.mutate(id, func(u *models.User) {
		u.IsOnline = online
	})
}

// AddReport attaches a moderation report to a user.
func (d *Directory) AddReport(id string, report models.Report) error {
	return d.mutate(id, func(u *models.User) {
		u.Reports = append(u.Reports, report)
	})
}

// ProfileUpdate carries the profile fields a user may change. Nil fields
// are left untouched.
type ProfileUpdate struct {
	Name          *string
	ContactNumber *string
	Address       *string
	AvatarURL     *string
}

// UpdateProfile applies a partial profile update.
func (d *Directory) UpdateProfile(id string, upd ProfileUpdate) error {
	return d.mutate(id, func(u *models.User) {
		if upd.Name != nil {
			u.Name = *upd.Name
		}
		if upd.ContactNumber != nil {
			u.ContactNumber = *upd.ContactNumber
		}
		if upd.Address != nil {
			u.Address = *upd.Address
		}
		if upd.AvatarURL != nil {
			u.AvatarURL = *upd.AvatarURL
		}
	})
}

// Delete removes a user entirely. Admin action only.
func (d *Directory) Delete(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, u := range d.users {
		if u.ID == id {
			d.users = append(d.users[:i], d.users[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (d *Directory) mutate(id string, fn func(*models.User)) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.users {
		if d.users[i].ID == id {
			fn(&d.users[i])
			return nil
		}
	}
	return ErrNotFound
}
