package services

import (
	"context"
	"errors"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/meinhoongagan/slot-booking/models"
)

func fixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

type fakeUsers struct {
	mu      sync.Mutex
	users   map[uint]*models.User
	nextID  uint
	failErr error
	avatars map[uint]string
}

func newFakeUsers(users ...models.User) *fakeUsers {
	f := &fakeUsers{users: map[uint]*models.User{}, avatars: map[uint]string{}}
	for i := range users {
		u := users[i]
		f.users[u.ID] = &u
		if u.ID >= f.nextID {
			f.nextID = u.ID
		}
	}
	return f
}

func (f *fakeUsers) FindProviderByID(_ context.Context, id uint) (*models.User, error) {
	u, err := f.FindByID(context.Background(), id)
	if err != nil || u == nil || !u.Provider {
		return nil, err
	}
	return u, nil
}

func (f *fakeUsers) FindByID(_ context.Context, id uint) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failErr != nil {
		return nil, f.failErr
	}
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) Create(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == user.Email {
			return models.ErrDuplicateEmail
		}
	}
	f.nextID++
	user.ID = f.nextID
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUsers) UpdateAvatar(_ context.Context, id uint, url string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return errors.New("no such user")
	}
	u.AvatarURL = url
	f.avatars[id] = url
	return nil
}

func (f *fakeUsers) ListProviders(_ context.Context) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.User
	for _, u := range f.users {
		if u.Provider {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// fakeLedger enforces slot uniqueness under its mutex, like the partial
// unique index does in the database.
type fakeLedger struct {
	mu          sync.Mutex
	appts       []models.Appointment
	nextID      uint
	slotLookups int
	rangeCalls  int
	insertErr   error
}

func (f *fakeLedger) add(a models.Appointment) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	if a.ID == 0 {
		a.ID = f.nextID
	}
	f.appts = append(f.appts, a)
}

func (f *fakeLedger) FindActiveByProviderAndSlot(_ context.Context, providerID uint, slot time.Time) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.slotLookups++
	for i := range f.appts {
		a := f.appts[i]
		if a.Active() && a.ProviderID == providerID && a.SlotStart.Equal(slot) {
			return &a, nil
		}
	}
	return nil, nil
}

func (f *fakeLedger) FindActiveByProviderAndRange(_ context.Context, providerID uint, start, end time.Time) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rangeCalls++
	var out []models.Appointment
	for _, a := range f.appts {
		if a.Active() && a.ProviderID == providerID && !a.SlotStart.Before(start) && !a.SlotStart.After(end) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeLedger) FindActiveByUser(_ context.Context, userID uint, offset, limit int) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var mine []models.Appointment
	for _, a := range f.appts {
		if a.Active() && a.ClientID == userID {
			mine = append(mine, a)
		}
	}
	sort.Slice(mine, func(i, j int) bool { return mine[i].SlotStart.Before(mine[j].SlotStart) })
	if offset >= len(mine) {
		return nil, nil
	}
	end := offset + limit
	if end > len(mine) {
		end = len(mine)
	}
	return mine[offset:end], nil
}

func (f *fakeLedger) InsertAtomic(_ context.Context, clientID, providerID uint, slot time.Time) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	for _, a := range f.appts {
		if a.Active() && a.ProviderID == providerID && a.SlotStart.Equal(slot) {
			return nil, models.ErrSlotConflict
		}
	}
	f.nextID++
	a := models.Appointment{ID: f.nextID, ClientID: clientID, ProviderID: providerID, SlotStart: slot.UTC()}
	f.appts = append(f.appts, a)
	return &a, nil
}

func (f *fakeLedger) FindActiveBySlot(_ context.Context, slot time.Time) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, a := range f.appts {
		if a.Active() && a.SlotStart.Equal(slot) {
			out = append(out, a)
		}
	}
	return out, nil
}

type sentNotification struct {
	target  uint
	content string
}

type fakeSink struct {
	mu   sync.Mutex
	sent []sentNotification
	err  error
}

func (f *fakeSink) Submit(_ context.Context, target uint, content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentNotification{target: target, content: content})
	return nil
}

type fakeInbox struct {
	items []models.Notification
}

func (f *fakeInbox) ListByUser(_ context.Context, userID uint, limit int64) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range f.items {
		if n.UserID == userID && int64(len(out)) < limit {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeInbox) MarkRead(_ context.Context, id string, userID uint) (*models.Notification, error) {
	for i := range f.items {
		if f.items[i].ID.Hex() == id && f.items[i].UserID == userID {
			f.items[i].Read = true
			n := f.items[i]
			return &n, nil
		}
	}
	return nil, nil
}

type fakeCache struct {
	providers   []ProviderSummary
	hit         bool
	sets        int
	invalidated int
}

func (f *fakeCache) GetProviders(context.Context) ([]ProviderSummary, bool, error) {
	return f.providers, f.hit, nil
}

func (f *fakeCache) SetProviders(_ context.Context, p []ProviderSummary) error {
	f.providers, f.hit = p, true
	f.sets++
	return nil
}

func (f *fakeCache) InvalidateProviders(context.Context) error {
	f.providers, f.hit = nil, false
	f.invalidated++
	return nil
}

type sentMail struct {
	to, subject, body string
}

type fakeMailer struct {
	sent   []sentMail
	failTo string
}

func (f *fakeMailer) Send(_ context.Context, to, subject, body string) error {
	if to == f.failTo {
		return errors.New("smtp: connection refused")
	}
	f.sent = append(f.sent, sentMail{to, subject, body})
	return nil
}

type fakeAvatars struct {
	publicID string
}

func (f *fakeAvatars) Upload(_ context.Context, file io.Reader, publicID string) (string, error) {
	if _, err := io.ReadAll(file); err != nil {
		return "", err
	}
	f.publicID = publicID
	return "https://res.cloudinary.com/demo/" + publicID + ".jpg", nil
}
