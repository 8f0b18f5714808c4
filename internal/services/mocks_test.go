package services

import (
	"context"
	"errors"
	"time"

	"weddingrsvp/internal/domain"
)

// mockGuestRepo is a map-backed in-memory guest store shared by the service
// tests. err, when set, is returned from every read.
type mockGuestRepo struct {
	guests        map[string]*domain.Guest
	searchResults []*domain.Guest
	stats         *domain.GuestStats
	err           error

	createErr       error
	updateErr       error
	updateStatusErr error

	confirmGroupIDs  []string
	confirmGroupErr  error
	lastConfirmGroup struct {
		groupID  string
		status   domain.RSVPStatus
		override bool
	}
}

func (m *mockGuestRepo) Create(ctx context.Context, g *domain.Guest) error {
	if m.createErr != nil {
		return m.createErr
	}
	g.ID = "guest-new"
	if m.guests == nil {
		m.guests = map[string]*domain.Guest{}
	}
	m.guests[g.ID] = g
	return nil
}

func (m *mockGuestRepo) GetByID(ctx context.Context, id string) (*domain.Guest, error) {
	if m.err != nil {
		return nil, m.err
	}
	g, ok := m.guests[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return g, nil
}

func (m *mockGuestRepo) Update(ctx context.Context, g *domain.Guest) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.guests[g.ID]; !ok {
		return domain.ErrNotFound
	}
	m.guests[g.ID] = g
	return nil
}

func (m *mockGuestRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.guests[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.guests, id)
	return nil
}

func (m *mockGuestRepo) List(ctx context.Context) ([]*domain.Guest, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*domain.Guest
	for _, g := range m.guests {
		out = append(out, g)
	}
	return out, nil
}

func (m *mockGuestRepo) ListByGroupID(ctx context.Context, groupID string) ([]*domain.Guest, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*domain.Guest
	for _, g := range m.guests {
		if g.GroupID != nil && *g.GroupID == groupID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (m *mockGuestRepo) ListUngrouped(ctx context.Context) ([]*domain.Guest, error) {
	var out []*domain.Guest
	for _, g := range m.guests {
		if g.GroupID == nil {
			out = append(out, g)
		}
	}
	return out, nil
}

func (m *mockGuestRepo) ListWithPhone(ctx context.Context) ([]*domain.Guest, error) {
	var out []*domain.Guest
	for _, g := range m.guests {
		if g.Phone != "" {
			out = append(out, g)
		}
	}
	return out, nil
}

func (m *mockGuestRepo) SearchByName(ctx context.Context, query string, limit int) ([]*domain.Guest, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.searchResults, nil
}

func (m *mockGuestRepo) AssignGroup(ctx context.Context, guestID, groupID string) error {
	g, ok := m.guests[guestID]
	if !ok {
		return domain.ErrNotFound
	}
	g.GroupID = &groupID
	return nil
}

func (m *mockGuestRepo) ClearGroup(ctx context.Context, guestID string) error {
	g, ok := m.guests[guestID]
	if !ok {
		return domain.ErrNotFound
	}
	g.GroupID = nil
	return nil
}

func (m *mockGuestRepo) UpdateStatus(ctx context.Context, guestID string, status domain.RSVPStatus, plusOnes int, rsvpAt *time.Time) error {
	if m.updateStatusErr != nil {
		return m.updateStatusErr
	}
	g, ok := m.guests[guestID]
	if !ok {
		return domain.ErrNotFound
	}
	g.RSVPStatus = status
	g.PlusOnes = plusOnes
	g.RSVPAt = rsvpAt
	return nil
}

func (m *mockGuestRepo) ConfirmGroup(ctx context.Context, groupID string, status domain.RSVPStatus, override bool, rsvpAt time.Time) ([]string, error) {
	if m.confirmGroupErr != nil {
		return nil, m.confirmGroupErr
	}
	m.lastConfirmGroup.groupID = groupID
	m.lastConfirmGroup.status = status
	m.lastConfirmGroup.override = override
	return m.confirmGroupIDs, nil
}

func (m *mockGuestRepo) CountByStatus(ctx context.Context) (*domain.GuestStats, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.stats == nil {
		return &domain.GuestStats{}, nil
	}
	return m.stats, nil
}

type mockGroupRepo struct {
	groups      map[string]*domain.GuestGroup
	guestCounts map[string]int
	stats       []*domain.GroupStats
	err         error
	createErr   error
	deleted     []string
}

func (m *mockGroupRepo) Create(ctx context.Context, g *domain.GuestGroup) error {
	if m.createErr != nil {
		return m.createErr
	}
	g.ID = "group-new"
	if m.groups == nil {
		m.groups = map[string]*domain.GuestGroup{}
	}
	m.groups[g.ID] = g
	return nil
}

func (m *mockGroupRepo) GetByID(ctx context.Context, id string) (*domain.GuestGroup, error) {
	if m.err != nil {
		return nil, m.err
	}
	g, ok := m.groups[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return g, nil
}

func (m *mockGroupRepo) Update(ctx context.Context, g *domain.GuestGroup) error {
	if _, ok := m.groups[g.ID]; !ok {
		return domain.ErrNotFound
	}
	m.groups[g.ID] = g
	return nil
}

func (m *mockGroupRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.groups[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.groups, id)
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockGroupRepo) List(ctx context.Context) ([]*domain.GuestGroup, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*domain.GuestGroup
	for _, g := range m.groups {
		out = append(out, g)
	}
	return out, nil
}

func (m *mockGroupRepo) Count(ctx context.Context) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return len(m.groups), nil
}

func (m *mockGroupRepo) CountGuests(ctx context.Context, groupID string) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.guestCounts[groupID], nil
}

func (m *mockGroupRepo) ListWithStats(ctx context.Context) ([]*domain.GroupStats, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.stats, nil
}

type mockGiftRepo struct {
	gifts     map[string]*domain.Gift
	list      []*domain.Gift
	active    int
	err       error
	createErr error
}

func (m *mockGiftRepo) Create(ctx context.Context, g *domain.Gift) error {
	if m.createErr != nil {
		return m.createErr
	}
	g.ID = "gift-new"
	if m.gifts == nil {
		m.gifts = map[string]*domain.Gift{}
	}
	m.gifts[g.ID] = g
	return nil
}

func (m *mockGiftRepo) GetByID(ctx context.Context, id string) (*domain.Gift, error) {
	if m.err != nil {
		return nil, m.err
	}
	g, ok := m.gifts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return g, nil
}

func (m *mockGiftRepo) Update(ctx context.Context, g *domain.Gift) error {
	if _, ok := m.gifts[g.ID]; !ok {
		return domain.ErrNotFound
	}
	m.gifts[g.ID] = g
	return nil
}

func (m *mockGiftRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.gifts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.gifts, id)
	return nil
}

func (m *mockGiftRepo) List(ctx context.Context, activeOnly bool) ([]*domain.Gift, error) {
	if m.err != nil {
		return nil, m.err
	}
	if !activeOnly {
		return m.list, nil
	}
	var out []*domain.Gift
	for _, g := range m.list {
		if g.Active {
			out = append(out, g)
		}
	}
	return out, nil
}

func (m *mockGiftRepo) CountActive(ctx context.Context) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.active, nil
}

type mockVenueRepo struct {
	venue     *domain.VenueInfo
	err       error
	upsertErr error
}

func (m *mockVenueRepo) Get(ctx context.Context) (*domain.VenueInfo, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.venue == nil {
		return nil, domain.ErrNotFound
	}
	return m.venue, nil
}

func (m *mockVenueRepo) Upsert(ctx context.Context, v *domain.VenueInfo) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	if v.ID == "" {
		v.ID = "venue-1"
	}
	m.venue = v
	return nil
}

type mockAdminRepo struct {
	admins   map[string]*domain.Admin
	count    int
	err      error
	lastHash string
}

func (m *mockAdminRepo) Create(ctx context.Context, a *domain.Admin) error {
	if m.err != nil {
		return m.err
	}
	a.ID = "admin-new"
	if m.admins == nil {
		m.admins = map[string]*domain.Admin{}
	}
	m.admins[a.ID] = a
	m.count++
	return nil
}

func (m *mockAdminRepo) GetByID(ctx context.Context, id string) (*domain.Admin, error) {
	if m.err != nil {
		return nil, m.err
	}
	a, ok := m.admins[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return a, nil
}

func (m *mockAdminRepo) GetByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, a := range m.admins {
		if a.Username == username {
			return a, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockAdminRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	a, ok := m.admins[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.PasswordHash = passwordHash
	m.lastHash = passwordHash
	return nil
}

func (m *mockAdminRepo) Count(ctx context.Context) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.count, nil
}

// fakeHasher "hashes" by prefixing, so tests can assert without bcrypt cost.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hash:" + password, nil }

func (fakeHasher) Compare(hash, password string) error {
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

type fakeIssuer struct {
	token string
	err   error
}

func (f *fakeIssuer) Issue(adminID, username string, expiry time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.token, nil
}

// fakeNotifier records thank-you sends and can fail on demand.
type fakeNotifier struct {
	enabled    bool
	sendErr    error
	thankYous  []string
	report     *domain.SendReport
	recipients []*domain.Guest
}

func (f *fakeNotifier) SendToGuests(ctx context.Context, guestIDs []string, templateName, customMessage string) (*domain.SendReport, error) {
	return f.report, nil
}

func (f *fakeNotifier) SendThankYou(ctx context.Context, guest *domain.Guest) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.thankYous = append(f.thankYous, guest.ID)
	return nil
}

func (f *fakeNotifier) Recipients(ctx context.Context) ([]*domain.Guest, error) {
	return f.recipients, nil
}

func (f *fakeNotifier) Enabled() bool { return f.enabled }
